// Публичные типы HTTP API. Поля price и currency могут быть null:
// Битрикс не требует цены у товара, валюта опциональна.
package rest

type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`
}

type DealItem struct {
	ProductID int64 `json:"productId" validate:"required,min=1"`
	Quantity  int64 `json:"quantity" validate:"required,min=1"`
}

type DealRequest struct {
	Device   DealItem   `json:"device" validate:"required"`
	Parts    []DealItem `json:"parts,omitempty" validate:"omitempty,dive"`
	Services []DealItem `json:"services,omitempty" validate:"omitempty,dive"`
}

type DealResult struct {
	OK        bool    `json:"ok"`
	DealID    int64   `json:"dealId"`
	Title     string  `json:"title"`
	RowsAdded int     `json:"rowsAdded"`
	Total     float64 `json:"total"`
}

type HealthStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Error модель ошибок API.
type Error struct {
	OK bool `json:"ok"`

	// Code машиночитаемый код ошибки
	Code ErrorCode `json:"error"`

	// Message сообщение об ошибке (для отображения в UI)
	Message string `json:"message,omitempty"`

	// DealID присутствует только для ROWS_PENDING: сделка создана,
	// но строки к ней не прикрепились
	DealID int64 `json:"dealId,omitempty"`

	SupportID string `json:"supportId,omitempty"`
}

// ErrorCode код ошибки
type ErrorCode string
