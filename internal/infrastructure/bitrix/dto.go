package bitrix

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"dealdesk/internal/domain/entity"
)

// Битрикс отдаёт поля товара строками независимо от их типа.
type productDTO struct {
	ID         string `json:"ID"`
	Name       string `json:"NAME"`
	Price      string `json:"PRICE"`
	CurrencyID string `json:"CURRENCY_ID"`
}

func (p productDTO) toEntity() (entity.Product, error) {
	id, err := strconv.ParseInt(p.ID, 10, 64)
	if err != nil {
		return entity.Product{}, fmt.Errorf("parse product id %q: %w", p.ID, err)
	}

	product := entity.Product{
		ID:       id,
		Name:     p.Name,
		Currency: p.CurrencyID,
	}

	// Пустая цена означает "товар не продаётся отдельной строкой".
	if p.Price != "" {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return entity.Product{}, fmt.Errorf("parse product price %q: %w", p.Price, err)
		}

		product.Price = &price
	}

	return product, nil
}

type productListRequest struct {
	Filter map[string]any `json:"filter"`
	Select []string       `json:"select"`
}

type dealAddRequest struct {
	Fields dealFields `json:"fields"`
}

type dealFields struct {
	Title       string  `json:"TITLE"`
	Opportunity float64 `json:"OPPORTUNITY"`
	CurrencyID  string  `json:"CURRENCY_ID"`
	StageID     string  `json:"STAGE_ID"`
}

type productRowsSetRequest struct {
	ID   int64           `json:"id"`
	Rows []productRowDTO `json:"rows"`
}

type productRowDTO struct {
	ProductID int64   `json:"PRODUCT_ID"`
	Price     float64 `json:"PRICE"`
	Quantity  int64   `json:"QUANTITY"`
}

type envelope struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
