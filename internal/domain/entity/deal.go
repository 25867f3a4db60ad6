package entity

import "github.com/shopspring/decimal"

// LineItem — строка сделки: товар плюс количество. Количество всегда >= 1,
// это проверяет сервис сборки.
type LineItem struct {
	Product  Product
	Quantity int64
}

// Cost — вклад строки в сумму сделки. Товар без цены (устройство) даёт ноль.
func (li LineItem) Cost() decimal.Decimal {
	if li.Product.Price == nil {
		return decimal.Zero
	}

	return li.Product.Price.Mul(decimal.NewFromInt(li.Quantity))
}

// DealDraft — набор строк будущей сделки в порядке
// устройство → запчасти → услуги.
type DealDraft struct {
	Title    string
	Rows     []LineItem
	Total    decimal.Decimal
	Currency string
}

// DealSummary — результат создания сделки в Битриксе.
type DealSummary struct {
	DealID    int64
	Title     string
	RowsAdded int
	Total     decimal.Decimal
}

type HealthStatus struct {
	OK      bool
	Message string
}
