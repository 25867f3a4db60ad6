package entity

import "github.com/shopspring/decimal"

// Product — товар каталога Битрикса. Цена может отсутствовать: такой товар
// нельзя продать отдельной строкой. Пустая валюта означает "не указана".
type Product struct {
	ID       int64
	Name     string
	Price    *decimal.Decimal
	Currency string
}

func (p Product) HasPrice() bool {
	return p.Price != nil
}
