package server

import (
	"dealdesk/internal/domain/entity"
	"dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/lox"
	"dealdesk/pkg/rest"
)

func newRESTProducts(products []entity.Product) []rest.Product {
	return lox.Map(products, newRESTProduct)
}

func newRESTProduct(product entity.Product) rest.Product {
	result := rest.Product{
		ID:   product.ID,
		Name: product.Name,
	}

	if product.Price != nil {
		price := product.Price.InexactFloat64()
		result.Price = &price
	}

	if product.Currency != "" {
		currency := product.Currency
		result.Currency = &currency
	}

	return result
}

func newRESTDealResult(summary entity.DealSummary) rest.DealResult {
	return rest.DealResult{
		OK:        true,
		DealID:    summary.DealID,
		Title:     summary.Title,
		RowsAdded: summary.RowsAdded,
		Total:     summary.Total.InexactFloat64(),
	}
}

func newDomainDealRequest(request rest.DealRequest) deal.Request {
	return deal.Request{
		Device:   newDomainDealItem(request.Device),
		Parts:    lox.Map(request.Parts, newDomainDealItem),
		Services: lox.Map(request.Services, newDomainDealItem),
	}
}

func newDomainDealItem(item rest.DealItem) deal.Item {
	return deal.Item{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}
