package bitrix

import (
	"context"
	"fmt"

	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/lox"
)

var productSelect = []string{"ID", "NAME", "PRICE", "CURRENCY_ID"} //nolint:gochecknoglobals

// ProductList выполняет crm.product.list с произвольным фильтром.
func (c *Client) ProductList(ctx context.Context, filter map[string]any) ([]entity.Product, error) {
	var response struct {
		Result []productDTO `json:"result"`
	}

	err := c.call(ctx, "crm.product.list", productListRequest{
		Filter: filter,
		Select: productSelect,
	}, &response)
	if err != nil {
		return nil, fmt.Errorf("call crm.product.list: %w", err)
	}

	products, err := lox.MapErr(response.Result, productDTO.toEntity)
	if err != nil {
		return nil, upstreamError(err, MessageUnknownError)
	}

	return products, nil
}

// DealAdd создаёт сделку и возвращает присвоенный Битриксом идентификатор.
func (c *Client) DealAdd(ctx context.Context, title string, opportunity float64, currency, stage string) (int64, error) {
	var response struct {
		Result int64 `json:"result"`
	}

	err := c.call(ctx, "crm.deal.add", dealAddRequest{
		Fields: dealFields{
			Title:       title,
			Opportunity: opportunity,
			CurrencyID:  currency,
			StageID:     stage,
		},
	}, &response)
	if err != nil {
		return 0, fmt.Errorf("call crm.deal.add: %w", err)
	}

	return response.Result, nil
}

// DealProductRowsSet прикрепляет строки к созданной сделке.
func (c *Client) DealProductRowsSet(ctx context.Context, dealID int64, rows []entity.LineItem) error {
	dtos := lox.Map(rows, func(row entity.LineItem) productRowDTO {
		dto := productRowDTO{
			ProductID: row.Product.ID,
			Quantity:  row.Quantity,
		}

		if row.Product.Price != nil {
			dto.Price = row.Product.Price.InexactFloat64()
		}

		return dto
	})

	err := c.call(ctx, "crm.deal.productrows.set", productRowsSetRequest{
		ID:   dealID,
		Rows: dtos,
	}, nil)
	if err != nil {
		return fmt.Errorf("call crm.deal.productrows.set: %w", err)
	}

	return nil
}

// StatusList — проба живости: один вызов crm.status.list без фильтра.
func (c *Client) StatusList(ctx context.Context) error {
	if err := c.call(ctx, "crm.status.list", nil, nil); err != nil {
		return fmt.Errorf("call crm.status.list: %w", err)
	}

	return nil
}
