package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/internal/domain/service/catalog"
)

type fakeSections struct{}

func (fakeSections) SectionID(category domain.Category) int64 {
	switch category {
	case domain.CategoryDevices:
		return 101
	case domain.CategoryParts:
		return 102
	case domain.CategoryServices:
		return 103
	}

	return 0
}

type fakeBitrix struct {
	products []entity.Product
	err      error

	filter map[string]any
}

func (f *fakeBitrix) ProductList(_ context.Context, filter map[string]any) ([]entity.Product, error) {
	f.filter = filter
	return f.products, f.err
}

func TestSearch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	price := decimal.RequireFromString("199.99")

	bitrix := &fakeBitrix{products: []entity.Product{
		{ID: 1, Name: "Phone X", Price: &price, Currency: "USD"},
	}}
	svc := catalog.NewService(bitrix, fakeSections{})

	products, err := svc.Search(ctx, domain.CategoryDevices, "phone")
	rq.NoError(err)
	rq.Len(products, 1)
	rq.Equal("Phone X", products[0].Name)

	rq.Equal(int64(101), bitrix.filter["SECTION_ID"])
	rq.Equal("phone", bitrix.filter["%NAME"])
}

func TestSearchEmptyResult(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := catalog.NewService(&fakeBitrix{}, fakeSections{})

	// Пустая выдача не ошибка и не nil.
	products, err := svc.Search(ctx, domain.CategoryServices, "nothing")
	rq.NoError(err)
	rq.NotNil(products)
	rq.Empty(products)
}

func TestSearchUpstreamError(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := catalog.NewService(&fakeBitrix{err: errors.New("boom")}, fakeSections{})

	_, err := svc.Search(ctx, domain.CategoryParts, "display")
	rq.Error(err)
}

func TestGetByID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	bitrix := &fakeBitrix{products: []entity.Product{{ID: 42, Name: "Battery"}}}
	svc := catalog.NewService(bitrix, fakeSections{})

	product, err := svc.GetByID(ctx, domain.CategoryParts, 42)
	rq.NoError(err)
	rq.NotNil(product)
	rq.Equal(int64(42), product.ID)

	rq.Equal(int64(102), bitrix.filter["SECTION_ID"])
	rq.Equal(int64(42), bitrix.filter["ID"])
}

func TestGetByIDAbsent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := catalog.NewService(&fakeBitrix{}, fakeSections{})

	product, err := svc.GetByID(ctx, domain.CategoryDevices, 42)
	rq.NoError(err)
	rq.Nil(product)
}
