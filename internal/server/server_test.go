package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/internal/domain/service/deal"
	"dealdesk/internal/server"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/rest"
	"dealdesk/pkg/tests"
)

type fakeCatalogService struct {
	products []entity.Product
	err      error

	gotCategory domain.Category
	gotQuery    string
}

func (f *fakeCatalogService) Search(_ context.Context, category domain.Category, query string) ([]entity.Product, error) {
	f.gotCategory = category
	f.gotQuery = query

	return f.products, f.err
}

type fakeDealService struct {
	summary entity.DealSummary
	err     error

	gotRequest deal.Request
	calls      int
}

func (f *fakeDealService) CreateDeal(_ context.Context, request deal.Request) (entity.DealSummary, error) {
	f.calls++
	f.gotRequest = request

	return f.summary, f.err
}

type fakeHealthService struct {
	status entity.HealthStatus
}

func (f *fakeHealthService) Check(context.Context) entity.HealthStatus {
	return f.status
}

type testEnv struct {
	catalog *fakeCatalogService
	deal    *fakeDealService
	health  *fakeHealthService
	api     tests.APIClient
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		catalog: &fakeCatalogService{},
		deal:    &fakeDealService{},
		health:  &fakeHealthService{},
	}

	srv := server.NewServer(
		server.NewCatalogServer(env.catalog),
		server.NewDealServer(env.deal),
		server.NewHealthServer(env.health),
	)

	router := chi.NewRouter()
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	env.api = tests.NewAPIClient(httpServer.URL, nil)

	return env
}

func TestCatalogSearch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	price := decimalPtr("350000")
	env.catalog.products = []entity.Product{
		{ID: 15, Name: "iPhone 15", Price: price, Currency: "KZT"},
		{ID: 16, Name: "Loaner phone"},
	}

	var products []rest.Product

	resp, err := env.api.Get(ctx, "/api/catalog/devices/search?q=phone", nil, &products, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal(domain.CategoryDevices, env.catalog.gotCategory)
	rq.Equal("phone", env.catalog.gotQuery)

	rq.Len(products, 2)
	rq.Equal(int64(15), products[0].ID)
	rq.NotNil(products[0].Price)
	rq.InDelta(350000, *products[0].Price, 0.001)
	rq.Equal("KZT", *products[0].Currency)

	// Отсутствующие цена и валюта сериализуются как null.
	rq.Nil(products[1].Price)
	rq.Nil(products[1].Currency)
}

func TestCatalogSearchUnknownCategory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	var restErr rest.Error

	resp, err := env.api.Get(ctx, "/api/catalog/gadgets/search?q=phone", nil, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InvalidCategory), restErr.Code)
}

func TestCatalogSearchMissingQuery(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	var restErr rest.Error

	resp, err := env.api.Get(ctx, "/api/catalog/devices/search", nil, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.ValidationError), restErr.Code)
	rq.False(restErr.OK)
	rq.Empty(restErr.Message)
}

func TestCreateDeal(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)
	env.deal.summary = entity.DealSummary{
		DealID:    777,
		Title:     "Работы iPhone 15",
		RowsAdded: 3,
		Total:     decimalVal("226"),
	}

	request := rest.DealRequest{
		Device:   rest.DealItem{ProductID: 10, Quantity: 1},
		Parts:    []rest.DealItem{{ProductID: 20, Quantity: 2}},
		Services: []rest.DealItem{{ProductID: 30, Quantity: 1}},
	}

	var result rest.DealResult

	resp, err := env.api.Post(ctx, "/api/deals", nil, request, &result, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.True(result.OK)
	rq.Equal(int64(777), result.DealID)
	rq.Equal(3, result.RowsAdded)
	rq.InDelta(226, result.Total, 0.001)

	rq.Equal(int64(10), env.deal.gotRequest.Device.ProductID)
	rq.Len(env.deal.gotRequest.Parts, 1)
	rq.Len(env.deal.gotRequest.Services, 1)
}

func TestCreateDealValidation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name string
		body string
	}{
		{
			name: "Malformed JSON",
			body: `{"device":`,
		},
		{
			name: "Missing device",
			body: `{"parts":[{"productId":1,"quantity":1}]}`,
		},
		{
			name: "Zero quantity",
			body: `{"device":{"productId":10,"quantity":0}}`,
		},
		{
			name: "Unknown field",
			body: `{"device":{"productId":10,"quantity":1},"discount":42}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			env := newTestEnv(t)

			var restErr rest.Error

			resp, err := env.api.PostJSON(ctx, "/api/deals", nil, tc.body, nil, &restErr)
			rq.NoError(err)

			// Фиксированная форма ответа валидации: код без деталей.
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.False(restErr.OK)
			rq.Equal(rest.ErrorCode(errcodes.ValidationError), restErr.Code)
			rq.Empty(restErr.Message)

			rq.Zero(env.deal.calls)
		})
	}
}

func TestCreateDealNotFound(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)
	env.deal.err = failure.NewNotFoundError(
		"device 999 not found",
		failure.WithCode(errcodes.DeviceNotFound),
		failure.WithDescription("Device not found"),
	)

	var restErr rest.Error

	resp, err := env.api.PostJSON(ctx, "/api/deals", nil,
		`{"device":{"productId":999,"quantity":1}}`, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.DeviceNotFound), restErr.Code)
	rq.Equal("Device not found", restErr.Message)
}

func TestCreateDealRowsPending(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)
	env.deal.err = &deal.RowsPendingError{DealID: 555}

	var restErr rest.Error

	resp, err := env.api.PostJSON(ctx, "/api/deals", nil,
		`{"device":{"productId":10,"quantity":1}}`, nil, &restErr)
	rq.NoError(err)

	// Частичный успех не теряет id созданной сделки.
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.RowsPending), restErr.Code)
	rq.Equal(int64(555), restErr.DealID)
}

func TestHealth(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)
	env.health.status = entity.HealthStatus{OK: true, Message: "Bitrix24 API is healthy"}

	var status rest.HealthStatus

	resp, err := env.api.Get(ctx, "/api/health/bitrix", nil, &status, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(status.OK)
}

func TestHealthUnhealthy(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)
	env.health.status = entity.HealthStatus{OK: false, Message: "Failed to connect to Bitrix24"}

	var status rest.HealthStatus

	resp, err := env.api.Get(ctx, "/api/health/bitrix", nil, nil, &status)
	rq.NoError(err)
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.False(status.OK)
	rq.Equal("Failed to connect to Bitrix24", status.Message)
}

func TestPing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	var pong map[string]bool

	resp, err := env.api.Get(ctx, "/ping", nil, &pong, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(pong["pong"])
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func decimalVal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
