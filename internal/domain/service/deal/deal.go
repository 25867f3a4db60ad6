// Package deal — сборка сделки: проверка выбора, сверка цен с каталогом,
// подсчёт суммы и отправка в Битрикс.
package deal

import (
	"context"
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/errcodes"
)

const (
	// DefaultCurrency подставляется, когда ни у одной строки нет валюты.
	DefaultCurrency = "KZT"

	initialStage = "NEW"

	titleTemplate = "Работы %s"
)

const (
	msgDeviceNotFound  = "Device not found"
	msgInvalidQuantity = "Quantity must be >= 1"
)

type catalogLookup interface {
	GetByID(ctx context.Context, category domain.Category, id int64) (*entity.Product, error)
}

type dealSubmitter interface {
	DealAdd(ctx context.Context, title string, opportunity float64, currency, stage string) (int64, error)
	DealProductRowsSet(ctx context.Context, dealID int64, rows []entity.LineItem) error
}

// Request — проверенный валидацией запрос на создание сделки. Повторные
// productId в parts/services допустимы и дают отдельные строки.
type Request struct {
	Device   Item
	Parts    []Item
	Services []Item
}

type Item struct {
	ProductID int64
	Quantity  int64
}

// RowsPendingError — сделка в Битриксе создана, но строки к ней не
// прикрепились. Идентификатор сохраняется, чтобы вызывающий мог повторить
// только второй шаг.
type RowsPendingError struct {
	DealID int64
	cause  error
}

func (e *RowsPendingError) Error() string {
	return fmt.Sprintf("deal %d created, product rows pending: %v", e.DealID, e.cause)
}

func (e *RowsPendingError) Unwrap() error {
	return e.cause
}

type Service struct {
	catalog catalogLookup
	bitrix  dealSubmitter
}

func NewService(catalog catalogLookup, bitrix dealSubmitter) *Service {
	return &Service{
		catalog: catalog,
		bitrix:  bitrix,
	}
}

// CreateDeal проводит запрос через весь конвейер сборки. До первого вызова
// записи в Битрикс не доходит ни один невалидный запрос.
func (s *Service) CreateDeal(ctx context.Context, request Request) (entity.DealSummary, error) {
	draft, err := s.assemble(ctx, request)
	if err != nil {
		return entity.DealSummary{}, err
	}

	dealID, err := s.bitrix.DealAdd(ctx, draft.Title, draft.Total.InexactFloat64(), draft.Currency, initialStage)
	if err != nil {
		return entity.DealSummary{}, fmt.Errorf("bitrix.DealAdd: %w", err)
	}

	if err := s.bitrix.DealProductRowsSet(ctx, dealID, draft.Rows); err != nil {
		return entity.DealSummary{}, &RowsPendingError{DealID: dealID, cause: err}
	}

	return entity.DealSummary{
		DealID:    dealID,
		Title:     draft.Title,
		RowsAdded: len(draft.Rows),
		Total:     draft.Total,
	}, nil
}

// assemble валидирует выбор и строит черновик сделки: строки в порядке
// устройство → запчасти → услуги, сумма, валюта.
func (s *Service) assemble(ctx context.Context, request Request) (entity.DealDraft, error) {
	device, err := s.resolveDevice(ctx, request.Device)
	if err != nil {
		return entity.DealDraft{}, err
	}

	rows := make([]entity.LineItem, 0, 1+len(request.Parts)+len(request.Services))
	rows = append(rows, device)

	for _, item := range request.Parts {
		row, err := s.resolveItem(ctx, domain.CategoryParts, item)
		if err != nil {
			return entity.DealDraft{}, err
		}

		rows = append(rows, row)
	}

	for _, item := range request.Services {
		row, err := s.resolveItem(ctx, domain.CategoryServices, item)
		if err != nil {
			return entity.DealDraft{}, err
		}

		rows = append(rows, row)
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Cost())
	}

	return entity.DealDraft{
		Title:    fmt.Sprintf(titleTemplate, device.Product.Name),
		Rows:     rows,
		Total:    total,
		Currency: resolveCurrency(rows),
	}, nil
}

func (s *Service) resolveDevice(ctx context.Context, item Item) (entity.LineItem, error) {
	device, err := s.catalog.GetByID(ctx, domain.CategoryDevices, item.ProductID)
	if err != nil {
		return entity.LineItem{}, fmt.Errorf("catalog.GetByID: %w", err)
	}

	if device == nil {
		return entity.LineItem{}, failure.NewNotFoundError(
			fmt.Sprintf("device %d not found", item.ProductID),
			failure.WithCode(errcodes.DeviceNotFound),
			failure.WithDescription(msgDeviceNotFound),
		)
	}

	if item.Quantity < 1 {
		return entity.LineItem{}, invalidQuantity(item.ProductID)
	}

	// Устройство может не иметь цены: его строка даёт нулевой вклад.
	return entity.LineItem{Product: *device, Quantity: item.Quantity}, nil
}

func (s *Service) resolveItem(ctx context.Context, category domain.Category, item Item) (entity.LineItem, error) {
	product, err := s.catalog.GetByID(ctx, category, item.ProductID)
	if err != nil {
		return entity.LineItem{}, fmt.Errorf("catalog.GetByID: %w", err)
	}

	if product == nil {
		return entity.LineItem{}, notFound(category, item.ProductID)
	}

	if !product.HasPrice() {
		return entity.LineItem{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("item %d has no price", item.ProductID),
			failure.WithCode(errcodes.PriceRequired),
			failure.WithDescription(fmt.Sprintf("Item %d has no price", item.ProductID)),
		)
	}

	if item.Quantity < 1 {
		return entity.LineItem{}, invalidQuantity(item.ProductID)
	}

	return entity.LineItem{Product: *product, Quantity: item.Quantity}, nil
}

// resolveCurrency берёт валюту первой строки, у которой она указана,
// в порядке устройство → запчасти → услуги.
func resolveCurrency(rows []entity.LineItem) string {
	row, ok := lo.Find(rows, func(row entity.LineItem) bool {
		return row.Product.Currency != ""
	})
	if !ok {
		return DefaultCurrency
	}

	return row.Product.Currency
}

func notFound(category domain.Category, productID int64) error {
	var code failure.ErrorCode

	var message string

	switch category {
	case domain.CategoryDevices:
		code, message = errcodes.DeviceNotFound, msgDeviceNotFound
	case domain.CategoryParts:
		code, message = errcodes.PartNotFound, fmt.Sprintf("Part %d not found", productID)
	case domain.CategoryServices:
		code, message = errcodes.ServiceNotFound, fmt.Sprintf("Service %d not found", productID)
	}

	return failure.NewNotFoundError(
		fmt.Sprintf("%s %d not found", category, productID),
		failure.WithCode(code),
		failure.WithDescription(message),
	)
}

func invalidQuantity(productID int64) error {
	return failure.NewInvalidArgumentError(
		fmt.Sprintf("item %d: quantity must be >= 1", productID),
		failure.WithCode(errcodes.InvalidQuantity),
		failure.WithDescription(msgInvalidQuantity),
	)
}

// IsRowsPending распознаёт частично завершённое создание сделки.
func IsRowsPending(err error) (*RowsPendingError, bool) {
	var pending *RowsPendingError
	if errors.As(err, &pending) {
		return pending, true
	}

	return nil, false
}
