// Package catalog — поиск по каталогу Битрикса с нормализацией полей.
// Без серверного кэша: каждый вызов уходит в CRM.
package catalog

import (
	"context"
	"fmt"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
)

type bitrixClient interface {
	ProductList(ctx context.Context, filter map[string]any) ([]entity.Product, error)
}

// Sections отображает категорию в идентификатор секции Битрикса.
type Sections interface {
	SectionID(category domain.Category) int64
}

type Service struct {
	bitrix   bitrixClient
	sections Sections
}

func NewService(bitrix bitrixClient, sections Sections) *Service {
	return &Service{
		bitrix:   bitrix,
		sections: sections,
	}
}

// Search ищет товары категории по подстроке имени. Пустая выдача — это
// пустой список, не ошибка.
func (s *Service) Search(ctx context.Context, category domain.Category, query string) ([]entity.Product, error) {
	products, err := s.bitrix.ProductList(ctx, map[string]any{
		"SECTION_ID": s.sections.SectionID(category),
		"%NAME":      query,
	})
	if err != nil {
		return nil, fmt.Errorf("bitrix.ProductList: %w", err)
	}

	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

// GetByID возвращает товар категории по точному id, nil — если товара нет.
func (s *Service) GetByID(ctx context.Context, category domain.Category, id int64) (*entity.Product, error) {
	products, err := s.bitrix.ProductList(ctx, map[string]any{
		"SECTION_ID": s.sections.SectionID(category),
		"ID":         id,
	})
	if err != nil {
		return nil, fmt.Errorf("bitrix.ProductList: %w", err)
	}

	if len(products) == 0 {
		return nil, nil //nolint:nilnil // отсутствие товара не ошибка
	}

	product := products[0]

	return &product, nil
}
