package server

import (
	"context"
	"fmt"
	"net/http"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/httpx/reply"
	"dealdesk/pkg/httpx/req"
)

type catalogService interface {
	Search(ctx context.Context, category domain.Category, query string) ([]entity.Product, error)
}

type CatalogServer struct {
	catalogService catalogService
}

func NewCatalogServer(catalogService catalogService) CatalogServer {
	return CatalogServer{
		catalogService: catalogService,
	}
}

func (s CatalogServer) getCatalogSearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		return fmt.Errorf("domain.ParseCategory: %w", err)
	}

	query, err := req.Query(r, "q")
	if err != nil {
		return fmt.Errorf("req.Query: %w", err)
	}

	products, err := s.catalogService.Search(ctx, category, query)
	if err != nil {
		return fmt.Errorf("catalogService.Search: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProducts(products))

	return nil
}
