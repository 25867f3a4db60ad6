package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dealdesk/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Get("/bitrix", handler(s.getHealthBitrix))
		})
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/{category}/search", handler(s.getCatalogSearch))
		})
		r.Route("/deals", func(r chi.Router) {
			r.Post("/", handler(s.postDeal))
		})
	})

	r.Get("/ping", handler(s.getPing))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
