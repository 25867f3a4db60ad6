package server

import (
	"context"
	"net/http"

	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/httpx/reply"
	"dealdesk/pkg/rest"
)

type healthService interface {
	Check(ctx context.Context) entity.HealthStatus
}

type HealthServer struct {
	healthService healthService
}

func NewHealthServer(healthService healthService) HealthServer {
	return HealthServer{
		healthService: healthService,
	}
}

func (s HealthServer) getHealthBitrix(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	status := s.healthService.Check(ctx)

	statusCode := http.StatusOK
	if !status.OK {
		statusCode = http.StatusInternalServerError
	}

	reply.JSON(ctx, w, statusCode, rest.HealthStatus{
		OK:      status.OK,
		Message: status.Message,
	})

	return nil
}

func (s HealthServer) getPing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	logger(ctx).Info("Ping request received")

	reply.JSON(ctx, w, http.StatusOK, map[string]bool{"pong": true})

	return nil
}
