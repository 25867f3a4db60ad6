package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"dealdesk/internal/config"
	"dealdesk/internal/domain/service/catalog"
	"dealdesk/internal/domain/service/deal"
	"dealdesk/internal/domain/service/health"
	"dealdesk/internal/infrastructure/bitrix"
	"dealdesk/internal/server"
	"dealdesk/pkg/application/modules"
	"dealdesk/pkg/contextx"
	"dealdesk/pkg/httpx"
	"dealdesk/pkg/logx"
	"dealdesk/pkg/middlewarex"
)

const (
	appName = "dealdesk"

	httpReadHeaderTimeout = 5 * time.Second
	logFieldMaxLen        = 2048
)

func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, log)

	masker := logx.NewSensitiveDataMasker()

	// Исходящие вызовы Битрикса логируются с маскированием токена вебхука.
	bitrixHTTPClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	}

	bitrixClient := bitrix.NewClient(cfg.Bitrix.WebhookURL, bitrixHTTPClient)

	catalogService := catalog.NewService(bitrixClient, cfg.Bitrix)
	dealService := deal.NewService(catalogService, bitrixClient)
	healthService := health.NewService(bitrixClient)

	srv := server.NewServer(
		server.NewCatalogServer(catalogService),
		server.NewDealServer(dealService),
		server.NewHealthServer(healthService),
	)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          appName,
		Version:       version(),
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	if !cfg.Probe.MetricsDisabled {
		modules.PrometheusServer{ListenAddress: cfg.Probe.MetricsAddress}.Run(ctx, g)
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
