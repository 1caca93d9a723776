package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"campus/config"
	"campus/internal/delivery"
	"campus/internal/delivery/http"
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/router/handler"
	"campus/internal/domain/service"
	"campus/internal/infra/auth"
	"campus/internal/infra/catalog"
	"campus/internal/infra/identity/local"
	"campus/internal/infra/identity/supabase"
	logs "campus/internal/infra/log"
	"campus/internal/infra/metrics"
	"campus/internal/infra/persistence/memory"
	"campus/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newRegistry,
		newRecorder,
	)
}

// newRegistry provides both halves of the Prometheus registry: the
// Registerer the collector writes to and the Gatherer /metrics reads from.
func newRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	registry := prometheus.NewRegistry()

	return registry, registry
}

// newRecorder wires metric recording, or a no-op when metrics are
// disabled or unconfigured.
func newRecorder(cfg *config.Config, reg prometheus.Registerer) metrics.Recorder {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return metrics.NopRecorder{}
	}

	return metrics.NewCollector(reg)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewStaticRepository,
			memory.NewEnrollmentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newIdentityProvider,
		),
	)
}

// newIdentityProvider selects the credential gateway backend from config.
func newIdentityProvider(cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Identity.Provider == "supabase" {
		client, err := supabase.NewClient(cfg, logger)
		if err != nil {
			return nil, err
		}

		return client, nil
	}

	logger.Warn("Using in-memory identity provider; accounts will not survive restarts")

	return local.NewProvider(), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewEnrollmentService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCourseHandler,
			handler.NewEnrollmentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
