// Package main is the entry point for the project board service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/project-board/internal/adapters/clients/webhook"
	adapthttp "github.com/jsamuelsen11/project-board/internal/adapters/http"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/project-board/internal/app"
	"github.com/jsamuelsen11/project-board/internal/app/board"
	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/health"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout  = 15 * time.Second
	webhookShutdownTimeout = 5 * time.Second
	otelShutdownTimeout    = 5 * time.Second
	readinessCheckTimeout  = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, err := config.ProfileFromEnv()
	if err != nil {
		return err
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := newInjector(cfg, logger, otel.metrics)

	// Resolving the server wires the whole graph, store included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// The mirror outlives the signal so it can flush during shutdown.
	mirror := startWebhook(context.WithoutCancel(ctx), injector, cfg, logger)

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal", slog.Any("cause", context.Cause(ctx)))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}
	stop()

	steps := []shutdownStep{
		{name: "http server", timeout: serverShutdownTimeout, fn: func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			<-serverErr
			return err
		}},
		{name: "telemetry", timeout: otelShutdownTimeout, fn: otel.Shutdown},
	}
	if mirror != nil {
		// Streams close first, then the last queued snapshot goes out.
		steps = slices.Insert(steps, 1, shutdownStep{name: "webhook mirror", timeout: webhookShutdownTimeout, fn: mirror.Stop})
	}
	for _, step := range steps {
		step.run(logger)
	}

	logger.Info("shutdown complete")
	return nil
}

// shutdownStep is one bounded stage of graceful shutdown.
type shutdownStep struct {
	name    string
	timeout time.Duration
	fn      func(context.Context) error
}

func (s shutdownStep) run(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.fn(ctx); err != nil {
		logger.Error("shutdown step failed", slog.String("step", s.name), slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// startWebhook subscribes the webhook mirror to the store and starts its
// worker. It returns nil when mirroring is disabled. The mirror is a plain
// store subscriber; the store itself never performs network I/O.
func startWebhook(ctx context.Context, injector do.Injector, cfg *config.Config, logger *slog.Logger) *webhook.Mirror {
	if !cfg.Webhook.Enabled {
		return nil
	}

	mirror := do.MustInvoke[*webhook.Mirror](injector)
	store := do.MustInvoke[*board.Store](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	registry.Register(mirror)
	store.Subscribe(mirror.Enqueue)
	mirror.Start(ctx)

	logger.Info("webhook mirror started", slog.Int("targets", len(cfg.Webhook.URLs)))
	return mirror
}

// newInjector builds the DI container. Every provider is a lazy singleton,
// so all consumers of *board.Store share one board.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	registerDependencies(injector, cfg, logger)
	return injector
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*board.Store, error) {
		return board.NewStore(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		store := do.MustInvoke[*board.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoardService(store, metrics, logging.Component(logger, "board")), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Mirror, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return webhook.New(cfg.Webhook, &cfg.Client, metrics, logging.Component(logger, "webhook")), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.WithCheckTimeout(readinessCheckTimeout))
		registry.Register(do.MustInvoke[*board.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewBoardHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StreamHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewStreamHandler(svc,
			cfg.Stream.Keepalive,
			cfg.Stream.BufferSize,
			logging.Component(logger, "stream"),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		h := adapthttp.Handlers{
			Project: do.MustInvoke[*handlers.ProjectHandler](i),
			Board:   do.MustInvoke[*handlers.BoardHandler](i),
			Stream:  do.MustInvoke[*handlers.StreamHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
		}

		return adapthttp.NewRouter(h, cfg.Server.RequestTimeout,
			middleware.Board(cfg.CORS, metrics, logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
