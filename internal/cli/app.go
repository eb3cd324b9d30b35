package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/internal/config"
	"github.com/aretw0/algotrace/pkg/adapters/gemini"
	httpAdapter "github.com/aretw0/algotrace/pkg/adapters/http"
	"github.com/aretw0/algotrace/pkg/adapters/memory"
	"github.com/aretw0/algotrace/pkg/adapters/redis"
	"github.com/aretw0/algotrace/pkg/adapters/sqlite"
	"github.com/aretw0/algotrace/pkg/observability"
	"github.com/aretw0/algotrace/pkg/persistence/middleware"
	"github.com/aretw0/algotrace/pkg/ports"
)

// App is the engine wired to the backends selected by the configuration.
type App struct {
	Config   config.Config
	Engine   *algotrace.Engine
	Logger   *slog.Logger
	Registry *prometheus.Registry

	closers []func() error
}

// NewApp builds the engine, its history store, the optional assistant and
// the metrics registry.
func NewApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewMetrics(app.Registry)
	if err != nil {
		return nil, fmt.Errorf("error registering metrics: %w", err)
	}

	store, closeStore, err := openHistory(cfg.History)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		app.closers = append(app.closers, closeStore)
	}
	if len(cfg.History.RedactPatterns) > 0 {
		redact, err := middleware.NewRedactionMiddleware(cfg.History.RedactPatterns)
		if err != nil {
			app.Close()
			return nil, err
		}
		store = middleware.Chain(store, redact)
	}

	opts := []algotrace.Option{
		algotrace.WithLogger(logger),
		algotrace.WithHistory(store),
		algotrace.WithLifecycleHooks(metrics.Hooks().Merge(observability.LogHooks(logger))),
		algotrace.WithMaxInputSize(cfg.Engine.MaxInputSize),
	}

	if cfg.Assistant.APIKey != "" {
		assistant, err := gemini.New(ctx, cfg.Assistant.APIKey, gemini.WithModel(cfg.Assistant.Model))
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("error initializing assistant: %w", err)
		}
		opts = append(opts, algotrace.WithAssistant(assistant))
	} else {
		logger.Debug("No assistant API key configured, AI queries are disabled")
	}

	app.Engine, err = algotrace.New(opts...)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	logger.Debug("Engine ready", "history", cfg.History.Driver, "assistant", app.Engine.HasAssistant())
	return app, nil
}

// openHistory selects the history backend. The returned close func may be nil.
func openHistory(cfg config.HistoryConfig) (ports.HistoryStore, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.NewStore(), nil, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening sqlite history: %w", err)
		}
		return store, store.Close, nil

	case config.DriverRedis:
		opts := []redis.Option{redis.WithTTL(cfg.RedisTTL)}
		if cfg.RedisPrefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.RedisPrefix))
		}
		var store *redis.Store
		if strings.Contains(cfg.RedisAddr, "://") {
			var err error
			if store, err = redis.NewFromURL(cfg.RedisAddr, opts...); err != nil {
				return nil, nil, err
			}
		} else {
			store = redis.New(cfg.RedisAddr, "", 0, opts...)
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown history driver %q", cfg.Driver)
	}
}

// Handler returns the HTTP API including /metrics.
func (a *App) Handler() http.Handler {
	return httpAdapter.NewHandler(a.Engine,
		httpAdapter.WithLogger(a.Logger),
		httpAdapter.WithCORSOrigins(a.Config.Server.CORSOrigins),
		httpAdapter.WithMetricsHandler(promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{Registry: a.Registry})),
	)
}

// Close releases the history backend.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil
	return errors.Join(errs...)
}
