package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/listing-valuator/api/openapi"
	"github.com/donaldgifford/listing-valuator/internal/api/handlers"
	"github.com/donaldgifford/listing-valuator/internal/api/middleware"
	"github.com/donaldgifford/listing-valuator/internal/cache"
	"github.com/donaldgifford/listing-valuator/internal/config"
	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/internal/geocode"
	"github.com/donaldgifford/listing-valuator/internal/store"
	"github.com/donaldgifford/listing-valuator/internal/telemetry"
	"github.com/donaldgifford/listing-valuator/pkg/logger"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	providers, err := telemetry.Setup(startCtx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer shutdown(log, "telemetry", providers.Shutdown)

	s, err := store.NewPostgresStore(startCtx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	checks := map[string]handlers.Pinger{"database": s}

	c, err := buildCache(startCtx, &cfg.Cache, checks)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(s, c,
		engine.WithLogger(log),
		engine.WithTracer(providers.TracerProvider.Tracer("listing-valuator/engine")),
		engine.WithGeocoder(buildGeocoder(&cfg.Geocoder)),
		engine.WithComparableConfig(cfg.Valuation.ComparableSearch()),
		engine.WithPricingConfig(cfg.Valuation.Pricing()),
		engine.WithWeights(cfg.Recommendation.Weights.Score()),
		engine.WithCacheTTL(cfg.Cache.TTL),
		engine.WithMaxRecommendations(cfg.Recommendation.MaxResults),
		engine.WithCandidatePool(cfg.Recommendation.CandidatePool),
		engine.WithViewedPreferenceCap(cfg.Recommendation.ViewedPreferenceCap),
		engine.WithSignalConcurrency(cfg.Recommendation.SignalConcurrency),
		engine.WithWarmup(cfg.Schedule.WarmWindow, cfg.Schedule.WarmBatch),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.WarmInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newServer(cfg, log, providers, eng, s, checks)

	sched.Start()
	defer func() {
		<-sched.Stop().Done()
		log.Info("scheduler stopped")
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", "addr", addr, "version", Version)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		sctx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

func newServer(
	cfg *config.Config,
	log *slog.Logger,
	providers *telemetry.Providers,
	eng *engine.Engine,
	s store.Store,
	checks map[string]handlers.Pinger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(
		middleware.Recovery(log),
		middleware.RequestLog(log),
		middleware.Tracing(providers.TracerProvider, providers.MeterProvider),
		middleware.Metrics(),
	)

	health := handlers.NewHealthHandler(checks)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Listing Valuator API", Version)
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)

	handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(eng))
	handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationsHandler(eng, s))
	handlers.RegisterUserRoutes(api, handlers.NewUsersHandler(eng, s))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(s))
	handlers.RegisterMessageRoutes(api, handlers.NewMessagesHandler(s))
	openapi.RegisterRoutes(e, api)

	return e
}

func buildCache(
	ctx context.Context,
	cfg *config.CacheConfig,
	checks map[string]handlers.Pinger,
) (cache.Cache, error) {
	if cfg.Backend != config.CacheRedis {
		return cache.NewMemoryCache(), nil
	}

	client, err := cache.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	rc := cache.NewRedisCache(client, cfg.Redis.KeyPrefix)
	checks["cache"] = rc
	return rc, nil
}

func buildGeocoder(cfg *config.GeocoderConfig) geocode.Geocoder {
	if !cfg.Enabled {
		return geocode.Disabled{}
	}

	hc := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return geocode.NewClient(cfg.URL,
		geocode.WithHTTPClient(hc),
		geocode.WithRateLimit(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst),
	)
}

func shutdown(log *slog.Logger, what string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn("shutdown failed", "component", what, "error", err)
	}
}
