package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"nc-news/internal/config"
	pgRepo "nc-news/internal/infra/adapter/persistence/postgres"
	"nc-news/internal/infra/db"
	"nc-news/internal/observability/logging"
	"nc-news/internal/observability/tracing"
	"nc-news/internal/resilience/circuitbreaker"

	artUC "nc-news/internal/usecase/article"
	cmtUC "nc-news/internal/usecase/comment"
	topicUC "nc-news/internal/usecase/topic"
	userUC "nc-news/internal/usecase/user"

	hhttp "nc-news/internal/handler/http"
	harticle "nc-news/internal/handler/http/article"
	hcomment "nc-news/internal/handler/http/comment"
	"nc-news/internal/handler/http/endpoints"
	"nc-news/internal/handler/http/middleware"
	"nc-news/internal/handler/http/pathutil"
	"nc-news/internal/handler/http/requestid"
	htopic "nc-news/internal/handler/http/topic"
	huser "nc-news/internal/handler/http/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing, err := tracing.InitProvider(ctx, "nc-news-api", cfg.Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer provider shutdown failed", slog.Any("error", err))
		}
	}()

	database, err := db.Open(ctx, db.ConnectionConfig{
		DSN:             cfg.DB.URL,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	srv, limiter, err := setupServer(cfg, logger, database)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return db.ReportPoolStats(gctx, database, cfg.DB.StatsInterval)
	})
	if limiter != nil {
		g.Go(func() error {
			return limiter.Run(gctx, cfg.RateLimit.CleanupInterval)
		})
	}
	return g.Wait()
}

// setupServer builds the repositories, services, routes and middleware chain.
// The returned limiter is nil when rate limiting is disabled.
func setupServer(cfg *config.Config, logger *slog.Logger, database *sql.DB) (*http.Server, *middleware.RateLimiter, error) {
	var store pgRepo.DBTX = database
	health := &hhttp.HealthHandler{DB: database, Version: cfg.Version}
	if cfg.DB.BreakerEnabled {
		breaker := circuitbreaker.NewDBCircuitBreaker(database)
		store = breaker
		health.Breaker = breaker
		logger.Info("database circuit breaker enabled")
	}

	articles := pgRepo.NewArticleRepo(store)
	artSvc := artUC.Service{Repo: articles}
	cmtSvc := cmtUC.Service{Repo: pgRepo.NewCommentRepo(store), Articles: articles}
	topicSvc := topicUC.Service{Repo: pgRepo.NewTopicRepo(store)}
	userSvc := userUC.Service{Repo: pgRepo.NewUserRepo(store)}

	mux := http.NewServeMux()
	if err := endpoints.Register(mux); err != nil {
		return nil, nil, fmt.Errorf("failed to load endpoint catalogue: %w", err)
	}
	harticle.Register(mux, artSvc, cfg.Pagination, logger)
	hcomment.Register(mux, cmtSvc, cfg.Pagination)
	htopic.Register(mux, topicSvc)
	huser.Register(mux, userSvc)

	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	mws := []func(http.Handler) http.Handler{
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware(pathutil.NormalizePath),
		hhttp.Logging(logger),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		extractor, err := ipExtractor(cfg.RateLimit.TrustedProxies, logger)
		if err != nil {
			return nil, nil, err
		}
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
			TTL:   cfg.RateLimit.ClientTTL,
		}, extractor)
		mws = append(mws, limiter.Middleware)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is disabled")
	}

	mws = append(mws,
		hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.MetricsMiddleware,
	)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           hhttp.Chain(hhttp.WithFallback(mux), mws...),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}
	return srv, limiter, nil
}

// ipExtractor trusts forwarding headers only from the configured proxy CIDRs.
func ipExtractor(trusted []string, logger *slog.Logger) (middleware.IPExtractor, error) {
	if len(trusted) == 0 {
		logger.Info("rate limiting: using RemoteAddr, proxy headers ignored")
		return &middleware.RemoteAddrExtractor{}, nil
	}
	proxies, err := middleware.ParseTrustedProxies(trusted)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trusted proxies: %w", err)
	}
	logger.Info("rate limiting: trusted proxy mode enabled",
		slog.Int("trusted_proxies_count", len(proxies.AllowedCIDRs)))
	return middleware.NewTrustedProxyExtractor(proxies), nil
}
