package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	pgRepo "fidel-summary/internal/infra/adapter/persistence/postgres"
	"fidel-summary/internal/infra/db"
	"fidel-summary/internal/infra/extractor"
	"fidel-summary/internal/observability/logging"
	"fidel-summary/internal/observability/tracing"
	"fidel-summary/internal/pkg/config"
	"fidel-summary/internal/script"
	"fidel-summary/internal/summarize"

	sumUC "fidel-summary/internal/usecase/summary"

	hhttp "fidel-summary/internal/handler/http"
	hauth "fidel-summary/internal/handler/http/auth"
	"fidel-summary/internal/handler/http/requestid"
	hsummary "fidel-summary/internal/handler/http/summary"
)

func main() {
	logger := initLogger()
	validateAuthConfig(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()

	shutdownTracing := tracing.InitProvider("fidel-summary", version)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, version)
	runServer(logger, handler, version)
}

// initLogger initializes the structured JSON logger and installs it as the
// process default. LOG_LEVEL=debug enables debug output.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateAuthConfig refuses to start with missing or weak auth configuration.
func validateAuthConfig(logger *slog.Logger) {
	if err := hauth.ValidateCredentialsConfig(); err != nil {
		logger.Error("credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := hauth.ValidateJWTSecret(); err != nil {
		logger.Error("JWT secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// buildEngine constructs the summarization engine, overlaying the built-in
// defaults with SUMMARY_CONFIG_FILE when set. A broken config file is fatal;
// an explicitly configured file is expected to be valid.
func buildEngine(logger *slog.Logger) *summarize.Engine {
	cfg := summarize.DefaultConfig()
	if path := os.Getenv("SUMMARY_CONFIG_FILE"); path != "" {
		loaded, err := summarize.LoadConfigFile(path)
		if err != nil {
			logger.Error("failed to load summarization config file",
				slog.String("path", path),
				slog.Any("error", err))
			os.Exit(1)
		}
		cfg = loaded
		logger.Info("summarization config loaded", slog.String("path", path))
	}
	return summarize.NewEngine(cfg)
}

// buildGate constructs the script gate with an optional threshold override.
func buildGate(logger *slog.Logger) *script.Gate {
	result := config.LoadEnvFloat("SCRIPT_GATE_MIN_PERCENT", script.DefaultMinPercentage, config.ValidatePercentage)
	for _, w := range result.Warnings {
		logger.Warn("configuration fallback applied", slog.String("warning", w))
	}
	threshold, _ := result.Value.(float64)
	return script.NewGate(script.Ethiopic(), threshold)
}

// buildExtractor constructs the URL text extractor from environment config.
// Extraction config loads fail-open; warnings are logged, never fatal.
func buildExtractor(logger *slog.Logger) sumUC.TextExtractor {
	cfg, warnings := extractor.LoadConfigFromEnv()
	for _, w := range warnings {
		logger.Warn("configuration fallback applied", slog.String("warning", w))
	}
	logger.Info("extractor initialized",
		slog.Duration("timeout", cfg.Timeout),
		slog.Int64("max_body_size", cfg.MaxBodySize),
		slog.Bool("deny_private_ips", cfg.DenyPrivateIPs))
	return extractor.NewReadabilityExtractor(cfg)
}

// setupServer wires the use case service, routes and middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	svc := &sumUC.Service{
		Repo:      pgRepo.NewSummaryRepo(database),
		Engine:    buildEngine(logger),
		Gate:      buildGate(logger),
		Extractor: buildExtractor(logger),
		Logger:    logger,
	}

	rootMux := setupRoutes(logger, database, version, svc)
	return applyMiddleware(logger, rootMux)
}

// setupRoutes registers all HTTP routes, public and protected.
func setupRoutes(logger *slog.Logger, database *sql.DB, version string, svc *sumUC.Service) *http.ServeMux {
	// The token endpoint gets its own tight limiter, 5 requests per minute
	// per IP, to slow down credential stuffing.
	authRateLimiter := hhttp.NewRateLimiter(5.0/60.0, 5)

	publicMux := http.NewServeMux()
	publicMux.Handle("/auth/token", authRateLimiter.Limit(hauth.TokenHandler()))
	publicMux.Handle("/healthz", &hhttp.HealthHandler{DB: database, Version: version})
	publicMux.Handle("/readyz", &hhttp.ReadyHandler{DB: database})
	publicMux.Handle("/livez", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", hhttp.MetricsHandler())

	privateMux := http.NewServeMux()
	hsummary.Register(privateMux, svc, logger)
	protected := hauth.Authz(privateMux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/token", publicMux)
	rootMux.Handle("/healthz", publicMux)
	rootMux.Handle("/readyz", publicMux)
	rootMux.Handle("/livez", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/", protected)

	return rootMux
}

// applyMiddleware wraps the handler with the middleware chain. Order, outermost
// first: request ID, tracing, rate limit, recovery, logging, timeout, body
// limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	rps := config.LoadEnvFloat("RATE_LIMIT_RPS", 10, func(v float64) error {
		if v <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	burst := config.LoadEnvInt("RATE_LIMIT_BURST", 20, func(v int) error {
		if v <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	reqTimeout := config.LoadEnvDuration("REQUEST_TIMEOUT", 30*time.Second, config.ValidatePositiveDuration)
	for _, result := range []config.ConfigLoadResult{rps, burst, reqTimeout} {
		for _, w := range result.Warnings {
			logger.Warn("configuration fallback applied", slog.String("warning", w))
		}
	}

	rpsValue, _ := rps.Value.(float64)
	burstValue, _ := burst.Value.(int)
	timeoutValue, _ := reqTimeout.Value.(time.Duration)
	ipRateLimiter := hhttp.NewRateLimiter(rpsValue, burstValue)

	logger.Info("rate limiting initialized",
		slog.Float64("rps", rpsValue),
		slog.Int("burst", burstValue))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Timeout(timeoutValue)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = ipRateLimiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
