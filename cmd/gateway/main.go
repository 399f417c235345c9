// Package main is the entry point for the shop gateway.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/vyrodovalexey/avshopgw/internal/auth"
	"github.com/vyrodovalexey/avshopgw/internal/client"
	"github.com/vyrodovalexey/avshopgw/internal/config"
	"github.com/vyrodovalexey/avshopgw/internal/gateway"
	"github.com/vyrodovalexey/avshopgw/internal/health"
	"github.com/vyrodovalexey/avshopgw/internal/middleware"
	"github.com/vyrodovalexey/avshopgw/internal/observability"
)

// Version information (set at build time).
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting avshopgw",
		zap.String("version", version),
		zap.String("config", cfg.String()),
	)

	app, err := initApplication(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	run(app, cfg, logger)
}

// printVersion prints version information and exits.
func printVersion() {
	fmt.Printf("avshopgw version %s\n", version)
	fmt.Printf("  Build time: %s\n", buildTime)
	fmt.Printf("  Git commit: %s\n", gitCommit)
}

// initLogger initializes the logger.
func initLogger(cfg *config.Config) *zap.Logger {
	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// application holds all application components.
type application struct {
	server      *gateway.Server
	authConn    *grpc.ClientConn
	productConn *grpc.ClientConn
}

// initApplication wires upstream connections, service adapters, middleware
// and the route table into a ready-to-start server.
func initApplication(cfg *config.Config, logger *zap.Logger) (*application, error) {
	metrics := observability.NewMetrics("avshopgw")

	authConn, err := client.Dial(cfg.AuthServiceAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to auth service: %w", err)
	}

	productConn, err := client.Dial(cfg.ProductServiceAddr)
	if err != nil {
		_ = authConn.Close()
		return nil, fmt.Errorf("failed to connect to product service: %w", err)
	}

	authClient := client.NewAuth(authConn,
		client.WithLogger(logger),
		client.WithMetrics(metrics),
		client.WithBreaker(client.NewBreaker("auth", client.BreakerConfig{Logger: logger})),
	)
	productClient := client.NewProduct(productConn,
		client.WithLogger(logger),
		client.WithMetrics(metrics),
		client.WithBreaker(client.NewBreaker("product", client.BreakerConfig{Logger: logger})),
	)

	cookie := auth.CookieOptions{
		Name:   cfg.CookieName,
		MaxAge: cfg.CookieMaxAge,
		Secure: cfg.CookieSecure,
	}

	checker := health.NewChecker("avshopgw", version)
	checker.RegisterCheck("auth", health.ConnCheck(authConn))
	checker.RegisterCheck("product", health.ConnCheck(productConn))

	server := gateway.NewServer(&gateway.ServerConfig{
		Port:           cfg.HTTPPort,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}, logger)

	server.Use(middleware.Recovery(logger))
	server.Use(middleware.Logging(logger))
	server.Use(middleware.CORSWithConfig(corsConfig(cfg)))
	if cfg.RateLimitEnabled {
		server.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RPS:       cfg.RateLimitRPS,
			Burst:     cfg.RateLimitBurst,
			Logger:    logger,
			SkipPaths: []string{"/health", cfg.MetricsPath},
		}))
	}
	if cfg.MetricsEnabled {
		server.Use(middleware.HTTPMetrics(metrics))
	}

	gate := middleware.Auth(middleware.AuthConfig{
		Verifier:      authClient,
		Cookie:        cookie,
		VerifyTimeout: cfg.VerifyTimeout,
		Logger:        logger,
		Metrics:       metrics,
	})

	var metricsHandler gin.HandlerFunc
	if cfg.MetricsEnabled {
		metricsHandler = gin.WrapH(metrics.Handler())
	}

	server.RegisterRoutes(gateway.RouteDeps{
		Auth:        gateway.NewAuthHandler(authClient, cookie, logger),
		Products:    gateway.NewProductHandler(productClient, logger),
		Gate:        gate,
		Health:      checker.Handler(),
		Metrics:     metricsHandler,
		MetricsPath: cfg.MetricsPath,
	})

	return &application{
		server:      server,
		authConn:    authConn,
		productConn: productConn,
	}, nil
}

// corsConfig builds the CORS configuration from loaded settings.
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	return corsCfg
}

// run starts the server and blocks until a shutdown signal arrives.
func run(app *application, cfg *config.Config, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.server.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server gracefully", zap.Error(err))
	}

	if err := app.authConn.Close(); err != nil {
		logger.Warn("failed to close auth service connection", zap.Error(err))
	}
	if err := app.productConn.Close(); err != nil {
		logger.Warn("failed to close product service connection", zap.Error(err))
	}

	logger.Info("gateway stopped")
}
