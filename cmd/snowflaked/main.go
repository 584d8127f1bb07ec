package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	snowflakev1 "github.com/driftlab/snowflaked/api/gen/go/snowflake/v1"
	"github.com/driftlab/snowflaked/internal/bootstrap"
	"github.com/driftlab/snowflaked/internal/common/config"
	"github.com/driftlab/snowflaked/internal/common/logging"
	"github.com/driftlab/snowflaked/internal/coordination"
	"github.com/driftlab/snowflaked/internal/gateway"
	"github.com/driftlab/snowflaked/internal/middleware"
	"github.com/driftlab/snowflaked/internal/observability"
	"github.com/driftlab/snowflaked/internal/ratelimit"
	"github.com/driftlab/snowflaked/internal/sanity"
	"github.com/driftlab/snowflaked/internal/server"
	"github.com/driftlab/snowflaked/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting snowflaked",
		zap.String("version", version.String()),
		zap.Int("grpc_port", cfg.Server.GRPCPort),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := coordination.NewEtcdStore(ctx, cfg.Coordination, logger)
	if err != nil {
		return fmt.Errorf("connect to coordination store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close coordination store", zap.Error(err))
		}
	}()

	metrics := observability.NewMetrics(logger)
	healthChecker := observability.NewHealthChecker(logger, version.String())
	healthChecker.RegisterCheck("coordination", store.Ping)

	// The whole startup state machine runs before any listener exists; a
	// failure here exits the process rather than serving with an unverified
	// worker id or clock.
	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config: cfg,
		Store:  store,
		Dial:   sanity.DialPeer,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	metrics.ObserveGenerator(res.Generator)

	logger.Info("generator ready",
		zap.Int64("datacenter_id", res.DatacenterID),
		zap.Int64("worker_id", res.WorkerID),
	)

	limiter := ratelimit.NewLimiter(
		cfg.RateLimit.RequestsPerSecond,
		cfg.RateLimit.Burst,
		cfg.RateLimit.Enabled,
	)
	defer limiter.Close()
	rateLimitInterceptor := ratelimit.NewInterceptor(limiter)

	interceptors := []grpc.UnaryServerInterceptor{
		middleware.RecoveryInterceptor(logger),
		observability.RequestIDInterceptor(logger),
		metrics.UnaryServerInterceptor(),
		rateLimitInterceptor.Unary(),
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors...),
	)

	snowflakev1.RegisterSnowflakeServiceServer(grpcServer, server.NewHandler(res.Generator, metrics))
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("create listener: %w", err)
	}

	logger.Info("gRPC server listening", zap.String("address", listener.Addr().String()))

	errChan := make(chan error, 4)

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			errChan <- fmt.Errorf("serve grpc: %w", err)
		}
	}()

	go func() {
		if err := metrics.Start(ctx, cfg.Server.MetricsPort); err != nil {
			errChan <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	go func() {
		if err := healthChecker.Start(ctx, cfg.Server.HealthPort); err != nil {
			errChan <- fmt.Errorf("health server: %w", err)
		}
	}()

	httpGateway := gateway.New(fmt.Sprintf("localhost:%d", cfg.Server.GRPCPort), logger)
	go func() {
		if err := httpGateway.Start(ctx, cfg.Server.GatewayPort); err != nil {
			errChan <- fmt.Errorf("http gateway: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down gracefully...")
	cancel()
	grpcServer.GracefulStop()
	logger.Info("shutdown complete")

	return nil
}
