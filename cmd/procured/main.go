package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	procurementpb "github.com/harshmriduhash/iq-procure-assist/gen/proto/procurement/v1"
	"github.com/harshmriduhash/iq-procure-assist/internal/async"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/docs"
	"github.com/harshmriduhash/iq-procure-assist/internal/export"
	"github.com/harshmriduhash/iq-procure-assist/internal/lifecycle"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm/gateway"
	"github.com/harshmriduhash/iq-procure-assist/internal/memo"
	"github.com/harshmriduhash/iq-procure-assist/internal/notify"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
	"github.com/harshmriduhash/iq-procure-assist/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	repo := repository.NewComparisonRepository(entc, logger)
	hub := notify.NewHub(logger)
	client := gateway.NewClient(gateway.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Lenient:     true,
	}, logger)
	source := docs.NewFSSource(logger, cfg.Processing.MaxDocBytes)

	ctrl := lifecycle.NewController(logger, lifecycle.Config{
		StaleClaimAfter: cfg.Processing.StaleClaimAfter,
	}, repo, source, client, hub)

	queue := async.NewQueue(ctrl, logger,
		async.WithWorkers(cfg.Processing.Workers),
		async.WithQueueSize(cfg.Processing.QueueSize),
		async.WithProcessTimeout(cfg.Processing.ProcessTimeout),
	)

	memoSvc := memo.NewService(repo, client, hub, logger)
	exportSvc := export.NewService(repo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewComparisonsService(repo, ctrl, queue, memoSvc, exportSvc, hub, logger)
	procurementpb.RegisterComparisonsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}
