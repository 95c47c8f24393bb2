package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/coc-api/internal/config"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/handlers/v1alpha1"
	"github.com/KirkDiggler/coc-api/internal/orchestrators/investigator"
	"github.com/KirkDiggler/coc-api/internal/pkg/clock"
	"github.com/KirkDiggler/coc-api/internal/pkg/idgen"
	"github.com/KirkDiggler/coc-api/internal/redis"
	invrepo "github.com/KirkDiggler/coc-api/internal/repositories/investigator"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/coc-api/internal/share"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the investigator gRPC server. Settings come from COC_* environment
variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.InfoContext(ctx, "received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := cfg.RedisClient()
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	service, codec, err := buildService(cfg, redisClient)
	if err != nil {
		return err
	}
	defer codec.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		InvestigatorService: service,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create investigator handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	loggerFunc := grpc_logging.LoggerFunc(logFunc(logger))
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(loggerFunc),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(loggerFunc),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterInvestigatorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "gRPC server starting",
			"port", cfg.GRPCPort,
			"redis_mode", cfg.RedisMode,
			"default_locale", cfg.Locale())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildService wires the repositories, share codec and dice into the orchestrator
func buildService(cfg *config.Config, client redis.Client) (investigator.Service, *share.Codec, error) {
	repo, err := invrepo.NewRedis(&invrepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create investigator repository")
	}

	rolls, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.RollLogTTL,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create roll log repository")
	}

	codec, err := share.NewCodec(&share.Config{CacheSize: cfg.ShareCacheSize})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create share codec")
	}

	service, err := investigator.NewOrchestrator(&investigator.Config{
		InvestigatorRepo: repo,
		RollLogRepo:      rolls,
		ShareCodec:       codec,
		Roller:           dice.DefaultRoller,
		IDGenerator:      idgen.NewUUID("inv"),
		SkillIDGenerator: idgen.NewPrefixed("skill"),
		DefaultLocale:    cfg.Locale(),
	})
	if err != nil {
		codec.Close()
		return nil, nil, errors.Wrap(err, "failed to create investigator orchestrator")
	}

	return service, codec, nil
}

// logFunc bridges the gRPC logging interceptor to slog
func logFunc(logger *slog.Logger) func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	return func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	}
}
