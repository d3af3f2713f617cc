package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/netvista/telemetry-pipeline/logx"
	"github.com/netvista/telemetry-pipeline/mq"
	"github.com/netvista/telemetry-pipeline/processor/alerts"
	"github.com/netvista/telemetry-pipeline/processor/config"
	"github.com/netvista/telemetry-pipeline/processor/exporter"
	"github.com/netvista/telemetry-pipeline/processor/metrics"
	"github.com/netvista/telemetry-pipeline/processor/parser"
	"github.com/netvista/telemetry-pipeline/processor/pipeline"
	"github.com/netvista/telemetry-pipeline/processor/service"
)

type Bootstrap struct {
	config    *config.Config
	busClient *mq.Client
	driver    *pipeline.Driver
	apiServer *service.APIServer
	logger    *slog.Logger
}

func NewBootstrap() (*Bootstrap, error) {
	// Load configuration
	cfg := config.NewConfig()

	logger, err := logx.NewLog(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	busClient := mq.NewClient(mq.Config{
		URL:      cfg.Bus.URL,
		Exchange: cfg.Bus.Exchange,
	}, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: "", // no password set
		DB:       0,  // use default DB
		Protocol: 2,
	})

	m := metrics.NewMetrics()
	archive := exporter.NewArchive(redisClient, cfg.Archive.TTL)

	// The driver only archives when enabled; the read API stays up either way
	var exp pipeline.ArchiveExporter
	if cfg.Archive.Enabled {
		exp = archive
	}

	driver := pipeline.NewDriver(pipeline.Params{
		Parser:   parser.NewParser(),
		Source:   busClient,
		RawQueue: cfg.Bus.RawQueue,
		Sink:     pipeline.NewBusSink(busClient, cfg.Bus.NodeKey, cfg.Bus.InterfaceKey, cfg.Bus.AddressKey),
		Exporter: exp,
		Alerts:   alerts.NewNotifier(busClient, cfg.Bus.AlertKey),
		Metrics:  m,
		Logger:   logger,
	})

	return &Bootstrap{
		config:    cfg,
		busClient: busClient,
		driver:    driver,
		apiServer: service.NewAPIServer(cfg, archive, m.Handler()),
		logger:    logger,
	}, nil
}

// Start connects to the broker and runs the pipeline until SIGINT/SIGTERM.
// The in-flight extraction finishes before the process exits.
func (b *Bootstrap) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.busClient.Connect(); err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}

	if err := b.busClient.DeclareQueue(b.config.Bus.RawQueue, b.config.Bus.RawKey); err != nil {
		return fmt.Errorf("failed to declare raw queue: %w", err)
	}

	go func() {
		if err := b.apiServer.Start(); err != nil {
			b.logger.Error("API server stopped", "error", err)
		}
	}()

	runErr := b.driver.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.apiServer.Shutdown(shutdownCtx); err != nil {
		b.logger.Error("API server shutdown failed", "error", err)
	}
	if err := b.busClient.Close(); err != nil {
		b.logger.Error("Broker close failed", "error", err)
	}

	return runErr
}
