package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/netvista/telemetry-pipeline/logx"
	"github.com/netvista/telemetry-pipeline/mq"
	"github.com/netvista/telemetry-pipeline/simulator/config"
	"github.com/netvista/telemetry-pipeline/simulator/payload"
)

type Bootstrap struct {
	config    *config.Config
	busClient *mq.Client
	generator *payload.Generator
	logger    *slog.Logger
}

func NewBootstrap() (*Bootstrap, error) {
	// Load configuration
	cfg := config.NewConfig()

	logger, err := logx.NewLog(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &Bootstrap{
		config: cfg,
		busClient: mq.NewClient(mq.Config{
			URL:      cfg.BusURL,
			Exchange: cfg.Exchange,
		}, logger),
		generator: payload.NewGenerator(cfg.NodeCount),
		logger:    logger,
	}, nil
}

// Start publishes one synthetic payload per interval until SIGINT/SIGTERM
func (b *Bootstrap) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.busClient.Connect(); err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer b.busClient.Close()

	b.logger.Info("Simulator starting",
		"interval", b.config.Interval,
		"node_count", b.config.NodeCount,
	)

	ticker := time.NewTicker(b.config.Interval)
	defer ticker.Stop()

	for {
		if err := b.publishBatch(ctx); err != nil {
			b.logger.Error("Error publishing payload", "error", err)
		}

		select {
		case <-ctx.Done():
			b.logger.Info("Simulator shutdown complete")
			return nil
		case <-ticker.C:
		}
	}
}

func (b *Bootstrap) publishBatch(ctx context.Context) error {
	batch := b.generator.Batch()

	if err := b.busClient.PublishJSON(ctx, b.config.RawKey, batch); err != nil {
		return fmt.Errorf("failed to publish payload: %w", err)
	}

	b.logger.Info("Payload published", "items", len(batch))
	return nil
}
