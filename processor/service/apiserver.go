package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/netvista/telemetry-pipeline/logx"
	"github.com/netvista/telemetry-pipeline/processor/config"
	"github.com/netvista/telemetry-pipeline/processor/exporter"
)

type APIServer struct {
	config         *config.Config
	server         *http.Server
	archive        *exporter.Archive
	metricsHandler http.Handler
	logger         *slog.Logger
}

func NewAPIServer(config *config.Config, archive *exporter.Archive, metricsHandler http.Handler) *APIServer {
	return &APIServer{
		config:         config,
		archive:        archive,
		metricsHandler: metricsHandler,
		logger:         logx.GetLogger(),
	}
}

// Start initializes and starts the HTTP server
func (api *APIServer) Start() error {
	api.logger.Info("Processor APIServer starting", "port", api.config.Port)

	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			api.logger.Error("Error writing health check response", "error", err)
		}
	})

	// Prometheus metrics
	mux.Handle("/metrics", api.metricsHandler)

	// Batch archive endpoints
	mux.HandleFunc("/batches/GetBatch", api.GetBatchHandler)
	mux.HandleFunc("/batches/ListBatches", api.ListBatchesHandler)

	api.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.config.Port),
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		api.logger.Error("Server failed to start", "error", err, "port", api.config.Port)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops the HTTP server, letting in-flight requests finish
func (api *APIServer) Shutdown(ctx context.Context) error {
	if api.server == nil {
		return nil
	}
	return api.server.Shutdown(ctx)
}
