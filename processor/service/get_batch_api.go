package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/netvista/telemetry-pipeline/processor/exporter"
)

func (api *APIServer) GetBatchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batchID := r.URL.Query().Get("batch_id")
	if batchID == "" {
		http.Error(w, "Missing batch_id parameter", http.StatusBadRequest)
		return
	}

	raw, err := api.archive.Get(ctx, batchID)
	if errors.Is(err, exporter.ErrNotFound) {
		http.Error(w, fmt.Sprintf("No archived payload for batch %s", batchID),
			http.StatusNotFound)
		return
	}
	if err != nil {
		api.logger.Error("Error retrieving archived batch", "batch_id", batchID, "error", err)
		http.Error(w, fmt.Sprintf("Error retrieving batch: %v", err),
			http.StatusInternalServerError)
		return
	}

	// The archived payload is stored as the JSON it arrived as
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		api.logger.Error("Error writing batch response", "batch_id", batchID, "error", err)
	}
}
