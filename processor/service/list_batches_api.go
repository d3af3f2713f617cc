package service

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api *APIServer) ListBatchesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batchIDs, err := api.archive.List(ctx)
	if err != nil {
		api.logger.Error("Error listing archived batches", "error", err)
		http.Error(w, fmt.Sprintf("Error listing batches: %v", err),
			http.StatusInternalServerError)
		return
	}

	// Set content type and status code before encoding
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(batchIDs); err != nil {
		// Can't send error response after WriteHeader, just log it
		api.logger.Error("Error encoding batch ids to JSON", "error", err)
		return
	}
}
