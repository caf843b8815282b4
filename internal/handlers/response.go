package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Message: msg})
}

// writeInternalError echoes err to the client, as every 500 of this API does.
func writeInternalError(w http.ResponseWriter, msg string, err error) {
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Message: msg,
		Error:   err.Error(),
	})
}
