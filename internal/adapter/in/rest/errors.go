package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"tweetfeed/internal/service"
	"tweetfeed/pkg/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(ctx).Error("failed to encode response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, kind, message string) {
	writeJSON(ctx, w, status, errorResponse{Error: kind, Message: message})
}

// handleServiceError maps service errors to HTTP responses. Error details
// are logged, never sent to the client: invalid requests get invalidMsg.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, invalidMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		logger.FromContext(ctx).Debug("rejected request", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "InvalidRequest", invalidMsg)

	case errors.Is(err, service.ErrCorruptRecord):
		logger.FromContext(ctx).Error("corrupt tweet data", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")

	default:
		logger.FromContext(ctx).Error("tweet service failure", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
