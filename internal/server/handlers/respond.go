package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nkarpenko/bookshelf/internal/server/authn"
	"github.com/nkarpenko/bookshelf/internal/server/service"
	"github.com/nkarpenko/bookshelf/internal/server/storage"
	"github.com/nkarpenko/bookshelf/pkg/api"
)

// sendJSON writes data as a JSON response with the given status code.
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response.
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sendServiceError maps service-layer errors to HTTP statuses. Anything
// outside the known taxonomy is logged and surfaced as a generic 500.
func sendServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		if strings.HasSuffix(verr.Message, "already taken") {
			status = http.StatusConflict
		}
		sendError(logger, w, verr.Message, status)
	case errors.Is(err, service.ErrCouldNotAuthenticate):
		sendError(logger, w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, authn.ErrNotLoggedIn):
		sendError(logger, w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, storage.ErrUserNotFound):
		sendError(logger, w, "user not found", http.StatusNotFound)
	default:
		logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}
