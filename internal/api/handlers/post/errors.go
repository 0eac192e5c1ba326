package post

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"Posts/internal/api/handlers"
	"Posts/internal/core/posts"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if verr, ok := posts.AsValidationError(err); ok {
		slog.DebugContext(r.Context(), "post validation failed", slog.String("error", verr.Error()))
		// 422 body is the bare field -> messages map
		handlers.WriteJSON(w, http.StatusUnprocessableEntity, verr.Fields)
		return
	}

	switch {
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")

	case errors.Is(err, posts.ErrInvalidPayload):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", posts.ErrInvalidPayload.Error())

	case errors.Is(err, errBodyTooLarge):
		handlers.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge", "Request body too large")

	case errors.Is(err, context.DeadlineExceeded):
		slog.ErrorContext(r.Context(), "post request timed out", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusGatewayTimeout, "Timeout", "Request timed out")

	default:
		// Don't leak internal error details to clients
		slog.ErrorContext(r.Context(), "unexpected error in post handler",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
