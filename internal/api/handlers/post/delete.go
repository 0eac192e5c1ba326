package post

import (
	"net/http"

	"Posts/internal/api/handlers"
	"Posts/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /api/posts/id/{id}
// Response: {"status": 200}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	if err := h.service.DeletePost(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, posts.DeletePostResponse{Status: http.StatusOK})
}
