package post

import (
	"net/http"

	"Posts/internal/api/handlers"
	"Posts/internal/core/posts"
)

// GetHandler handles fetching a single post
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleGet handles GET /api/posts/id/{id}
// Response: {"data": Post}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, posts.GetPostResponse{Data: post})
}
