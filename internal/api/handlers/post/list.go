package post

import (
	"net/http"

	"Posts/internal/core/posts"
)

// ListHandler handles listing all posts
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /api/posts
// Response: {"data": [Post, ...]}
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writePostList(w, r, h.service)
}
