package routes

import (
	"Posts/internal/api/handlers/post"
	"Posts/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the posts REST endpoints on the router
// maxBodyBytes bounds create/update request bodies (<= 0 uses the handler default)
func RegisterPostRoutes(r chi.Router, service posts.Service, maxBodyBytes int64) {
	// Initialize handlers
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service, maxBodyBytes)
	updateHandler := post.NewUpdateHandler(service, maxBodyBytes)
	deleteHandler := post.NewDeleteHandler(service)

	r.Route("/api", func(r chi.Router) {
		// Collection
		r.Get("/posts", listHandler.HandleList)
		r.Post("/post", createHandler.HandleCreate)

		// Single post by numeric id
		r.Get("/posts/id/{id}", getHandler.HandleGet)
		r.Put("/posts/id/{id}", updateHandler.HandleUpdate)
		r.Delete("/posts/id/{id}", deleteHandler.HandleDelete)
	})
}
