package posts

import "context"

// Service defines the business logic interface for posts
// Each write runs the validation rule set before the repository is touched
type Service interface {
	// ListPosts returns every post in insertion order
	ListPosts(ctx context.Context) ([]*Post, error)

	// GetPost returns a single post or ErrNotFound
	GetPost(ctx context.Context, id int64) (*Post, error)

	// CreatePost validates a raw JSON payload and inserts a new post
	CreatePost(ctx context.Context, payload map[string]any) (*Post, error)

	// UpdatePost validates a raw JSON payload and replaces title and content
	// Validation runs before the existence check, so an invalid payload
	// against a missing id reports the validation failure
	UpdatePost(ctx context.Context, id int64, payload map[string]any) (*Post, error)

	// DeletePost permanently removes a post
	DeletePost(ctx context.Context, id int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// List returns all posts ordered by id
	List(ctx context.Context) ([]*Post, error)

	// Create inserts a new post and fills ID, CreatedAt and UpdatedAt
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by id
	// Returns ErrNotFound when the row does not exist
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update overwrites title and content and refreshes UpdatedAt
	// Returns ErrNotFound when the row does not exist
	Update(ctx context.Context, post *Post) error

	// Delete removes a post permanently
	// Returns ErrNotFound when the row does not exist
	Delete(ctx context.Context, id int64) error
}
