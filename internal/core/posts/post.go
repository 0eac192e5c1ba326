package posts

import (
	"time"
)

// Post represents a row of the posts table
// JSON field names follow the snake_case shape clients of the API already rely on
type Post struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
}

// PostInput is a create/update payload that passed validation
// Both fields are always present: updates replace the whole post
type PostInput struct {
	Title   string
	Content string
}

// Field limits enforced by the validation rule set and mirrored by the schema
const (
	TitleMaxLength   = 50
	ContentMaxLength = 255
)

// ListPostsResponse is the envelope returned by list, create and update
type ListPostsResponse struct {
	Data []*Post `json:"data"`
}

// GetPostResponse is the envelope returned by show
type GetPostResponse struct {
	Data *Post `json:"data"`
}

// DeletePostResponse is the envelope returned by delete
type DeletePostResponse struct {
	Status int `json:"status"`
}
