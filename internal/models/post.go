package models

import (
	"time"
)

// Post represents a blog post owned by a user
type Post struct {
	ID          string        `json:"id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Content     string        `json:"content" bson:"content"`
	AuthorID    string        `json:"-" bson:"author"`
	Author      *OwnerSummary `json:"author" bson:"-"`
	Categories  []string      `json:"categories" bson:"categories"`
	Tags        []string      `json:"tags" bson:"tags"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// MaxTitleLength is the maximum number of characters in a post title
const MaxTitleLength = 200

// CreatePostRequest is the body of POST /api/posts. Any author field in the
// body is ignored.
type CreatePostRequest struct {
	Title      string   `json:"title" form:"title"`
	Content    string   `json:"content" form:"content"`
	Categories []string `json:"categories" form:"categories"`
	Tags       []string `json:"tags" form:"tags"`
}

// UpdatePostRequest is the body of PUT /api/posts/:id. A nil field is absent
// from the payload and leaves the stored value unchanged.
type UpdatePostRequest struct {
	Title       *string   `json:"title" form:"title"`
	Content     *string   `json:"content" form:"content"`
	Categories  *[]string `json:"categories" form:"categories"`
	Tags        *[]string `json:"tags" form:"tags"`
	IsPublished *bool     `json:"isPublished" form:"isPublished"`
}

// PostFilter selects posts for listing
type PostFilter struct {
	AuthorID      string
	Search        string
	Category      string
	PublishedOnly bool
}
