package models

import (
	"time"
)

// Comment represents a comment on a post
type Comment struct {
	ID         string        `json:"id" bson:"_id"`
	Content    string        `json:"content" bson:"content"`
	AuthorID   string        `json:"-" bson:"author"`
	Author     *OwnerSummary `json:"author" bson:"-"`
	PostID     string        `json:"post" bson:"post"`
	IsApproved bool          `json:"isApproved" bson:"isApproved"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// MaxCommentLength is the maximum number of characters in a comment
const MaxCommentLength = 500

// CreateCommentRequest is the body of POST /api/comments
type CreateCommentRequest struct {
	Content string `json:"content" form:"content"`
	PostID  string `json:"postId" form:"postId"`
}

// UpdateCommentRequest is the body of PUT /api/comments/:id
type UpdateCommentRequest struct {
	Content *string `json:"content" form:"content"`
}

// CommentFilter selects comments for listing
type CommentFilter struct {
	PostID       string
	ApprovedOnly bool
}
