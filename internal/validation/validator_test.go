package validation

import (
	"strings"
	"testing"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/models"
)

const authorID = "550e8400-e29b-41d4-a716-446655440001"

func hasField(errors Errors, field string) bool {
	for _, err := range errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name       string
		post       *models.Post
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid post",
			post:       &models.Post{Title: "Hello", Content: "World", AuthorID: authorID},
			wantErrors: 0,
		},
		{
			name:       "missing title",
			post:       &models.Post{Content: "World", AuthorID: authorID},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title",
			post:       &models.Post{Title: "   ", Content: "World", AuthorID: authorID},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "title too long",
			post:       &models.Post{Title: strings.Repeat("a", models.MaxTitleLength+1), Content: "World", AuthorID: authorID},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "title at limit",
			post:       &models.Post{Title: strings.Repeat("a", models.MaxTitleLength), Content: "World", AuthorID: authorID},
			wantErrors: 0,
		},
		{
			name:       "missing everything",
			post:       &models.Post{},
			wantErrors: 3,
			wantFields: []string{"title", "content", "author"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidatePost(tt.post)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidatePost() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}
			for _, wantField := range tt.wantFields {
				if !hasField(errors, wantField) {
					t.Errorf("Expected error for field '%s' but not found", wantField)
				}
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	postID := "550e8400-e29b-41d4-a716-446655440002"

	tests := []struct {
		name        string
		comment     *models.Comment
		wantErrors  int
		wantMessage string
	}{
		{
			name:       "valid comment",
			comment:    &models.Comment{Content: "Nice post", AuthorID: authorID, PostID: postID},
			wantErrors: 0,
		},
		{
			name:        "empty content",
			comment:     &models.Comment{AuthorID: authorID, PostID: postID},
			wantErrors:  1,
			wantMessage: "Comment content is required",
		},
		{
			name:       "exactly 500 characters",
			comment:    &models.Comment{Content: strings.Repeat("x", 500), AuthorID: authorID, PostID: postID},
			wantErrors: 0,
		},
		{
			name:        "501 characters",
			comment:     &models.Comment{Content: strings.Repeat("x", 501), AuthorID: authorID, PostID: postID},
			wantErrors:  1,
			wantMessage: "Comment cannot exceed 500 characters",
		},
		{
			name:       "multibyte characters counted as runes",
			comment:    &models.Comment{Content: strings.Repeat("é", 500), AuthorID: authorID, PostID: postID},
			wantErrors: 0,
		},
		{
			name:        "missing post reference",
			comment:     &models.Comment{Content: "Nice", AuthorID: authorID},
			wantErrors:  1,
			wantMessage: "Post reference is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateComment(tt.comment)
			if len(errors) != tt.wantErrors {
				t.Fatalf("ValidateComment() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}
			if tt.wantMessage != "" && errors[0].Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, errors[0].Message)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.RegisterRequest
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid registration",
			req:        &models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"},
			wantErrors: 0,
		},
		{
			name:       "invalid email",
			req:        &models.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "secret1"},
			wantErrors: 1,
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			req:        &models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "12345"},
			wantErrors: 1,
			wantFields: []string{"password"},
		},
		{
			name:       "name too long",
			req:        &models.RegisterRequest{Name: strings.Repeat("n", 51), Email: "ada@example.com", Password: "secret1"},
			wantErrors: 1,
			wantFields: []string{"name"},
		},
		{
			name:       "empty request",
			req:        &models.RegisterRequest{},
			wantErrors: 3,
			wantFields: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateRegistration(tt.req)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateRegistration() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}
			for _, wantField := range tt.wantFields {
				if !hasField(errors, wantField) {
					t.Errorf("Expected error for field '%s' but not found", wantField)
				}
			}
		})
	}
}

func TestValidateNoteForm(t *testing.T) {
	tests := []struct {
		name   string
		form   NoteForm
		fields map[string]string
	}{
		{
			name:   "valid form",
			form:   NoteForm{Title: "Hello", Author: "Al", Content: "Long enough body"},
			fields: map[string]string{},
		},
		{
			name: "blank fields",
			form: NoteForm{Title: "  ", Author: "", Content: "\n"},
			fields: map[string]string{
				"title":   "Title is required",
				"author":  "Author name is required",
				"content": "Content is required",
			},
		},
		{
			name: "too short after trimming",
			form: NoteForm{Title: " ab ", Author: " a", Content: "123456789 "},
			fields: map[string]string{
				"title":   "Title must be at least 3 characters long",
				"author":  "Author name must be at least 2 characters long",
				"content": "Content must be at least 10 characters long",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateNoteForm(tt.form)
			if len(errors) != len(tt.fields) {
				t.Fatalf("ValidateNoteForm() got %d errors, want %d. Errors: %v", len(errors), len(tt.fields), errors)
			}
			for field, message := range tt.fields {
				if got := errors.Field(field); got != message {
					t.Errorf("field %s: got %q, want %q", field, got, message)
				}
			}
		})
	}
}

func TestErrors_Error(t *testing.T) {
	errors := Errors{
		{Field: "title", Message: "Post title is required"},
		{Field: "content", Message: "Post content is required"},
	}

	if got := errors.Error(); got != "Post title is required, Post content is required" {
		t.Errorf("unexpected joined message: %q", got)
	}
	if got := errors.Field("content"); got != "Post content is required" {
		t.Errorf("unexpected content message: %q", got)
	}
}

func TestCanonicalID(t *testing.T) {
	id, err := CanonicalID("550E8400-E29B-41D4-A716-446655440000")
	if err != nil {
		t.Fatalf("CanonicalID failed: %v", err)
	}
	if id != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("expected lower-case id, got %s", id)
	}

	if _, err := CanonicalID("not-a-uuid"); err != apperror.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := CanonicalID("12345"); err != apperror.ErrInvalidID {
		t.Errorf("expected ErrInvalidID for 12345, got %v", err)
	}
}
