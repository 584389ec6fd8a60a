package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/models"
	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single field failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is a list of field failures. It implements error so that a
// failed validation can travel up to the HTTP layer unchanged.
type Errors []ValidationError

func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i, ve := range e {
		messages[i] = ve.Message
	}
	return strings.Join(messages, ", ")
}

// Field returns the first message recorded for field, or ""
func (e Errors) Field(field string) string {
	for _, ve := range e {
		if ve.Field == field {
			return ve.Message
		}
	}
	return ""
}

// ValidatePost validates the stored state of a post
func ValidatePost(post *models.Post) Errors {
	var errors Errors

	if strings.TrimSpace(post.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "Post title is required"})
	} else if utf8.RuneCountInString(post.Title) > models.MaxTitleLength {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("Title cannot exceed %d characters", models.MaxTitleLength),
		})
	}

	if strings.TrimSpace(post.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "Post content is required"})
	}

	if post.AuthorID == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "Post author is required"})
	}

	return errors
}

// ValidateComment validates the stored state of a comment
func ValidateComment(comment *models.Comment) Errors {
	var errors Errors

	if strings.TrimSpace(comment.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "Comment content is required"})
	} else if utf8.RuneCountInString(comment.Content) > models.MaxCommentLength {
		errors = append(errors, ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("Comment cannot exceed %d characters", models.MaxCommentLength),
		})
	}

	if comment.AuthorID == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "Comment author is required"})
	}
	if comment.PostID == "" {
		errors = append(errors, ValidationError{Field: "post", Message: "Post reference is required"})
	}

	return errors
}

// ValidateRegistration validates a sign-up request
func ValidateRegistration(req *models.RegisterRequest) Errors {
	errors := validateProfile(req.Name, "")

	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "Email is required"})
	} else if !emailRegex.MatchString(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "Please enter a valid email", Value: req.Email})
	}

	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "Password is required"})
	} else if utf8.RuneCountInString(req.Password) < models.MinPasswordLength {
		errors = append(errors, ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("Password must be at least %d characters", models.MinPasswordLength),
		})
	}

	return errors
}

// ValidateUser validates the stored state of a user profile
func ValidateUser(user *models.User) Errors {
	return validateProfile(user.Name, user.Bio)
}

func validateProfile(name, bio string) Errors {
	var errors Errors

	if strings.TrimSpace(name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "Name is required"})
	} else if utf8.RuneCountInString(name) > models.MaxNameLength {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("Name cannot exceed %d characters", models.MaxNameLength),
		})
	}

	if utf8.RuneCountInString(bio) > models.MaxBioLength {
		errors = append(errors, ValidationError{
			Field:   "bio",
			Message: fmt.Sprintf("Bio cannot exceed %d characters", models.MaxBioLength),
		})
	}

	return errors
}

// NoteForm holds the fields of the notebook create and edit forms
type NoteForm struct {
	Title   string
	Author  string
	Content string
}

// ValidateNoteForm checks the trimmed form fields against the minimum lengths
// shown to the user
func ValidateNoteForm(form NoteForm) Errors {
	var errors Errors

	checkMin := func(field, value, required, short string, min int) {
		value = strings.TrimSpace(value)
		if value == "" {
			errors = append(errors, ValidationError{Field: field, Message: required})
		} else if utf8.RuneCountInString(value) < min {
			errors = append(errors, ValidationError{Field: field, Message: short})
		}
	}

	checkMin("title", form.Title, "Title is required", "Title must be at least 3 characters long", 3)
	checkMin("author", form.Author, "Author name is required", "Author name must be at least 2 characters long", 2)
	checkMin("content", form.Content, "Content is required", "Content must be at least 10 characters long", 10)

	return errors
}

// CanonicalID normalizes an identifier to its lower-case UUID form.
// It returns apperror.ErrInvalidID when s is not a UUID.
func CanonicalID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", apperror.ErrInvalidID
	}
	return id.String(), nil
}
