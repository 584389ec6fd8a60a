package api

import (
	"errors"
	"net/http"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/validation"
	"github.com/gin-gonic/gin"
)

const (
	msgSomethingWrong = "Something went wrong!"
	msgInvalidID      = "Invalid ID format"
	msgDuplicateEmail = "Email already exists"
	msgInvalidBody    = "Invalid request body"
	msgTooLarge       = "Request entity too large"
)

// translateError maps an error attached by a handler to a status and
// client-facing message. A string Meta on the error replaces the generic
// 500 message.
func translateError(ginErr *gin.Error) (int, string) {
	err := ginErr.Err

	var verrs validation.Errors
	var appErr *apperror.Error
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, verrs.Error()
	case errors.Is(err, apperror.ErrInvalidID):
		return http.StatusBadRequest, msgInvalidID
	case errors.Is(err, repository.ErrDuplicateEmail):
		return http.StatusBadRequest, msgDuplicateEmail
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, msgTooLarge
	case errors.As(err, &appErr):
		return appErr.Status, appErr.Message
	}

	if fallback, ok := ginErr.Meta.(string); ok && fallback != "" {
		return http.StatusInternalServerError, fallback
	}
	return http.StatusInternalServerError, msgSomethingWrong
}
