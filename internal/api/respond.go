package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/blog-api/internal/apperror"
	"github.com/blog-api/internal/models"
	"github.com/gin-gonic/gin"
)

const maxPageLimit = 100

// respond writes a successful envelope
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: data})
}

// respondPage writes a successful envelope carrying one page of a listing
func respondPage(c *gin.Context, data interface{}, pagination *models.Pagination) {
	c.JSON(http.StatusOK, models.Response{Success: true, Data: data, Pagination: pagination})
}

// fail hands err to the error middleware with a fallback message used when
// err is not one of the known failure kinds
func fail(c *gin.Context, err error, fallback string) {
	c.Error(err).SetMeta(fallback)
}

// bind decodes a JSON or form-encoded body into obj. On failure it records
// the error and returns false.
func bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(err)
		} else {
			c.Error(apperror.BadRequest(msgInvalidBody))
		}
		return false
	}
	return true
}

// pageFromQuery reads page and limit from the query string. Missing,
// malformed or non-positive values fall back to page 1 and defaultLimit.
// page is capped so the record offset stays representable.
func pageFromQuery(c *gin.Context, defaultLimit int) models.Page {
	page := positiveInt(c.Query("page"), 1)
	limit := positiveInt(c.Query("limit"), defaultLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return models.Page{Number: page, Limit: limit}
}

func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func formatUptime(d time.Duration) string {
	return strconv.Itoa(int(d.Seconds())) + " seconds"
}
