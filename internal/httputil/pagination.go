package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageLimit is used when the request has no limit parameter.
	DefaultPageLimit = 50
	// MaxPageLimit caps the limit parameter.
	MaxPageLimit = 100
)

// Page is a parsed offset/limit pair.
type Page struct {
	Offset int
	Limit  int
}

// ParsePagination reads the offset and limit query parameters.
func ParsePagination(c *gin.Context) (Page, error) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return Page{}, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageLimit)))
	if err != nil || limit < 1 || limit > MaxPageLimit {
		return Page{}, fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxPageLimit)
	}

	return Page{Offset: offset, Limit: limit}, nil
}
