package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meritlives/tools-core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts and validates pagination params from the request.
// Both ?size= and the original API's ?limit= are accepted.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	sizeRaw := c.Query("size")
	if sizeRaw == "" {
		sizeRaw = c.DefaultQuery("limit", "10")
	}
	size := parseIntOr(sizeRaw, DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Paginate applies limit/offset to a GORM query and returns the pagination metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   TotalPages(total, q.Size),
		Size:        q.Size,
		HasNextPage: q.Page < TotalPages(total, q.Size),
	}, nil
}

// TotalPages computes the page count for a total and page size.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
