package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MaxPageSize caps the limit a client can request.
const MaxPageSize = 100

// Pagination holds pagination parameters.
type Pagination struct {
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	Offset   int `json:"offset"`
	Total    int `json:"total"`
	LastPage int `json:"last_page"`
}

// GetPagination extracts the page and limit from the query parameters,
// falling back to the defaults when they are missing or invalid.
func GetPagination(c *fiber.Ctx, defaultPage, defaultLimit int) Pagination {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Contains reports whether the i-th item falls on this page.
func (p *Pagination) Contains(i int) bool {
	return i >= p.Offset && i < p.Offset+p.Limit
}

func (p *Pagination) SetTotal(total int) {
	p.Total = total
	p.LastPage = (total + p.Limit - 1) / p.Limit
}
