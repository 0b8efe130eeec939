// Package listing holds the search and pagination parameters shared by the
// list endpoints.
package listing

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type Params struct {
	Query   string
	Page    int
	PerPage int
}

// Normalize clamps page to [1, MaxInt32/perPage] and falls back to def for
// perPage.
func (p Params) Normalize(def int) Params {
	p.Query = strings.TrimSpace(p.Query)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = def
	}
	if p.PerPage > 500 {
		p.PerPage = 500
	}
	if last := math.MaxInt32 / p.PerPage; p.Page > last {
		p.Page = last
	}
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// FromContext reads q, page and perPage. paged reports whether the caller
// asked for a page at all; unpaged callers get the whole filtered list.
func FromContext(c echo.Context, def int) (p Params, paged bool) {
	p.Query = c.QueryParam("q")
	if v := c.QueryParam("page"); v != "" {
		p.Page, _ = strconv.Atoi(v)
		paged = true
	}
	if v := c.QueryParam("perPage"); v != "" {
		p.PerPage, _ = strconv.Atoi(v)
		paged = true
	}
	if !paged {
		return Params{Query: strings.TrimSpace(p.Query)}, false
	}
	return p.Normalize(def), true
}

// LikePattern turns a free-text query into a lower-case LIKE pattern with
// % and _ escaped by backslash.
func LikePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(q))) + "%"
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPage[T any](items []T, p Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if p.PerPage > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Page[T]{Items: items, Page: p.Page, PerPage: p.PerPage, Total: total, TotalPages: pages}
}
