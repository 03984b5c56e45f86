// Package view holds the denormalized read models returned by the view
// composer together with the paging contract they are delivered in.
package view

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// maxOffset bounds (page-1)*limit so Offset never overflows.
	maxOffset = math.MaxInt32
)

// PageRequest is a normalized page/limit pair. Build it with NewPageRequest or ParsePageRequest.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page and limit to positive integers and caps limit at maxLimit.
// A maxLimit <= 0 falls back to MaxLimit. Page is capped so the offset stays within maxOffset.
func NewPageRequest(page, limit, maxLimit int) PageRequest {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if lastPage := maxOffset/limit + 1; page > lastPage {
		page = lastPage
	}

	return PageRequest{Page: page, Limit: limit}
}

// ParsePageRequest reads raw query values. Empty or non-numeric input yields
// the defaults (page 1, limit 10); numeric input is clamped by NewPageRequest.
func ParsePageRequest(rawPage, rawLimit string, maxLimit int) PageRequest {
	return NewPageRequest(
		parseOr(rawPage, DefaultPage),
		parseOr(rawLimit, DefaultLimit),
		maxLimit,
	)
}

// Offset is the number of rows skipped before this page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

func parseOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	return n
}

// Page is one slice of a paginated collection.
type Page[T any] struct {
	Docs          []T   `json:"docs"`
	TotalDocs     int64 `json:"totalDocs"`
	Limit         int   `json:"limit"`
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	PagingCounter int   `json:"pagingCounter"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	HasNextPage   bool  `json:"hasNextPage"`
	PrevPage      *int  `json:"prevPage"`
	NextPage      *int  `json:"nextPage"`
}

// NewPage computes the navigation fields for docs fetched with req out of total rows.
func NewPage[T any](docs []T, total int64, req PageRequest) *Page[T] {
	if docs == nil {
		docs = []T{}
	}

	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	p := &Page[T]{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         req.Limit,
		Page:          req.Page,
		TotalPages:    totalPages,
		PagingCounter: req.Offset() + 1,
		HasPrevPage:   req.Page > 1,
		HasNextPage:   req.Page < totalPages,
	}
	if p.HasPrevPage {
		prev := req.Page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := req.Page + 1
		p.NextPage = &next
	}

	return p
}

// Map converts the docs of a page, keeping its navigation fields.
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	docs := make([]U, 0, len(p.Docs))
	for _, d := range p.Docs {
		docs = append(docs, fn(d))
	}

	return &Page[U]{
		Docs:          docs,
		TotalDocs:     p.TotalDocs,
		Limit:         p.Limit,
		Page:          p.Page,
		TotalPages:    p.TotalPages,
		PagingCounter: p.PagingCounter,
		HasPrevPage:   p.HasPrevPage,
		HasNextPage:   p.HasNextPage,
		PrevPage:      p.PrevPage,
		NextPage:      p.NextPage,
	}
}

// Sort is a caller supplied ordering. Field names are the public (JSON) names.
type Sort struct {
	Field string
	Desc  bool
}

// ParseSort reads sortBy/sortType query values. An empty field means the view default.
// Only "asc" and "desc" are accepted directions; ok is false otherwise.
func ParseSort(field, direction string) (sort Sort, ok bool) {
	sort.Field = strings.TrimSpace(field)
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "desc":
		sort.Desc = true
	case "asc":
		sort.Desc = false
	default:
		return sort, false
	}

	return sort, true
}
