package services

import (
	"fmt"

	"github.com/panseek/panseek/internal/core/domain"
)

// PageView is one page of a result list plus the navigation facts a
// listing needs to render.
type PageView struct {
	// Items is the slice of results on this page.
	Items []domain.ResultItem

	// Page is the 1-based page number.
	Page int

	// TotalPages is ceil(total / pageSize), minimum 1.
	TotalPages int

	// TotalCount is the length of the full result list.
	TotalCount int

	// HasPrev is true when a previous page exists.
	HasPrev bool

	// HasNext is true when a next page exists.
	HasNext bool
}

// TotalPages computes ceil(total / pageSize) with a minimum of 1, so
// an empty result list still has exactly one (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page slices one page out of results. Callers clamp page into
// [1, TotalPages] before calling; a page outside that interval is a
// caller bug and reported as domain.ErrPageOutOfRange.
//
// Page is pure.
func Page(results []domain.ResultItem, page, pageSize int) (*PageView, error) {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	totalPages := TotalPages(len(results), pageSize)
	if page < 1 || page > totalPages {
		return nil, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, page, totalPages)
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(results))
	if start > len(results) {
		start = len(results)
	}

	return &PageView{
		Items:      results[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(results),
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

// ResolveIndex maps a user-typed, 1-based in-page index to a 1-based
// global index into the full result list. The global index is
// (page-1)*pageSize + typed. Indexes that land outside
// [1, len(results)] are reported as domain.ErrIndexOutOfRange.
func ResolveIndex(results []domain.ResultItem, page, pageSize, typed int) (int, error) {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	global := (page-1)*pageSize + typed
	if typed < 1 || global < 1 || global > len(results) {
		return 0, fmt.Errorf("%w: index %d with %d results", domain.ErrIndexOutOfRange, global, len(results))
	}
	return global, nil
}
