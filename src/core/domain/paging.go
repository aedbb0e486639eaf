package domain

import "math"

// PagingFilter selects one page of a listing.
// Page is 1-based.
type PagingFilter struct {
	Page  int `validate:"gte=1"`
	Limit int `validate:"gte=1"`
}

// Offset returns the number of rows to skip for this page.
// The result saturates at math.MaxInt instead of wrapping.
func (f PagingFilter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	skipped := f.Page - 1
	if skipped > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return skipped * f.Limit
}

// PagingInfo describes where a page sits in the full listing.
type PagingInfo struct {
	PageNumber int
	PagesCount int
}

// NewPagingInfo computes paging metadata from the total row count.
// PagesCount depends only on total and limit, never on the requested page,
// so out-of-range pages still report the real number of pages.
func NewPagingInfo(filter PagingFilter, total int64) PagingInfo {
	info := PagingInfo{PageNumber: filter.Page}
	if filter.Limit <= 0 || total <= 0 {
		return info
	}
	limit := int64(filter.Limit)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	info.PagesCount = int(pages)
	return info
}

// HasPage reports whether the requested page holds at least one row.
func (p PagingInfo) HasPage() bool {
	return p.PageNumber >= 1 && p.PageNumber <= p.PagesCount
}
