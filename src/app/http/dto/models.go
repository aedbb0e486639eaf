package dto

import "jokecatalog/src/core/domain"

// SearchQuery binds the paging query string of list endpoints.
// Range checks belong to the facade; binding only rejects non-integers.
type SearchQuery struct {
	Page  *int `form:"page"`
	Limit *int `form:"limit"`
}

// ToFilter applies defaults for omitted parameters: page 1 and defaultLimit.
func (q SearchQuery) ToFilter(defaultLimit int) domain.PagingFilter {
	filter := domain.PagingFilter{Page: 1, Limit: defaultLimit}
	if q.Page != nil {
		filter.Page = *q.Page
	}
	if q.Limit != nil {
		filter.Limit = *q.Limit
	}
	return filter
}
