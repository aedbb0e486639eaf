package dto

// PagingInfoResponse is the paging summary returned with a page of results.
type PagingInfoResponse struct {
	PageNumber int `json:"page_number"`
	PagesCount int `json:"pages_count"`
}
