package dto

import "time"

// JokeRequest is the input for adding or updating a joke.
// Content is a pointer so a missing value can be told apart from an empty string.
type JokeRequest struct {
	Content *string `json:"content"`
}

// AuditResponse exposes the audit metadata of a record.
type AuditResponse struct {
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdatedBy *string    `json:"updated_by,omitempty"`
}

// JokeResponse is a joke as seen by callers.
type JokeResponse struct {
	UUID    string        `json:"uuid"`
	Content string        `json:"content"`
	Audit   AuditResponse `json:"audit"`
}

// JokeSearchResponse is one page of jokes.
type JokeSearchResponse struct {
	Data       []JokeResponse     `json:"data"`
	PagingInfo PagingInfoResponse `json:"paging_info"`
}

// JokeStatisticsResponse aggregates joke counters.
type JokeStatisticsResponse struct {
	Count int64 `json:"count"`
}
