package dto

// RoleResponse is a role as seen by callers.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
