package mapper

import (
	"jokecatalog/src/core/domain"
	"jokecatalog/src/core/dto"
)

// RoleToResponse maps a role to its API representation.
func RoleToResponse(r domain.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: r.ID, Name: r.Name}
}

// RolesToResponses maps roles in order. It never returns nil.
func RolesToResponses(roles []domain.Role) []dto.RoleResponse {
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleToResponse(r))
	}
	return out
}
