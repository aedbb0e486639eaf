package handler

import (
	"github.com/gin-gonic/gin"

	"jokecatalog/src/app/http/response"
	"jokecatalog/src/app/middleware"
	"jokecatalog/src/core/usecase"
)

// RoleHandler serves the role listing.
type RoleHandler struct {
	facade *usecase.RoleFacade
}

func NewRoleHandler(facade *usecase.RoleFacade) *RoleHandler {
	return &RoleHandler{facade: facade}
}

// List returns every role.
// GET /v1/roles
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.facade.GetAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, roles)
}
