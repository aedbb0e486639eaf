package handler

import (
	"github.com/gin-gonic/gin"

	httpdto "jokecatalog/src/app/http/dto"
	"jokecatalog/src/app/http/response"
	"jokecatalog/src/app/middleware"
	"jokecatalog/src/core/dto"
	"jokecatalog/src/core/usecase"
)

// JokeHandler maps the joke facade onto HTTP.
type JokeHandler struct {
	facade       *usecase.JokeFacade
	defaultLimit int
}

func NewJokeHandler(facade *usecase.JokeFacade, defaultLimit int) *JokeHandler {
	return &JokeHandler{facade: facade, defaultLimit: defaultLimit}
}

// Search lists one page of jokes.
// GET /v1/jokes?page=1&limit=10
func (h *JokeHandler) Search(c *gin.Context) {
	var q httpdto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid paging parameters", middleware.GetRequestID(c))
		return
	}

	res, err := h.facade.Search(c.Request.Context(), q.ToFilter(h.defaultLimit))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, res)
}

// Get returns one joke.
// GET /v1/jokes/:uuid
func (h *JokeHandler) Get(c *gin.Context) {
	res, err := h.facade.Get(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, res)
}

// Add creates a joke.
// POST /v1/jokes
func (h *JokeHandler) Add(c *gin.Context) {
	var req dto.JokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	res, err := h.facade.Add(c.Request.Context(), req)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, res)
}

// Update replaces a joke's content.
// PUT /v1/jokes/:uuid
func (h *JokeHandler) Update(c *gin.Context) {
	var req dto.JokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	res, err := h.facade.Update(c.Request.Context(), c.Param("uuid"), req)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, res)
}

// Remove deletes a joke.
// DELETE /v1/jokes/:uuid
func (h *JokeHandler) Remove(c *gin.Context) {
	if err := h.facade.Remove(c.Request.Context(), c.Param("uuid")); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// Statistics returns joke counters.
// GET /v1/statistics/jokes
func (h *JokeHandler) Statistics(c *gin.Context) {
	res, err := h.facade.GetStatistics(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, res)
}
