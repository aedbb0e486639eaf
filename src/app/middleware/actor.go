package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jokecatalog/src/infra/audit"
)

// ActorHeader carries the identity of the calling user.
// Authentication happens upstream; the catalog only records who acted.
const ActorHeader = "X-User-Id"

// Actor copies the X-User-Id header into the request context so audit
// stamping can attribute changes. Requests without the header fall back to
// the configured default actor.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := strings.TrimSpace(c.GetHeader(ActorHeader)); actor != "" {
			c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}
