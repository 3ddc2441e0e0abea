package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/cache"
	"github.com/wayfarerhq/wayfarer/internal/constants"
)

// TokenRequired guards every endpoint except signup, login and the ops
// surface with the interim static bearer token. The raw Authorization
// header value is compared, no Bearer prefix.
func TokenRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(constants.HeaderAuthorization) != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
			return
		}
		c.Next()
	}
}

// SessionRequired resolves the Session-ID header to an identity and
// injects it into the request context.
func (h *Handler) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(constants.HeaderSessionID)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrSessionInvalid})
			return
		}
		id, err := h.sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, cache.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrSessionInvalid})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: "internal error"})
			return
		}
		c.Set(ctxKeySub, id.Sub)
		c.Set(ctxKeyUserName, id.Username)
		c.Next()
	}
}
