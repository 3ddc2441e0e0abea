package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
)

// CachePosts eagerly stores every popular post in Redis. The server's
// background refresher runs the same operation on a timer.
func (h *Handler) CachePosts(c *gin.Context) {
	posts, err := h.docs.ListPosts(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	cached, err := h.cache.CachePopular(c.Request.Context(), posts, h.minReactions)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgPostsCached, constants.JSONKeyCached: cached})
}
