package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/social"
)

// Reaction handlers are registered on both the bare target route and
// the comment route; the commentID path parameter decides which list
// the reaction lands in.

// reactionTarget picks the reaction list to mutate: the target itself
// or one of its comments.
func reactionTarget(c *gin.Context, reactions *[]docstore.Reaction, comments []docstore.Comment) (*[]docstore.Reaction, bool) {
	if c.Param("commentID") == "" {
		return reactions, true
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return nil, false
	}
	cmt := social.FindComment(comments, commentID)
	if cmt == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return nil, false
	}
	return &cmt.Reactions, true
}

func applyReaction(c *gin.Context, target *[]docstore.Reaction, sub int64, userName, reaction string) bool {
	updated, err := social.ApplyReaction(*target, sub, userName, reaction)
	if err != nil {
		if errors.Is(err, social.ErrDuplicateReaction) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSameReaction})
			return false
		}
		internalError(c)
		return false
	}
	*target = updated
	return true
}

// AddPostReaction reacts to a post or to one of its comments.
func (h *Handler) AddPostReaction(c *gin.Context) {
	id, _ := identity(c)
	reaction := c.PostForm("reaction")
	if !social.ValidReaction(reaction) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidReaction})
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
		return
	}
	post, err := h.docs.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
			return
		}
		internalError(c)
		return
	}
	target, ok := reactionTarget(c, &post.Reactions, post.Comments)
	if !ok {
		return
	}
	if !applyReaction(c, target, id.Sub, id.Username, reaction) {
		return
	}
	if err := h.docs.UpdatePost(c.Request.Context(), post); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgReactionAdded})
}

// RemovePostReaction deletes the user's reaction from a post or one of
// its comments. Removing a reaction that was never made is a no-op.
func (h *Handler) RemovePostReaction(c *gin.Context) {
	id, _ := identity(c)
	postID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
		return
	}
	post, err := h.docs.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
			return
		}
		internalError(c)
		return
	}
	target, ok := reactionTarget(c, &post.Reactions, post.Comments)
	if !ok {
		return
	}
	*target = social.RemoveReaction(*target, id.Sub)
	if err := h.docs.UpdatePost(c.Request.Context(), post); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgReactionDeleted})
}

// AddDestinationReaction reacts to a destination or to one of its
// comments.
func (h *Handler) AddDestinationReaction(c *gin.Context) {
	id, _ := identity(c)
	reaction := c.PostForm("reaction")
	if !social.ValidReaction(reaction) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidReaction})
		return
	}
	destID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDestinationNotFound})
		return
	}
	dest, err := h.docs.GetDestination(c.Request.Context(), destID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDestinationNotFound})
			return
		}
		internalError(c)
		return
	}
	target, ok := reactionTarget(c, &dest.Reactions, dest.Comments)
	if !ok {
		return
	}
	if !applyReaction(c, target, id.Sub, id.Username, reaction) {
		return
	}
	if err := h.docs.UpdateDestination(c.Request.Context(), dest); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgReactionAdded})
}

// RemoveDestinationReaction deletes the user's reaction from a
// destination or one of its comments.
func (h *Handler) RemoveDestinationReaction(c *gin.Context) {
	id, _ := identity(c)
	destID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDestinationNotFound})
		return
	}
	dest, err := h.docs.GetDestination(c.Request.Context(), destID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDestinationNotFound})
			return
		}
		internalError(c)
		return
	}
	target, ok := reactionTarget(c, &dest.Reactions, dest.Comments)
	if !ok {
		return
	}
	*target = social.RemoveReaction(*target, id.Sub)
	if err := h.docs.UpdateDestination(c.Request.Context(), dest); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgReactionDeleted})
}
