package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/social"
)

// loadPost fetches a post by the :id path parameter, writing the 404
// response itself when absent.
func (h *Handler) loadPost(c *gin.Context) (*docstore.Post, bool) {
	postID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
		return nil, false
	}
	post, err := h.docs.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
			return nil, false
		}
		internalError(c)
		return nil, false
	}
	return post, true
}

// loadDestination fetches a destination by the :id path parameter,
// writing the 404 response itself when absent.
func (h *Handler) loadDestination(c *gin.Context) (*docstore.Destination, bool) {
	destID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDestinationNotFound})
		return nil, false
	}
	dest, err := h.docs.GetDestination(c.Request.Context(), destID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDestinationNotFound})
			return nil, false
		}
		internalError(c)
		return nil, false
	}
	return dest, true
}

// AddPostComment appends a comment to a post.
func (h *Handler) AddPostComment(c *gin.Context) {
	id, _ := identity(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	text := c.PostForm("comment")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCommentRequired})
		return
	}
	post.Comments = social.AppendComment(post.Comments, id.Sub, id.Username, text)
	if err := h.docs.UpdatePost(c.Request.Context(), post); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgCommentAdded})
}

// EditPostComment rewrites the author's own comment.
func (h *Handler) EditPostComment(c *gin.Context) {
	id, _ := identity(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	cmt := social.FindOwnComment(post.Comments, commentID, id.Sub)
	if cmt == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	text := c.PostForm("comment")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCommentRequired})
		return
	}
	social.EditComment(cmt, text)
	if err := h.docs.UpdatePost(c.Request.Context(), post); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgCommentEdited})
}

// DeletePostComment removes the author's own comment.
func (h *Handler) DeletePostComment(c *gin.Context) {
	id, _ := identity(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	if social.FindOwnComment(post.Comments, commentID, id.Sub) == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	post.Comments = social.RemoveComment(post.Comments, commentID)
	if err := h.docs.UpdatePost(c.Request.Context(), post); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgCommentDeleted})
}

// AddDestinationComment appends a comment to a destination.
func (h *Handler) AddDestinationComment(c *gin.Context) {
	id, _ := identity(c)
	dest, ok := h.loadDestination(c)
	if !ok {
		return
	}
	text := c.PostForm("comment")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCommentRequired})
		return
	}
	dest.Comments = social.AppendComment(dest.Comments, id.Sub, id.Username, text)
	if err := h.docs.UpdateDestination(c.Request.Context(), dest); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgCommentAdded})
}

// EditDestinationComment rewrites the author's own comment.
func (h *Handler) EditDestinationComment(c *gin.Context) {
	id, _ := identity(c)
	dest, ok := h.loadDestination(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	cmt := social.FindOwnComment(dest.Comments, commentID, id.Sub)
	if cmt == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	text := c.PostForm("comment")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCommentRequired})
		return
	}
	social.EditComment(cmt, text)
	if err := h.docs.UpdateDestination(c.Request.Context(), dest); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgCommentEdited})
}

// DeleteDestinationComment removes the author's own comment.
func (h *Handler) DeleteDestinationComment(c *gin.Context) {
	id, _ := identity(c)
	dest, ok := h.loadDestination(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	if social.FindOwnComment(dest.Comments, commentID, id.Sub) == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCommentNotFound})
		return
	}
	dest.Comments = social.RemoveComment(dest.Comments, commentID)
	if err := h.docs.UpdateDestination(c.Request.Context(), dest); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgCommentDeleted})
}
