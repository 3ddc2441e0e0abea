package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// respondDestinationError maps destination resolution failures to the
// original wire format ("Destination with id N not found").
func respondDestinationError(c *gin.Context, err error) {
	var missing *docstore.MissingDestinationError
	if errors.As(err, &missing) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: fmt.Sprintf("Destination with id %d not found", missing.ID)})
		return
	}
	internalError(c)
}

// ListPosts returns every post document.
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.docs.ListPosts(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost validates the form fields, claims a serial id in
// PostgreSQL and inserts the document in MongoDB.
func (h *Handler) CreatePost(c *gin.Context) {
	id, _ := identity(c)
	content := c.PostForm("content")
	media := c.PostForm("media")
	destinations := c.PostForm("destinations")
	if content == "" || destinations == "" || media == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPostFieldsRequired})
		return
	}

	destIDs, err := parseIDList(destinations)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDestinations})
		return
	}
	refs, err := h.docs.ResolveDestinations(c.Request.Context(), destIDs)
	if err != nil {
		respondDestinationError(c, err)
		return
	}

	postID, err := h.repo.CreatePostRef(id.Sub)
	if err != nil {
		logging.Error("post ref insert failed", err, logging.Fields{constants.LogFieldSub: id.Sub})
		internalError(c)
		return
	}
	post := &docstore.Post{
		ID:           postID,
		UserID:       id.Sub,
		UserName:     id.Username,
		Content:      content,
		Media:        splitCSV(media),
		Destinations: refs,
		Reactions:    []docstore.Reaction{},
		Comments:     []docstore.Comment{},
	}
	if err := h.docs.InsertPost(c.Request.Context(), post); err != nil {
		logging.Error("post insert failed", err, logging.Fields{constants.LogFieldPostID: postID})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgPostCreated, "id": postID})
}

// GetPost serves a single post, reading through the popular-post cache.
func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
		return
	}
	post, _, err := h.cache.CachedPost(c.Request.Context(), postID, h.docs.GetPost)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPostNotFound})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, post)
}

// EditPost updates a post's fields. Only the author may edit; edited
// content carries the edited suffix.
func (h *Handler) EditPost(c *gin.Context) {
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
	if post.UserID != id.Sub {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
		return
	}

	if content := c.PostForm("content"); content != "" {
		post.Content = content + constants.EditedSuffix
	}
	if media := c.PostForm("media"); media != "" {
		post.Media = splitCSV(media)
	}
	if destinations := c.PostForm("destinations"); destinations != "" {
		destIDs, err := parseIDList(destinations)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDestinations})
			return
		}
		refs, err := h.docs.ResolveDestinations(c.Request.Context(), destIDs)
		if err != nil {
			respondDestinationError(c, err)
			return
		}
		post.Destinations = refs
	}

	if err := h.docs.UpdatePost(c.Request.Context(), post); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgPostEdited})
}

// DeletePost removes the document and its ownership row. Author-only.
func (h *Handler) DeletePost(c *gin.Context) {
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
	if post.UserID != id.Sub {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
		return
	}
	if err := h.docs.DeletePost(c.Request.Context(), postID); err != nil {
		internalError(c)
		return
	}
	if err := h.repo.DeletePostRef(postID); err != nil {
		logging.Error("post ref delete failed", err, logging.Fields{constants.LogFieldPostID: postID})
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgPostDeleted})
}
