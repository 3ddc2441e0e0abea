package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// ListDestinations returns every destination document.
func (h *Handler) ListDestinations(c *gin.Context) {
	dests, err := h.docs.ListDestinations(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, dests)
}

// CreateDestination inserts a destination with a unique name and a
// max-id+1 allocated id.
func (h *Handler) CreateDestination(c *gin.Context) {
	id, _ := identity(c)
	name := c.PostForm("name")
	description := c.PostForm("description")
	city := c.PostForm("city")
	country := c.PostForm("country")
	media := c.PostForm("media")
	if name == "" || description == "" || city == "" || country == "" || media == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDestinationFields})
		return
	}

	if _, err := h.docs.GetDestinationByName(c.Request.Context(), name); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDestinationNameTaken})
		return
	} else if !errors.Is(err, docstore.ErrNotFound) {
		internalError(c)
		return
	}

	destID, err := h.docs.NextDestinationID(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	dest := &docstore.Destination{
		ID:          destID,
		UserID:      id.Sub,
		UserName:    id.Username,
		Name:        name,
		Description: description,
		City:        city,
		Country:     country,
		Media:       splitCSV(media),
		Comments:    []docstore.Comment{},
		Reactions:   []docstore.Reaction{},
	}
	if err := h.docs.InsertDestination(c.Request.Context(), dest); err != nil {
		logging.Error("destination insert failed", err, logging.Fields{"destination_id": destID})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgDestinationAdded, "id": destID})
}

// EditDestination updates the provided fields. Author-only.
func (h *Handler) EditDestination(c *gin.Context) {
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
	if dest.UserID != id.Sub {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
		return
	}

	if name := c.PostForm("name"); name != "" {
		dest.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		dest.Description = description
	}
	if city := c.PostForm("city"); city != "" {
		dest.City = city
	}
	if country := c.PostForm("country"); country != "" {
		dest.Country = country
	}
	if media := c.PostForm("media"); media != "" {
		dest.Media = splitCSV(media)
	}

	if err := h.docs.UpdateDestination(c.Request.Context(), dest); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgDestinationEdited})
}

// DeleteDestination removes the destination. Author-only.
func (h *Handler) DeleteDestination(c *gin.Context) {
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
	if dest.UserID != id.Sub {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
		return
	}
	if err := h.docs.DeleteDestination(c.Request.Context(), destID); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgDestinationDeleted})
}
