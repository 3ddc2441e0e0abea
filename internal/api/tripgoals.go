package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/storage"
)

// GetTripGoalsByUser returns the trip goal document of another user.
func (h *Handler) GetTripGoalsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTripGoalsNotFound})
		return
	}
	if _, err := h.repo.GetUserBySub(userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTripGoalsNotFound})
			return
		}
		internalError(c)
		return
	}
	tg, err := h.docs.TripGoalByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTripGoalsNotFound})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, tg)
}

// GetFollowedTripGoals lists the trip goals the session user follows.
// The follow edges live in PostgreSQL; the documents come from MongoDB.
func (h *Handler) GetFollowedTripGoals(c *gin.Context) {
	id, _ := identity(c)
	ids, err := h.repo.FollowedTripGoalIDs(id.Sub)
	if err != nil {
		internalError(c)
		return
	}
	goals, err := h.docs.TripGoalsByIDs(c.Request.Context(), ids)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// CreateTripGoal inserts a trip goal for the session user.
func (h *Handler) CreateTripGoal(c *gin.Context) {
	id, _ := identity(c)
	destinationIDs := c.PostForm("destination_ids")
	if destinationIDs == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDestinationIDsNeeded})
		return
	}
	destIDs, err := parseIDList(destinationIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDestinationIDs})
		return
	}
	refs, err := h.docs.ResolveDestinations(c.Request.Context(), destIDs)
	if err != nil {
		respondDestinationError(c, err)
		return
	}

	goalID, err := h.docs.NextTripGoalID(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	tg := &docstore.TripGoal{
		ID:           goalID,
		UserID:       id.Sub,
		UserName:     id.Username,
		Destinations: refs,
		Followers:    []docstore.Follower{},
	}
	if err := h.docs.InsertTripGoal(c.Request.Context(), tg); err != nil {
		logging.Error("trip goal insert failed", err, logging.Fields{"trip_goal_id": goalID})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgTripGoalAdded, "id": goalID})
}

// loadTripGoal fetches a trip goal by the :id path parameter, writing
// the 404 response itself when absent.
func (h *Handler) loadTripGoal(c *gin.Context) (*docstore.TripGoal, bool) {
	goalID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTripGoalNotFound})
		return nil, false
	}
	tg, err := h.docs.TripGoalByID(c.Request.Context(), goalID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTripGoalNotFound})
			return nil, false
		}
		internalError(c)
		return nil, false
	}
	return tg, true
}

// EditTripGoal replaces the destination list. Author-only.
func (h *Handler) EditTripGoal(c *gin.Context) {
	id, _ := identity(c)
	tg, ok := h.loadTripGoal(c)
	if !ok {
		return
	}
	if tg.UserID != id.Sub {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
		return
	}
	destinationIDs := c.PostForm("destination_ids")
	if destinationIDs == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDestinationIDsNeeded})
		return
	}
	destIDs, err := parseIDList(destinationIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDestinationIDs})
		return
	}
	refs, err := h.docs.ResolveDestinations(c.Request.Context(), destIDs)
	if err != nil {
		respondDestinationError(c, err)
		return
	}
	tg.Destinations = refs
	if err := h.docs.UpdateTripGoal(c.Request.Context(), tg); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgTripGoalEdited})
}

// DeleteTripGoal removes the trip goal. Author-only.
func (h *Handler) DeleteTripGoal(c *gin.Context) {
	id, _ := identity(c)
	tg, ok := h.loadTripGoal(c)
	if !ok {
		return
	}
	if tg.UserID != id.Sub {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrUnauthorized})
		return
	}
	if err := h.docs.DeleteTripGoal(c.Request.Context(), tg.ID); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgTripGoalDeleted})
}

// FollowTripGoal adds the session user to the followers array and the
// matching PostgreSQL follow row.
func (h *Handler) FollowTripGoal(c *gin.Context) {
	id, _ := identity(c)
	tg, ok := h.loadTripGoal(c)
	if !ok {
		return
	}
	for _, f := range tg.Followers {
		if f.UserID == id.Sub {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrAlreadyFollows})
			return
		}
	}
	tg.Followers = append(tg.Followers, docstore.Follower{UserID: id.Sub, UserName: id.Username})
	if err := h.docs.UpdateTripGoal(c.Request.Context(), tg); err != nil {
		internalError(c)
		return
	}
	if err := h.repo.FollowTripGoal(tg.ID, id.Sub); err != nil {
		logging.Error("follow row insert failed", err, logging.Fields{"trip_goal_id": tg.ID, constants.LogFieldSub: id.Sub})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgTripGoalFollowed})
}

// UnfollowTripGoal removes the session user from the followers array
// and deletes the PostgreSQL follow row.
func (h *Handler) UnfollowTripGoal(c *gin.Context) {
	id, _ := identity(c)
	tg, ok := h.loadTripGoal(c)
	if !ok {
		return
	}
	found := false
	filtered := tg.Followers[:0]
	for _, f := range tg.Followers {
		if f.UserID == id.Sub {
			found = true
			continue
		}
		filtered = append(filtered, f)
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDoesNotFollow})
		return
	}
	tg.Followers = filtered
	if err := h.docs.UpdateTripGoal(c.Request.Context(), tg); err != nil {
		internalError(c)
		return
	}
	if err := h.repo.UnfollowTripGoal(tg.ID, id.Sub); err != nil {
		logging.Error("follow row delete failed", err, logging.Fields{"trip_goal_id": tg.ID, constants.LogFieldSub: id.Sub})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgTripGoalUnfollowed})
}
