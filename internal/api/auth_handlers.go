package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/wayfarerhq/wayfarer/internal/cache"
	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/storage"
)

// Signup registers a username with a bcrypt-hashed password.
func (h *Handler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUserPassRequired})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c)
		return
	}
	sub, err := h.repo.CreateUser(username, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUsernameTaken})
			return
		}
		logging.Error("signup failed", err, logging.Fields{"username": username})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgUserCreated, constants.JSONKeySub: sub})
}

// Login checks credentials and mints a Redis-backed session.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUserPassRequired})
		return
	}

	user, err := h.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidCredentials})
			return
		}
		logging.Error("login lookup failed", err, logging.Fields{"username": username})
		internalError(c)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidCredentials})
		return
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), cache.Identity{Sub: user.Sub, Username: user.Username})
	if err != nil {
		logging.Error("session create failed", err, logging.Fields{constants.LogFieldSub: user.Sub})
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage:   constants.MsgLoginOK,
		constants.JSONKeyToken:     h.staticToken,
		constants.JSONKeySessionID: sessionID,
	})
}

// Logout drops the session named by the Session-ID header.
func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetHeader(constants.HeaderSessionID)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSessionIDRequired})
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgLogoutOK})
}

// CheckSession validates the Session-ID header and slides its TTL.
func (h *Handler) CheckSession(c *gin.Context) {
	sessionID := c.GetHeader(constants.HeaderSessionID)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSessionIDRequired})
		return
	}
	ok, err := h.sessions.Renew(c.Request.Context(), sessionID)
	if err != nil {
		internalError(c)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrSessionInvalid})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgSessionValid})
}
