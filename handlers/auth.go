package handlers

import (
	"net/http"

	"mlm-ledger/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler обрабатывает вход участника
func (h *Handlers) LoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(h.cfg, session.Username, session.Name, session.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": gin.H{
			"username": session.Username,
			"name":     session.Name,
			"is_admin": session.IsAdmin,
		},
	})
}

// LogoutHandler завершает сессию
func (h *Handlers) LogoutHandler(c *gin.Context) {
	if err := h.svc.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SessionHandler возвращает активную сессию или null
func (h *Handlers) SessionHandler(c *gin.Context) {
	session, err := h.svc.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": session,
	})
}

// RefreshHandler обновляет access token
func (h *Handlers) RefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAccessToken, err := utils.RefreshToken(h.cfg, req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"access_token": newAccessToken,
	})
}
