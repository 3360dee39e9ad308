package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHandler обрабатывает регистрацию участника
func (h *Handlers) RegisterHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Ref      string `json:"ref"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, err := h.svc.Register(req.Name, req.Username, req.Password, req.Ref)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": username,
	})
}

// GetMemberHandler возвращает участника по username
func (h *Handlers) GetMemberHandler(c *gin.Context) {
	user, err := h.svc.Get(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// ProfileHandler возвращает профиль текущего участника
func (h *Handlers) ProfileHandler(c *gin.Context) {
	user, err := h.svc.Get(c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// DirectsHandler возвращает прямых рефералов текущего участника
func (h *Handlers) DirectsHandler(c *gin.Context) {
	directs := h.svc.Directs(c.GetString("username"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"directs": directs,
		"count":   len(directs),
	})
}

// TeamCountHandler возвращает размер даунлайна текущего участника
func (h *Handlers) TeamCountHandler(c *gin.Context) {
	count, err := h.svc.TeamCount(c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}

// TreeHandler возвращает реферальное дерево текущего участника
func (h *Handlers) TreeHandler(c *gin.Context) {
	tree, err := h.svc.BuildTree(c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tree":    tree,
	})
}

// TransactionsHandler возвращает последние записи текущего участника
func (h *Handlers) TransactionsHandler(c *gin.Context) {
	txs := h.svc.Transactions(c.GetString("username"))
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"transactions": txs,
	})
}

// SimulateJoinHandler регистрирует демо-участника под текущим
func (h *Handlers) SimulateJoinHandler(c *gin.Context) {
	username, err := h.svc.SimulateJoin(c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": username,
	})
}

// ExportMemberHandler отдаёт JSON-выгрузку текущего участника
func (h *Handlers) ExportMemberHandler(c *gin.Context) {
	payload, err := h.svc.ExportMember(c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+c.GetString("username")+".json")
	c.Data(http.StatusOK, "application/json", payload)
}
