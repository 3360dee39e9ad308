package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitKYCHandler подаёт документ текущего участника на проверку
func (h *Handlers) SubmitKYCHandler(c *gin.Context) {
	var req struct {
		Document string `json:"document" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.SubmitKYC(c.GetString("username"), req.Document); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminApproveKYCHandler одобряет проверку документа
func (h *Handlers) AdminApproveKYCHandler(c *gin.Context) {
	if err := h.svc.ApproveKYC(c.Param("username"), c.GetString("username")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminRejectKYCHandler отклоняет проверку с необязательной причиной
func (h *Handlers) AdminRejectKYCHandler(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	// Тело может быть пустым
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.RejectKYC(c.Param("username"), c.GetString("username"), req.Note); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminListVerificationsHandler возвращает все заявки на проверку
func (h *Handlers) AdminListVerificationsHandler(c *gin.Context) {
	verifications := h.svc.Verifications()
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"verifications": verifications,
	})
}
