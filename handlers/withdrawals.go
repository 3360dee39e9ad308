package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RequestWithdrawHandler создаёт заявку на вывод для текущего участника
func (h *Handlers) RequestWithdrawHandler(c *gin.Context) {
	var req struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.RequestWithdraw(c.GetString("username"), req.Amount)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"request_id": id,
	})
}

// AdminApproveWithdrawHandler одобряет заявку на вывод
func (h *Handlers) AdminApproveWithdrawHandler(c *gin.Context) {
	if err := h.svc.ApproveWithdraw(c.Param("id"), c.GetString("username")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminRejectWithdrawHandler отклоняет заявку на вывод
func (h *Handlers) AdminRejectWithdrawHandler(c *gin.Context) {
	if err := h.svc.RejectWithdraw(c.Param("id"), c.GetString("username")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminListWithdrawalsHandler возвращает все заявки на вывод
func (h *Handlers) AdminListWithdrawalsHandler(c *gin.Context) {
	withdrawals := h.svc.Withdrawals()
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"withdrawals": withdrawals,
	})
}
