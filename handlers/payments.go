package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateOrderHandler фабрикует платёжный ордер для текущего участника
func (h *Handlers) CreateOrderHandler(c *gin.Context) {
	var req struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.CreateOrder(c.GetString("username"), req.Amount)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

// SimulateSuccessHandler помечает ордер оплаченным и зачисляет сумму
func (h *Handlers) SimulateSuccessHandler(c *gin.Context) {
	if err := h.svc.SimulateSuccess(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListOrdersHandler возвращает ордера текущего участника
func (h *Handlers) ListOrdersHandler(c *gin.Context) {
	orders := h.svc.Orders(c.GetString("username"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}
