package handlers

import (
	"net/http"

	"mlm-ledger/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetPlansHandler возвращает каталог планов (API)
func (h *Handlers) GetPlansHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"plans":   h.svc.Plans(),
	})
}

// PurchasePlanHandler покупает план для текущего участника
func (h *Handlers) PurchasePlanHandler(c *gin.Context) {
	var req struct {
		PlanID string `json:"plan_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.PurchasePlan(c.GetString("username"), req.PlanID); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreditROIHandler начисляет доход по подпискам текущего участника
func (h *Handlers) CreditROIHandler(c *gin.Context) {
	total, err := h.svc.CreditROI(c.GetString("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"credited": total,
	})
}

type planRequest struct {
	ID         string          `json:"id"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	ROIPercent decimal.Decimal `json:"roi_percent"`
	PeriodDays int             `json:"period_days"`
}

// AdminCreatePlanHandler добавляет план в каталог
func (h *Handlers) AdminCreatePlanHandler(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.PlanDefinition{
		ID:         req.ID,
		Name:       req.Name,
		Price:      req.Price,
		ROIPercent: req.ROIPercent,
		PeriodDays: req.PeriodDays,
	}
	if err := h.svc.CreatePlan(plan); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "plan": plan})
}

// AdminUpdatePlanHandler обновляет план
func (h *Handlers) AdminUpdatePlanHandler(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.PlanDefinition{
		Name:       req.Name,
		Price:      req.Price,
		ROIPercent: req.ROIPercent,
		PeriodDays: req.PeriodDays,
	}
	if err := h.svc.UpdatePlan(c.Param("id"), plan); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminDeletePlanHandler удаляет план из каталога
func (h *Handlers) AdminDeletePlanHandler(c *gin.Context) {
	if err := h.svc.DeletePlan(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
