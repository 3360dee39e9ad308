package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminListMembersHandler возвращает всех участников, новые первыми
func (h *Handlers) AdminListMembersHandler(c *gin.Context) {
	users := h.svc.List()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"count":   len(users),
	})
}

// AdminSummaryHandler возвращает агрегаты по реестру
func (h *Handlers) AdminSummaryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": h.svc.Summary(),
	})
}

// AdminSettleHandler обнуляет баланс участника
func (h *Handlers) AdminSettleHandler(c *gin.Context) {
	amount, err := h.svc.Settle(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"settled": amount,
	})
}

// AdminExportCSVHandler отдаёт CSV-выгрузку участников
func (h *Handlers) AdminExportCSVHandler(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=mlm_users.csv")
	c.Data(http.StatusOK, "text/csv", []byte(h.svc.ExportCSV()))
}

// AdminResetHandler сбрасывает демо к стартовому документу
func (h *Handlers) AdminResetHandler(c *gin.Context) {
	if err := h.svc.Reset(); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
