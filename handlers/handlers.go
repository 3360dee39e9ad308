package handlers

import (
	"errors"
	"net/http"

	"mlm-ledger/config"
	"mlm-ledger/services"

	"github.com/gin-gonic/gin"
)

// Handlers – тонкий HTTP-слой над сервисом реестра.
type Handlers struct {
	svc *services.LedgerService
	cfg *config.Config
}

func New(svc *services.LedgerService, cfg *config.Config) *Handlers {
	return &Handlers{svc: svc, cfg: cfg}
}

// errStatus переводит вид отказа сервиса в HTTP-статус.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrPlanExists),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrNotPending):
		return http.StatusConflict
	case errors.Is(err, services.ErrPersistFailure):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(errStatus(err), gin.H{"error": err.Error()})
}

// HealthHandler – проверка живости сервиса.
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
