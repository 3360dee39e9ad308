package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanDefinition – тарифный план из каталога (настраивается админом).
type PlanDefinition struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ROIPercent decimal.Decimal `json:"roi_percent"`
	PeriodDays int             `json:"period_days"`
}

// Subscription – купленный участником экземпляр плана. Процент фиксируется
// на момент покупки; next_accrual_at записывается, но начисление по нему
// не сверяется – ручной триггер начисляет безусловно.
type Subscription struct {
	PlanID        string          `json:"plan_id"`
	PurchasedAt   time.Time       `json:"purchased_at"`
	NextAccrualAt time.Time       `json:"next_accrual_at"`
	ROIPercent    decimal.Decimal `json:"roi_percent"`
}
