package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderCreated OrderStatus = "created"
	OrderPaid    OrderStatus = "paid"
)

// Order – эфемерный платёжный ордер заглушки шлюза. Хранится отдельным
// списком, вне основного документа реестра.
type Order struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Amount   decimal.Decimal `json:"amount"`
	Status   OrderStatus     `json:"status"`
	Created  time.Time       `json:"created"`
	PaidAt   *time.Time      `json:"paid_at,omitempty"`
}
