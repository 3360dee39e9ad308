package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawStatus string

const (
	WithdrawPending  WithdrawStatus = "pending"
	WithdrawApproved WithdrawStatus = "approved"
	WithdrawRejected WithdrawStatus = "rejected"
)

// WithdrawRequest – заявка на вывод. Из pending ровно один переход:
// approved либо rejected.
type WithdrawRequest struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Amount      decimal.Decimal `json:"amount"`
	Status      WithdrawStatus  `json:"status"`
	RequestedAt time.Time       `json:"requested_at"`
	HandledBy   string          `json:"handled_by,omitempty"`
	HandledAt   *time.Time      `json:"handled_at,omitempty"`
}
