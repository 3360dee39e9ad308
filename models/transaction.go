package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxKind – закрытый перечень видов операций реестра.
type TxKind string

const (
	TxJoin            TxKind = "join"
	TxBonus           TxKind = "bonus"
	TxDeposit         TxKind = "deposit"
	TxWithdrawRequest TxKind = "withdraw_request"
	TxWithdraw        TxKind = "withdraw"
	TxWithdrawReject  TxKind = "withdraw_reject"
	TxPlan            TxKind = "plan"
	TxROI             TxKind = "roi"
	TxAdminSettle     TxKind = "admin_settle"
)

// Transaction – неизменяемая запись одного события, влияющего на баланс
// или статус. Записи никогда не редактируются и не удаляются.
type Transaction struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Kind     TxKind          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Info     string          `json:"info"`
	Time     time.Time       `json:"time"`
}
