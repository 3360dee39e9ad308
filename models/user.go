package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	// Пароль хранится открытым текстом – это демо, безопасность вне рамок.
	Password      string          `json:"password"`
	Ref           string          `json:"ref,omitempty"` // username пригласившего (upline)
	Balance       decimal.Decimal `json:"balance"`
	Bonus         decimal.Decimal `json:"bonus"` // накопленные реферальные бонусы
	IsAdmin       bool            `json:"is_admin"`
	KYCStatus     KYCStatus       `json:"kyc_status,omitempty"`
	KYCUpdatedAt  *time.Time      `json:"kyc_updated_at,omitempty"`
	Subscriptions []Subscription  `json:"subscriptions,omitempty"`
	Created       time.Time       `json:"created"`
}

// TreeNode – узел реферального дерева.
type TreeNode struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Children []*TreeNode `json:"children"`
}
