package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ключи документов в хранилище (наследие localStorage-демо).
const (
	LedgerKey  = "mlm_demo_db_v2"
	SessionKey = "mlm_demo_session"
	OrdersKey  = "mlm_demo_orders"
)

// Settings – таблица реферальных процентов (индекс = глубина аплайна),
// взнос за вступление и каталог планов.
type Settings struct {
	Levels  []decimal.Decimal `json:"levels"`
	JoinFee decimal.Decimal   `json:"join_fee"`
	Plans   []PlanDefinition  `json:"plans"`
}

// Ledger – единый изменяемый документ реестра. Все коллекции принадлежат
// ему; участники ссылаются друг на друга только по username.
type Ledger struct {
	Users         []User                `json:"users"`
	Transactions  []Transaction         `json:"transactions"` // новые записи в начале
	Withdrawals   []WithdrawRequest     `json:"withdrawals"`
	Verifications []VerificationRequest `json:"verifications"`
	Settings      Settings              `json:"settings"`
}

// FindUser возвращает указатель на участника внутри документа или nil.
func (l *Ledger) FindUser(username string) *User {
	for i := range l.Users {
		if l.Users[i].Username == username {
			return &l.Users[i]
		}
	}
	return nil
}

// FindPlan ищет план в каталоге по id.
func (l *Ledger) FindPlan(id string) *PlanDefinition {
	for i := range l.Settings.Plans {
		if l.Settings.Plans[i].ID == id {
			return &l.Settings.Plans[i]
		}
	}
	return nil
}

// DefaultLedger – стартовый документ: админ, демо-участник и несколько
// затравочных записей, как в исходном демо.
func DefaultLedger(now time.Time) *Ledger {
	return &Ledger{
		Users: []User{
			{
				Username: "admin",
				Name:     "Administrator",
				Password: "admin123",
				Balance:  decimal.NewFromFloat(120.00),
				Bonus:    decimal.NewFromFloat(20.00),
				IsAdmin:  true,
				Created:  now.Add(-24 * time.Hour),
			},
			{
				Username: "demo",
				Name:     "Demo User",
				Password: "demo123",
				Ref:      "admin",
				Balance:  decimal.NewFromFloat(45.50),
				Created:  now.Add(-10 * time.Minute),
			},
		},
		Transactions: []Transaction{
			{ID: "seed-3", Username: "admin", Kind: TxBonus, Amount: decimal.NewFromFloat(20.00), Info: "upline bonus", Time: now.Add(-5 * time.Minute)},
			{ID: "seed-2", Username: "demo", Kind: TxJoin, Amount: decimal.Zero, Info: "seed", Time: now.Add(-10 * time.Minute)},
			{ID: "seed-1", Username: "admin", Kind: TxJoin, Amount: decimal.Zero, Info: "seed", Time: now.Add(-15 * time.Minute)},
		},
		Settings: Settings{
			Levels: []decimal.Decimal{
				decimal.NewFromInt(40),
				decimal.NewFromInt(25),
				decimal.NewFromInt(15),
				decimal.NewFromInt(10),
				decimal.NewFromInt(5),
			},
			JoinFee: decimal.NewFromInt(10),
			Plans: []PlanDefinition{
				{ID: "starter", Name: "Starter", Price: decimal.NewFromInt(10), ROIPercent: decimal.NewFromInt(5), PeriodDays: 7},
				{ID: "growth", Name: "Growth", Price: decimal.NewFromInt(50), ROIPercent: decimal.NewFromInt(8), PeriodDays: 14},
				{ID: "pro", Name: "Pro", Price: decimal.NewFromInt(100), ROIPercent: decimal.NewFromInt(12), PeriodDays: 30},
			},
		},
	}
}
