package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mlm-ledger/models"

	"github.com/shopspring/decimal"
)

// Summary – агрегаты по реестру для админки.
type Summary struct {
	MemberCount                int             `json:"member_count"`
	TotalBalance               decimal.Decimal `json:"total_balance"`
	TotalPendingWithdrawAmount decimal.Decimal `json:"total_pending_withdraw_amount"`
}

func (s *LedgerService) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Summary{
		MemberCount:                len(s.doc.Users),
		TotalBalance:               decimal.Zero,
		TotalPendingWithdrawAmount: decimal.Zero,
	}
	for _, u := range s.doc.Users {
		out.TotalBalance = out.TotalBalance.Add(u.Balance)
	}
	for _, w := range s.doc.Withdrawals {
		if w.Status == models.WithdrawPending {
			out.TotalPendingWithdrawAmount = out.TotalPendingWithdrawAmount.Add(w.Amount)
		}
	}
	return out
}

// Settle обнуляет положительный баланс участника с записью admin_settle
// на прежнюю сумму.
func (s *LedgerService) Settle(username string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.doc.FindUser(username)
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}
	if !user.Balance.IsPositive() {
		return decimal.Zero, ErrZeroBalance
	}

	amt := user.Balance
	user.Balance = decimal.Zero
	s.recordTx(username, models.TxAdminSettle, amt, "settled by admin")

	if err := s.persist(); err != nil {
		return decimal.Zero, err
	}
	return amt, nil
}

// ExportCSV строит плоскую выгрузку участников. Запятые в именах убираются,
// чтобы не ломать строки.
func (s *LedgerService) ExportCSV() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("username,name,balance,bonus,referrer\n")
	for _, u := range s.doc.Users {
		name := strings.ReplaceAll(u.Name, ",", "")
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s\n",
			u.Username, name, u.Balance.String(), u.Bonus.String(), u.Ref))
	}
	return b.String()
}

// MemberExport – профиль участника и его последние записи реестра.
type MemberExport struct {
	User models.User          `json:"user"`
	Tx   []models.Transaction `json:"tx"`
}

// ExportMember собирает JSON-выгрузку одного участника (до 100 записей).
func (s *LedgerService) ExportMember(username string) ([]byte, error) {
	user, err := s.Get(username)
	if err != nil {
		return nil, err
	}
	payload := MemberExport{
		User: *user,
		Tx:   s.Transactions(username),
	}
	return json.MarshalIndent(payload, "", "  ")
}

// Reset сбрасывает демо: удаляет все документы и заново сеет реестр.
func (s *LedgerService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(models.SessionKey); err != nil {
		return err
	}
	if err := s.store.Remove(models.OrdersKey); err != nil {
		return err
	}

	s.doc = models.DefaultLedger(time.Now())
	s.orders = nil
	return s.persist()
}
