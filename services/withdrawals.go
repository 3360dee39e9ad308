package services

import (
	"time"

	"mlm-ledger/models"
	"mlm-ledger/monitoring"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestWithdraw создаёт ожидающую заявку на вывод. Сумма должна быть
// положительной и не превышать баланс. При выключенном резервировании
// (по умолчанию) баланс не трогается – средства остаются доступными до
// решения администратора.
func (s *LedgerService) RequestWithdraw(username string, amount decimal.Decimal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.doc.FindUser(username)
	if user == nil {
		return "", ErrUserNotFound
	}
	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}
	if amount.GreaterThan(user.Balance) {
		return "", ErrInsufficientBalance
	}

	req := models.WithdrawRequest{
		ID:          uuid.NewString(),
		Username:    username,
		Amount:      amount,
		Status:      models.WithdrawPending,
		RequestedAt: time.Now(),
	}
	s.doc.Withdrawals = append(s.doc.Withdrawals, req)
	s.recordTx(username, models.TxWithdrawRequest, amount.Neg(), "withdraw requested")

	if s.cfg.WithdrawReserveFunds {
		user.Balance = user.Balance.Sub(amount)
	}

	if err := s.persist(); err != nil {
		return "", err
	}
	return req.ID, nil
}

// ApproveWithdraw завершает заявку списанием. Переход допустим ровно один
// раз из pending.
func (s *LedgerService) ApproveWithdraw(id, adminUsername string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := s.findWithdraw(id)
	if req == nil {
		return ErrNotFound
	}
	if req.Status != models.WithdrawPending {
		return ErrNotPending
	}

	now := time.Now()
	req.Status = models.WithdrawApproved
	req.HandledBy = adminUsername
	req.HandledAt = &now
	s.recordTx(req.Username, models.TxWithdraw, req.Amount.Neg(), "withdraw approved")

	if err := s.persist(); err != nil {
		return err
	}
	monitoring.WithdrawalsResolvedTotal.WithLabelValues(string(models.WithdrawApproved)).Inc()
	return nil
}

// RejectWithdraw отклоняет заявку. При включённом резервировании сумма
// возвращается на баланс.
func (s *LedgerService) RejectWithdraw(id, adminUsername string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := s.findWithdraw(id)
	if req == nil {
		return ErrNotFound
	}
	if req.Status != models.WithdrawPending {
		return ErrNotPending
	}

	now := time.Now()
	req.Status = models.WithdrawRejected
	req.HandledBy = adminUsername
	req.HandledAt = &now

	if s.cfg.WithdrawReserveFunds {
		if user := s.doc.FindUser(req.Username); user != nil {
			user.Balance = user.Balance.Add(req.Amount)
		}
	}
	s.recordTx(req.Username, models.TxWithdrawReject, req.Amount, "withdraw rejected")

	if err := s.persist(); err != nil {
		return err
	}
	monitoring.WithdrawalsResolvedTotal.WithLabelValues(string(models.WithdrawRejected)).Inc()
	return nil
}

func (s *LedgerService) findWithdraw(id string) *models.WithdrawRequest {
	for i := range s.doc.Withdrawals {
		if s.doc.Withdrawals[i].ID == id {
			return &s.doc.Withdrawals[i]
		}
	}
	return nil
}

// Withdrawals возвращает все заявки на вывод.
func (s *LedgerService) Withdrawals() []models.WithdrawRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.WithdrawRequest(nil), s.doc.Withdrawals...)
}
