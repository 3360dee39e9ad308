package services

import (
	"time"

	"mlm-ledger/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrder фабрикует ожидающий платёжный ордер. Ордера живут отдельным
// списком под собственным ключом хранилища.
func (s *LedgerService) CreateOrder(username string, amount decimal.Decimal) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.FindUser(username) == nil {
		return models.Order{}, ErrUserNotFound
	}
	if !amount.IsPositive() {
		return models.Order{}, ErrInvalidAmount
	}

	order := models.Order{
		ID:       uuid.NewString(),
		Username: username,
		Amount:   amount,
		Status:   models.OrderCreated,
		Created:  time.Now(),
	}
	s.orders = append(s.orders, order)

	if err := s.persistOrders(); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// SimulateSuccess помечает ордер оплаченным и зачисляет сумму на баланс.
// Повторный вызов по оплаченному ордеру – отказ, двойного зачисления нет.
func (s *LedgerService) SimulateSuccess(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order *models.Order
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			order = &s.orders[i]
			break
		}
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status != models.OrderCreated {
		return ErrAlreadyPaid
	}

	user := s.doc.FindUser(order.Username)
	if user == nil {
		return ErrUserNotFound
	}

	now := time.Now()
	order.Status = models.OrderPaid
	order.PaidAt = &now
	user.Balance = user.Balance.Add(order.Amount)
	s.recordTx(order.Username, models.TxDeposit, order.Amount, "deposit via gateway")

	if err := s.persist(); err != nil {
		return err
	}
	return s.persistOrders()
}

// Orders возвращает ордера участника, либо все при пустом username.
func (s *LedgerService) Orders(username string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if username == "" || o.Username == username {
			out = append(out, o)
		}
	}
	return out
}
