package services

import (
	"fmt"
	"time"

	"mlm-ledger/models"
	"mlm-ledger/monitoring"

	"github.com/shopspring/decimal"
)

// Plans возвращает каталог планов.
func (s *LedgerService) Plans() []models.PlanDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.PlanDefinition(nil), s.doc.Settings.Plans...)
}

// PurchasePlan списывает цену плана с баланса и фиксирует подписку
// с процентом доходности на момент покупки.
func (s *LedgerService) PurchasePlan(username, planID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.doc.FindUser(username)
	plan := s.doc.FindPlan(planID)
	if user == nil || plan == nil {
		return ErrInvalidReference
	}
	if user.Balance.LessThan(plan.Price) {
		return ErrInsufficientBalance
	}

	now := time.Now()
	user.Balance = user.Balance.Sub(plan.Price)
	user.Subscriptions = append(user.Subscriptions, models.Subscription{
		PlanID:        plan.ID,
		PurchasedAt:   now,
		NextAccrualAt: now.AddDate(0, 0, plan.PeriodDays),
		ROIPercent:    plan.ROIPercent,
	})
	s.recordTx(username, models.TxPlan, plan.Price.Neg(),
		fmt.Sprintf("plan %s purchase", plan.ID))

	return s.persist()
}

// CreditROI начисляет доход по каждой подписке участника. Триггер ручной и
// безусловный: повторный вызов начисляет повторно, срок next_accrual_at не
// проверяется. Подписки на удалённые планы молча пропускаются.
func (s *LedgerService) CreditROI(username string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.doc.FindUser(username)
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}

	hundred := decimal.NewFromInt(100)
	total := decimal.Zero
	for _, sub := range user.Subscriptions {
		plan := s.doc.FindPlan(sub.PlanID)
		if plan == nil {
			continue
		}
		amt := plan.Price.Mul(sub.ROIPercent).Div(hundred).Round(8)
		user.Balance = user.Balance.Add(amt).Round(8)
		total = total.Add(amt)
		s.recordTx(username, models.TxROI, amt,
			fmt.Sprintf("roi for plan %s", sub.PlanID))
	}

	if err := s.persist(); err != nil {
		return decimal.Zero, err
	}
	monitoring.ROICreditsTotal.Inc()
	return total, nil
}

// CreatePlan добавляет план в каталог (админ).
func (s *LedgerService) CreatePlan(plan models.PlanDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if plan.ID == "" || plan.Name == "" {
		return ErrMissingFields
	}
	if !plan.Price.IsPositive() {
		return ErrInvalidAmount
	}
	if s.doc.FindPlan(plan.ID) != nil {
		return ErrPlanExists
	}

	s.doc.Settings.Plans = append(s.doc.Settings.Plans, plan)
	return s.persist()
}

// UpdatePlan заменяет параметры существующего плана.
func (s *LedgerService) UpdatePlan(id string, plan models.PlanDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.doc.FindPlan(id)
	if existing == nil {
		return ErrNotFound
	}
	if plan.Name == "" {
		return ErrMissingFields
	}
	if !plan.Price.IsPositive() {
		return ErrInvalidAmount
	}

	existing.Name = plan.Name
	existing.Price = plan.Price
	existing.ROIPercent = plan.ROIPercent
	existing.PeriodDays = plan.PeriodDays
	return s.persist()
}

// DeletePlan убирает план из каталога. Живые подписки на него остаются:
// начисление по ним просто перестаёт находить определение.
func (s *LedgerService) DeletePlan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Settings.Plans {
		if s.doc.Settings.Plans[i].ID == id {
			s.doc.Settings.Plans = append(s.doc.Settings.Plans[:i], s.doc.Settings.Plans[i+1:]...)
			return s.persist()
		}
	}
	return ErrNotFound
}
