package services

import (
	"errors"
	"testing"

	"mlm-ledger/config"
	"mlm-ledger/models"
	"mlm-ledger/storage"
)

func newReserveService(t *testing.T) *LedgerService {
	t.Helper()
	svc, err := New(storage.NewMemoryStore(), &config.Config{WithdrawReserveFunds: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func TestRequestWithdrawValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.RequestWithdraw("ghost", mustDecimal(t, "1")); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.RequestWithdraw("demo", mustDecimal(t, "0")); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.RequestWithdraw("demo", mustDecimal(t, "-5")); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.RequestWithdraw("demo", mustDecimal(t, "100")); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("over-balance err = %v, want ErrInsufficientBalance", err)
	}
}

func TestWithdrawLifecycleDefaultPolicy(t *testing.T) {
	svc := newTestService(t)

	// По умолчанию баланс не резервируется: demo остаётся с 45.50 до решения
	id, err := svc.RequestWithdraw("demo", mustDecimal(t, "20"))
	if err != nil {
		t.Fatalf("RequestWithdraw: %v", err)
	}
	if got := balance(t, svc, "demo"); !got.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("balance after request = %s, want 45.5", got)
	}

	if err := svc.ApproveWithdraw(id, "admin"); err != nil {
		t.Fatalf("ApproveWithdraw: %v", err)
	}
	if got := balance(t, svc, "demo"); !got.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("balance after approve = %s, want 45.5 (entries only)", got)
	}

	reqs := svc.Withdrawals()
	if len(reqs) != 1 {
		t.Fatalf("withdrawals = %d, want 1", len(reqs))
	}
	if reqs[0].Status != models.WithdrawApproved {
		t.Errorf("status = %s, want approved", reqs[0].Status)
	}
	if reqs[0].HandledBy != "admin" || reqs[0].HandledAt == nil {
		t.Error("approved request missing handler stamp")
	}

	// Записи реестра: запрос и списание, обе отрицательные
	if n := countTx(svc, "demo", models.TxWithdrawRequest); n != 1 {
		t.Errorf("withdraw_request entries = %d, want 1", n)
	}
	if n := countTx(svc, "demo", models.TxWithdraw); n != 1 {
		t.Errorf("withdraw entries = %d, want 1", n)
	}
}

func TestWithdrawRejectDefaultPolicy(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.RequestWithdraw("demo", mustDecimal(t, "20"))
	if err != nil {
		t.Fatalf("RequestWithdraw: %v", err)
	}
	if err := svc.RejectWithdraw(id, "admin"); err != nil {
		t.Fatalf("RejectWithdraw: %v", err)
	}

	// Никакого чистого изменения баланса
	if got := balance(t, svc, "demo"); !got.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("balance after reject = %s, want 45.5", got)
	}
	if n := countTx(svc, "demo", models.TxWithdrawReject); n != 1 {
		t.Errorf("withdraw_reject entries = %d, want 1", n)
	}
}

func TestWithdrawReservePolicy(t *testing.T) {
	svc := newReserveService(t)

	id, err := svc.RequestWithdraw("demo", mustDecimal(t, "20"))
	if err != nil {
		t.Fatalf("RequestWithdraw: %v", err)
	}
	// Резервирование: сумма списывается сразу
	if got := balance(t, svc, "demo"); !got.Equal(mustDecimal(t, "25.5")) {
		t.Errorf("balance after reserved request = %s, want 25.5", got)
	}

	if err := svc.RejectWithdraw(id, "admin"); err != nil {
		t.Fatalf("RejectWithdraw: %v", err)
	}
	// Отклонение возвращает резерв
	if got := balance(t, svc, "demo"); !got.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("balance after reserved reject = %s, want 45.5", got)
	}
}

func TestWithdrawResolvedExactlyOnce(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.RequestWithdraw("demo", mustDecimal(t, "10"))
	if err != nil {
		t.Fatalf("RequestWithdraw: %v", err)
	}
	if err := svc.ApproveWithdraw(id, "admin"); err != nil {
		t.Fatalf("ApproveWithdraw: %v", err)
	}

	if err := svc.ApproveWithdraw(id, "admin"); !errors.Is(err, ErrNotPending) {
		t.Errorf("second approve err = %v, want ErrNotPending", err)
	}
	if err := svc.RejectWithdraw(id, "admin"); !errors.Is(err, ErrNotPending) {
		t.Errorf("reject after approve err = %v, want ErrNotPending", err)
	}
}

func TestWithdrawUnknownID(t *testing.T) {
	svc := newTestService(t)

	if err := svc.ApproveWithdraw("nope", "admin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("approve unknown id err = %v, want ErrNotFound", err)
	}
	if err := svc.RejectWithdraw("nope", "admin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("reject unknown id err = %v, want ErrNotFound", err)
	}
}
