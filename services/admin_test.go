package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mlm-ledger/models"
)

func TestSummary(t *testing.T) {
	svc := newTestService(t)

	got := svc.Summary()
	if got.MemberCount != 2 {
		t.Errorf("member count = %d, want 2", got.MemberCount)
	}
	// admin 120.00 + demo 45.50
	if !got.TotalBalance.Equal(mustDecimal(t, "165.5")) {
		t.Errorf("total balance = %s, want 165.5", got.TotalBalance)
	}
	if !got.TotalPendingWithdrawAmount.IsZero() {
		t.Errorf("pending withdraw sum = %s, want 0", got.TotalPendingWithdrawAmount)
	}

	// Только ожидающие заявки входят в сумму
	id, err := svc.RequestWithdraw("demo", mustDecimal(t, "15"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RequestWithdraw("admin", mustDecimal(t, "25")); err != nil {
		t.Fatal(err)
	}
	if err := svc.ApproveWithdraw(id, "admin"); err != nil {
		t.Fatal(err)
	}

	got = svc.Summary()
	if !got.TotalPendingWithdrawAmount.Equal(mustDecimal(t, "25")) {
		t.Errorf("pending withdraw sum = %s, want 25", got.TotalPendingWithdrawAmount)
	}
}

func TestSettle(t *testing.T) {
	svc := newTestService(t)

	amount, err := svc.Settle("demo")
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !amount.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("settled amount = %s, want 45.5", amount)
	}
	if got := balance(t, svc, "demo"); !got.IsZero() {
		t.Errorf("balance after settle = %s, want 0", got)
	}

	// Запись со знаком плюс на прежнюю сумму
	txs := svc.Transactions("demo")
	found := false
	for _, tx := range txs {
		if tx.Kind == models.TxAdminSettle {
			found = true
			if !tx.Amount.Equal(mustDecimal(t, "45.5")) {
				t.Errorf("settle entry amount = %s, want 45.5", tx.Amount)
			}
		}
	}
	if !found {
		t.Error("settle entry missing")
	}

	if _, err := svc.Settle("demo"); !errors.Is(err, ErrZeroBalance) {
		t.Errorf("settle zero balance err = %v, want ErrZeroBalance", err)
	}
	if _, err := svc.Settle("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("settle unknown user err = %v, want ErrUserNotFound", err)
	}
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(t)

	svc.Register("Smith, John", "jsmith", "pw", "admin")

	out := svc.ExportCSV()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "username,name,balance,bonus,referrer" {
		t.Errorf("csv header = %q", lines[0])
	}
	// admin, demo и новый участник
	if len(lines) != 4 {
		t.Errorf("csv rows = %d, want 4", len(lines))
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "Smith, John") {
			t.Errorf("comma survived in name column: %q", line)
		}
		if strings.Count(line, ",") != 4 {
			t.Errorf("malformed csv row: %q", line)
		}
	}
}

func TestExportMember(t *testing.T) {
	svc := newTestService(t)

	raw, err := svc.ExportMember("demo")
	if err != nil {
		t.Fatalf("ExportMember: %v", err)
	}

	var payload MemberExport
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if payload.User.Username != "demo" {
		t.Errorf("exported user = %s, want demo", payload.User.Username)
	}
	// Пароль демо-реестра в выгрузке собственных данных допустим,
	// но записи должны принадлежать только владельцу
	for _, tx := range payload.Tx {
		if tx.Username != "demo" {
			t.Errorf("foreign entry in export: %+v", tx)
		}
	}

	if _, err := svc.ExportMember("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("export unknown user err = %v, want ErrUserNotFound", err)
	}
}

func TestResetReseedsEverything(t *testing.T) {
	svc := newTestService(t)

	svc.Register("Temp", "temp", "pw", "admin")
	svc.CreateOrder("demo", mustDecimal(t, "10"))
	svc.Login("demo", "demo123")

	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if _, err := svc.Get("temp"); !errors.Is(err, ErrUserNotFound) {
		t.Error("registered user survived reset")
	}
	if got := balance(t, svc, "demo"); !got.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("demo balance after reset = %s, want seed 45.5", got)
	}
	if len(svc.Orders("")) != 0 {
		t.Error("orders survived reset")
	}
	if svc.IsLogged() {
		t.Error("session survived reset")
	}
}
