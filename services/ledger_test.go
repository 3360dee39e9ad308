package services

import (
	"errors"
	"testing"

	"mlm-ledger/config"
	"mlm-ledger/models"
	"mlm-ledger/storage"

	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) *LedgerService {
	t.Helper()
	svc, err := New(storage.NewMemoryStore(), &config.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func balance(t *testing.T, svc *LedgerService, username string) decimal.Decimal {
	t.Helper()
	user, err := svc.Get(username)
	if err != nil {
		t.Fatalf("Get(%s): %v", username, err)
	}
	return user.Balance
}

func TestSeedDocument(t *testing.T) {
	svc := newTestService(t)

	admin, err := svc.Get("admin")
	if err != nil {
		t.Fatalf("seed admin missing: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("seed admin is not an administrator")
	}

	demo, err := svc.Get("demo")
	if err != nil {
		t.Fatalf("seed demo missing: %v", err)
	}
	if !demo.Balance.Equal(mustDecimal(t, "45.5")) {
		t.Errorf("seed demo balance = %s, want 45.5", demo.Balance)
	}
	if demo.Ref != "admin" {
		t.Errorf("seed demo ref = %q, want admin", demo.Ref)
	}

	settings := svc.Settings()
	if len(settings.Levels) != 5 {
		t.Errorf("levels table length = %d, want 5", len(settings.Levels))
	}
	if !settings.JoinFee.Equal(decimal.NewFromInt(10)) {
		t.Errorf("join fee = %s, want 10", settings.JoinFee)
	}
	if len(settings.Plans) != 3 {
		t.Errorf("plan catalog size = %d, want 3", len(settings.Plans))
	}
}

func TestLoadExistingDocument(t *testing.T) {
	store := storage.NewMemoryStore()
	cfg := &config.Config{}

	first, err := New(store, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := first.Register("Alice", "alice", "secret", "admin"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	second, err := New(store, cfg)
	if err != nil {
		t.Fatalf("New over existing store: %v", err)
	}
	if _, err := second.Get("alice"); err != nil {
		t.Errorf("registered user lost after reload: %v", err)
	}
}

func TestCorruptDocumentReplacedBySeed(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Set(models.LedgerKey, []byte("{definitely not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	svc, err := New(store, &config.Config{})
	if err != nil {
		t.Fatalf("New over corrupt store: %v", err)
	}
	if _, err := svc.Get("admin"); err != nil {
		t.Errorf("seed admin missing after corrupt load: %v", err)
	}
}

// brokenStore начинает отказывать в записи после вызова fail().
type brokenStore struct {
	*storage.MemoryStore
	broken bool
}

func (s *brokenStore) Set(key string, value []byte) error {
	if s.broken {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(key, value)
}

func TestPersistFailureSurfaced(t *testing.T) {
	store := &brokenStore{MemoryStore: storage.NewMemoryStore()}
	svc, err := New(store, &config.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	store.broken = true
	_, err = svc.Register("Alice", "alice", "secret", "")
	if !errors.Is(err, ErrPersistFailure) {
		t.Errorf("Register with failing store: err = %v, want ErrPersistFailure", err)
	}
}
