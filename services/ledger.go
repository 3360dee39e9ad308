package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"mlm-ledger/config"
	"mlm-ledger/models"
	"mlm-ledger/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService владеет единым документом реестра и списком платёжных
// ордеров. Каждая операция изменяет документ в памяти и затем сбрасывает
// его в хранилище целиком – частичных записей нет.
type LedgerService struct {
	mu     sync.RWMutex
	store  storage.Store
	cfg    *config.Config
	doc    *models.Ledger
	orders []models.Order
}

func New(store storage.Store, cfg *config.Config) (*LedgerService, error) {
	s := &LedgerService{
		store: store,
		cfg:   cfg,
	}

	if err := s.loadOrSeed(); err != nil {
		return nil, err
	}
	if err := s.loadOrders(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadOrSeed читает документ реестра; отсутствующий или нечитаемый документ
// молча заменяется стартовым.
func (s *LedgerService) loadOrSeed() error {
	raw, err := s.store.Get(models.LedgerKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err == nil {
		var doc models.Ledger
		if jsonErr := json.Unmarshal(raw, &doc); jsonErr == nil {
			s.doc = &doc
			return nil
		}
		log.Println("⚠️ Документ реестра не читается, создаю заново")
	}

	s.doc = models.DefaultLedger(time.Now())
	if err := s.persist(); err != nil {
		return err
	}
	log.Println("✅ Создан стартовый документ реестра")
	return nil
}

func (s *LedgerService) loadOrders() error {
	raw, err := s.store.Get(models.OrdersKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if jsonErr := json.Unmarshal(raw, &s.orders); jsonErr != nil {
		log.Println("⚠️ Список ордеров не читается, начинаю с пустого")
		s.orders = nil
	}
	return nil
}

// persist сбрасывает весь документ в хранилище. Вызывается с взятой
// блокировкой записи.
func (s *LedgerService) persist() error {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailure, err)
	}
	if err := s.store.Set(models.LedgerKey, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailure, err)
	}
	return nil
}

func (s *LedgerService) persistOrders() error {
	raw, err := json.Marshal(s.orders)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailure, err)
	}
	if err := s.store.Set(models.OrdersKey, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailure, err)
	}
	return nil
}

// recordTx добавляет запись реестра. Новые записи всегда в начале списка.
func (s *LedgerService) recordTx(username string, kind models.TxKind, amount decimal.Decimal, info string) {
	tx := models.Transaction{
		ID:       uuid.NewString(),
		Username: username,
		Kind:     kind,
		Amount:   amount,
		Info:     info,
		Time:     time.Now(),
	}
	s.doc.Transactions = append([]models.Transaction{tx}, s.doc.Transactions...)
}

// Settings возвращает копию текущих настроек.
func (s *LedgerService) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := s.doc.Settings
	settings.Levels = append([]decimal.Decimal(nil), s.doc.Settings.Levels...)
	settings.Plans = append([]models.PlanDefinition(nil), s.doc.Settings.Plans...)
	return settings
}
