package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"mlm-ledger/models"
	"mlm-ledger/storage"
)

// Login сверяет пару логин/пароль с реестром. Сравнение точное, без
// хеширования – безопасность аутентификации вне рамок демо.
func (s *LedgerService) Login(username, password string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.doc.FindUser(username)
	if user == nil || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		Username: user.Username,
		Name:     user.Name,
		IsAdmin:  user.IsAdmin,
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailure, err)
	}
	if err := s.store.Set(models.SessionKey, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailure, err)
	}
	return session, nil
}

// Logout удаляет запись сессии.
func (s *LedgerService) Logout() error {
	return s.store.Remove(models.SessionKey)
}

// Current возвращает активную сессию или nil.
func (s *LedgerService) Current() (*models.Session, error) {
	raw, err := s.store.Get(models.SessionKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, nil
	}
	return &session, nil
}

func (s *LedgerService) IsLogged() bool {
	session, err := s.Current()
	return err == nil && session != nil
}
