package services

import (
	"time"

	"mlm-ledger/models"
)

// SubmitKYC подаёт документ на проверку. Запись одна на участника:
// повторная подача перезаписывает её и возвращает статус в pending.
func (s *LedgerService) SubmitKYC(username, document string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.doc.FindUser(username)
	if user == nil {
		return ErrUserNotFound
	}

	now := time.Now()
	req := models.VerificationRequest{
		Username:    username,
		Document:    document,
		Status:      models.KYCPending,
		SubmittedAt: now,
	}

	replaced := false
	for i := range s.doc.Verifications {
		if s.doc.Verifications[i].Username == username {
			s.doc.Verifications[i] = req
			replaced = true
			break
		}
	}
	if !replaced {
		s.doc.Verifications = append(s.doc.Verifications, req)
	}

	user.KYCStatus = models.KYCPending
	user.KYCUpdatedAt = &now

	return s.persist()
}

// ApproveKYC одобряет проверку: статус ставится и на заявке, и на участнике.
func (s *LedgerService) ApproveKYC(username, adminUsername string) error {
	return s.resolveKYC(username, adminUsername, models.KYCApproved, "")
}

// RejectKYC отклоняет проверку с необязательной причиной.
func (s *LedgerService) RejectKYC(username, adminUsername, note string) error {
	return s.resolveKYC(username, adminUsername, models.KYCRejected, note)
}

func (s *LedgerService) resolveKYC(username, adminUsername string, status models.KYCStatus, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req *models.VerificationRequest
	for i := range s.doc.Verifications {
		if s.doc.Verifications[i].Username == username {
			req = &s.doc.Verifications[i]
			break
		}
	}
	if req == nil {
		return ErrNotFound
	}

	now := time.Now()
	req.Status = status
	req.Note = note
	req.HandledBy = adminUsername
	req.HandledAt = &now

	if user := s.doc.FindUser(username); user != nil {
		user.KYCStatus = status
		user.KYCUpdatedAt = &now
	}

	return s.persist()
}

// Verifications возвращает все заявки на проверку.
func (s *LedgerService) Verifications() []models.VerificationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.VerificationRequest(nil), s.doc.Verifications...)
}
