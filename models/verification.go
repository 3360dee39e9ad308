package models

import "time"

type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// VerificationRequest – одна запись на участника; повторная подача
// перезаписывает её и сбрасывает статус в pending.
type VerificationRequest struct {
	Username    string     `json:"username"`
	Document    string     `json:"document"` // содержимое загруженного документа
	Status      KYCStatus  `json:"status"`
	Note        string     `json:"note,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	HandledBy   string     `json:"handled_by,omitempty"`
	HandledAt   *time.Time `json:"handled_at,omitempty"`
}
