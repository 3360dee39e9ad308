package services

import "errors"

// Виды отказов по контракту реестра. Все они локальны и восстановимы:
// вызывающая сторона сама решает, как их показать.
var (
	ErrMissingFields       = errors.New("missing fields")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotFound            = errors.New("not found")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrNotPending          = errors.New("request is not pending")
	ErrOrderNotFound       = errors.New("order not found")
	ErrAlreadyPaid         = errors.New("order already paid")
	ErrCycleDetected       = errors.New("referral cycle detected")
	ErrPlanExists          = errors.New("plan already exists")
	ErrZeroBalance         = errors.New("zero balance")

	// ErrPersistFailure оборачивает ошибку хранилища: документ в памяти
	// уже изменён, а на диске – нет.
	ErrPersistFailure = errors.New("persist failure")
)
