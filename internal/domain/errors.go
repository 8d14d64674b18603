package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")

	// Transaction validation errors
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrSameAccount            = errors.New("cannot transfer to same account")
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")

	// Transaction rejection errors
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")

	// ErrConflict is returned when a commit fails its version check because
	// another transaction mutated one of the touched accounts first.
	ErrConflict = errors.New("account version conflict")

	// ErrAccessDenied is returned when the authorization gate refuses an operation.
	ErrAccessDenied = errors.New("access denied")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)
