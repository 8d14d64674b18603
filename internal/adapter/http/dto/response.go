package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	Balance     decimal.Decimal  `json:"balance"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
	Version     int64            `json:"version"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Balance:     a.Balance,
		CreditLimit: a.CreditLimit,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// EventResponse represents a balance change event in API responses.
type EventResponse struct {
	Sequence      int64           `json:"sequence"`
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	OldBalance    decimal.Decimal `json:"old_balance"`
	NewBalance    decimal.Decimal `json:"new_balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// EventFromDomain converts a domain event to a response.
func EventFromDomain(e *domain.BalanceChangeEvent) *EventResponse {
	return &EventResponse{
		Sequence:      e.Sequence,
		ID:            e.ID,
		TransactionID: e.TransactionID,
		AccountID:     e.AccountID,
		OldBalance:    e.OldBalance,
		NewBalance:    e.NewBalance,
		OccurredAt:    e.OccurredAt,
	}
}

// EventsFromDomain converts domain events to responses.
func EventsFromDomain(events []*domain.BalanceChangeEvent) []*EventResponse {
	result := make([]*EventResponse, len(events))
	for i, e := range events {
		result[i] = EventFromDomain(e)
	}
	return result
}

// ReceiptResponse reports the terminal state of a submission.
type ReceiptResponse struct {
	TransactionID string           `json:"transaction_id"`
	Status        string           `json:"status"`
	Events        []*EventResponse `json:"events,omitempty"`
}

// ReceiptFromUseCase converts a submission receipt to a response.
func ReceiptFromUseCase(r *usecase.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		TransactionID: r.TransactionID,
		Status:        string(r.Status),
		Events:        EventsFromDomain(r.Events),
	}
}

// EventsPageResponse is a page of the event feed.
type EventsPageResponse struct {
	Events     []*EventResponse `json:"events"`
	NextCursor int64            `json:"next_cursor"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
