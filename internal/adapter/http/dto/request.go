package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	ID             string           `json:"id,omitempty"`
	OwnerID        string           `json:"owner_id"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	CreditLimit    *decimal.Decimal `json:"credit_limit,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		OpeningBalance: r.OpeningBalance,
		CreditLimit:    r.CreditLimit,
	}
}

// DebitRequest represents a request to debit an account.
type DebitRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreditRequest represents a request to credit an account.
type CreditRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// TransferRequest represents a request to move funds between two accounts.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
}
