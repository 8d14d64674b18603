package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/domain"
)

// AccountUseCase handles account provisioning and reads. Provisioning is an
// administrative action: balances move only through the coordinator afterward.
type AccountUseCase struct {
	store AccountStore
	gate  AuthorizationGate
	idGen IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(store AccountStore, gate AuthorizationGate, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		store: store,
		gate:  gate,
		idGen: idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	ID             string // optional, generated when empty
	OwnerID        string
	OpeningBalance decimal.Decimal
	CreditLimit    *decimal.Decimal
}

// CreateAccount provisions a new account with its balance and owner fixed.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, principal domain.Principal, input CreateAccountInput) (*domain.Account, error) {
	if err := uc.gate.Authorize(ctx, principal, domain.OpCreateAccount, input.ID); err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uc.idGen.Generate()
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:          id,
		OwnerID:     input.OwnerID,
		Balance:     input.OpeningBalance,
		CreditLimit: input.CreditLimit,
		Version:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.store.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, principal domain.Principal, id string) (*domain.Account, error) {
	if err := uc.gate.Authorize(ctx, principal, domain.OpReadAccount, id); err != nil {
		return nil, err
	}

	return uc.store.Read(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination. An empty account ID in the
// gate check means "all accounts", which only an admin may see.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, principal domain.Principal, input ListAccountsInput) ([]*domain.Account, error) {
	if err := uc.gate.Authorize(ctx, principal, domain.OpReadAccount, ""); err != nil {
		return nil, err
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.store.List(ctx, input.Limit, input.Offset)
}
