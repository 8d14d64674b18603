package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
	"github.com/kindredhq/ledgerd/internal/usecase/mocks"
)

var admin = domain.Principal{ID: "root", Role: domain.RoleAdmin}

func TestAccountUseCase_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions account with fixed opening balance", func(t *testing.T) {
		store := mocks.NewMockAccountStore()
		uc := usecase.NewAccountUseCase(store, mocks.NewMockAuthorizationGate(), mocks.NewMockIDGenerator())

		account, err := uc.CreateAccount(ctx, admin, usecase.CreateAccountInput{
			ID:             "1",
			OwnerID:        "alice@example.com",
			OpeningBalance: decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if account.ID != "1" || account.OwnerID != "alice@example.com" {
			t.Errorf("unexpected account: %+v", account)
		}
		if !account.Balance.Equal(decimal.NewFromInt(10)) {
			t.Errorf("balance = %s, want 10", account.Balance)
		}
		if account.Version != 0 {
			t.Errorf("version = %d, want 0", account.Version)
		}
	})

	t.Run("generates an ID when none given", func(t *testing.T) {
		store := mocks.NewMockAccountStore()
		idGen := mocks.NewMockIDGenerator()
		idGen.GenerateFunc = func() string { return "generated-id" }
		uc := usecase.NewAccountUseCase(store, mocks.NewMockAuthorizationGate(), idGen)

		account, err := uc.CreateAccount(ctx, admin, usecase.CreateAccountInput{OwnerID: "alice@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.ID != "generated-id" {
			t.Errorf("id = %q", account.ID)
		}
	})

	t.Run("duplicate account", func(t *testing.T) {
		store := mocks.NewMockAccountStore()
		uc := usecase.NewAccountUseCase(store, mocks.NewMockAuthorizationGate(), mocks.NewMockIDGenerator())

		input := usecase.CreateAccountInput{ID: "1", OwnerID: "alice@example.com"}
		if _, err := uc.CreateAccount(ctx, admin, input); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.CreateAccount(ctx, admin, input); !errors.Is(err, domain.ErrAccountExists) {
			t.Errorf("expected ErrAccountExists, got %v", err)
		}
	})

	t.Run("gate refusal blocks provisioning", func(t *testing.T) {
		store := mocks.NewMockAccountStore()
		gate := mocks.NewMockAuthorizationGate()
		gate.AuthorizeFunc = func(ctx context.Context, p domain.Principal, op domain.Operation, accountID string) error {
			return domain.ErrAccessDenied
		}
		uc := usecase.NewAccountUseCase(store, gate, mocks.NewMockIDGenerator())

		_, err := uc.CreateAccount(ctx, alice, usecase.CreateAccountInput{ID: "1", OwnerID: alice.ID})
		if !errors.Is(err, domain.ErrAccessDenied) {
			t.Errorf("expected ErrAccessDenied, got %v", err)
		}

		if _, readErr := store.Read(ctx, "1"); !errors.Is(readErr, domain.ErrAccountNotFound) {
			t.Error("account was created despite denial")
		}
	})
}

func TestAccountUseCase_GetAccount(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewMockAccountStore()
	seedAccounts(t, store)
	uc := usecase.NewAccountUseCase(store, mocks.NewMockAuthorizationGate(), mocks.NewMockIDGenerator())

	account, err := uc.GetAccount(ctx, alice, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != "1" {
		t.Errorf("id = %q, want 1", account.ID)
	}

	if _, err := uc.GetAccount(ctx, alice, "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_ListAccounts(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewMockAccountStore()
	seedAccounts(t, store)
	uc := usecase.NewAccountUseCase(store, mocks.NewMockAuthorizationGate(), mocks.NewMockIDGenerator())

	accounts, err := uc.ListAccounts(ctx, admin, usecase.ListAccountsInput{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(accounts))
	}
}
