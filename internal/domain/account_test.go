package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func limit(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestAccount_ValidateDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		amount  int64
		wantErr error
	}{
		{name: "debit within balance", balance: 10, amount: 10, wantErr: nil},
		{name: "debit below balance", balance: 10, amount: 3, wantErr: nil},
		{name: "debit exceeding balance", balance: 10, amount: 1000, wantErr: ErrInsufficientFunds},
		{name: "debit from empty account", balance: 0, amount: 1, wantErr: ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{ID: "1", Balance: decimal.NewFromInt(tt.balance)}

			err := acc.ValidateDebit(decimal.NewFromInt(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDebit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccount_ValidateCredit(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		creditLimit *decimal.Decimal
		amount      int64
		wantErr     error
	}{
		{name: "credit within limit", balance: 10, creditLimit: limit(100), amount: 50, wantErr: nil},
		{name: "credit exactly at limit", balance: 10, creditLimit: limit(100), amount: 90, wantErr: nil},
		{name: "credit exceeding limit", balance: 10, creditLimit: limit(100), amount: 91, wantErr: ErrCreditLimitExceeded},
		// nil limit means a zero ceiling: any credit above zero balance is refused.
		{name: "credit with no limit", balance: 10, creditLimit: nil, amount: 1, wantErr: ErrCreditLimitExceeded},
		{name: "credit with no limit from negative balance", balance: -5, creditLimit: nil, amount: 5, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{ID: "1", Balance: decimal.NewFromInt(tt.balance), CreditLimit: tt.creditLimit}

			err := acc.ValidateCredit(decimal.NewFromInt(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCredit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccount_ApplyDebitCredit(t *testing.T) {
	acc := &Account{ID: "1", Balance: decimal.NewFromInt(10)}

	if got := acc.ApplyDebit(decimal.NewFromInt(4)); !got.Equal(decimal.NewFromInt(6)) {
		t.Errorf("ApplyDebit() = %s, want 6", got)
	}

	if got := acc.ApplyCredit(decimal.NewFromInt(4)); !got.Equal(decimal.NewFromInt(14)) {
		t.Errorf("ApplyCredit() = %s, want 14", got)
	}

	// Apply* are pure; the account itself is untouched.
	if !acc.Balance.Equal(decimal.NewFromInt(10)) {
		t.Errorf("balance mutated to %s", acc.Balance)
	}
}

func TestAccount_Clone(t *testing.T) {
	acc := &Account{ID: "1", Balance: decimal.NewFromInt(10), CreditLimit: limit(50), Version: 3}

	clone := acc.Clone()
	clone.Balance = decimal.NewFromInt(99)
	*clone.CreditLimit = decimal.NewFromInt(1)
	clone.Version = 9

	if !acc.Balance.Equal(decimal.NewFromInt(10)) {
		t.Errorf("clone shares balance, got %s", acc.Balance)
	}
	if !acc.CreditLimit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("clone shares credit limit, got %s", acc.CreditLimit)
	}
	if acc.Version != 3 {
		t.Errorf("clone shares version, got %d", acc.Version)
	}
}
