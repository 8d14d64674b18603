package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a ledger account that can hold a balance.
//
// CreditLimit is a ceiling on the balance itself, not on debt: a credit that
// would push the balance above the limit is refused. A nil limit means zero,
// so an account with no explicit limit tolerates no overdraft on credit.
type Account struct {
	ID          string
	OwnerID     string
	Balance     decimal.Decimal
	CreditLimit *decimal.Decimal
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreditCeiling returns the maximum balance a credit may produce.
func (a *Account) CreditCeiling() decimal.Decimal {
	if a.CreditLimit == nil {
		return decimal.Zero
	}
	return *a.CreditLimit
}

// ValidateDebit checks if account can be debited by amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	newBalance := a.Balance.Sub(amount)
	if newBalance.IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateCredit checks if account can be credited by amount.
func (a *Account) ValidateCredit(amount decimal.Decimal) error {
	newBalance := a.Balance.Add(amount)
	if newBalance.GreaterThan(a.CreditCeiling()) {
		return ErrCreditLimitExceeded
	}
	return nil
}

// ApplyDebit returns new balance after debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns new balance after credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// Clone returns a copy of the account. Stores hand out clones so callers
// can never mutate stored state without going through a commit.
func (a *Account) Clone() *Account {
	c := *a
	if a.CreditLimit != nil {
		limit := *a.CreditLimit
		c.CreditLimit = &limit
	}
	return &c
}
