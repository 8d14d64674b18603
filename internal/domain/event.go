package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceChangeEvent records a single committed balance mutation.
//
// Events are immutable and carry value snapshots, never live references:
// OldBalance and NewBalance stay valid after the account changes again.
// Sequence is the commit order assigned atomically with the write, so
// readers observing events in sequence order observe commit order.
type BalanceChangeEvent struct {
	ID            string
	Sequence      int64
	TransactionID string
	AccountID     string
	OldBalance    decimal.Decimal
	NewBalance    decimal.Decimal
	OccurredAt    time.Time
}
