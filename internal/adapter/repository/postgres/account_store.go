package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// eventAppendLockID is the advisory lock serializing the event-append phase
// of Apply across transactions.
const eventAppendLockID = int64(0x6c6467) // "ldg"

// AccountStore implements usecase.AccountStore backed by PostgreSQL.
// Apply runs inside a single database transaction so that version checks,
// balance writes, and event inserts commit or roll back together.
type AccountStore struct {
	pool *pgxpool.Pool
}

// NewAccountStore creates a new AccountStore.
func NewAccountStore(pool *pgxpool.Pool) *AccountStore {
	return &AccountStore{pool: pool}
}

// Create inserts a new account.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (id, owner_id, balance, credit_limit, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID,
		account.OwnerID,
		decimalToNumeric(account.Balance),
		decimalPtrToNumeric(account.CreditLimit),
		account.Version,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrAccountExists
		}

		return err
	}

	return nil
}

// Read retrieves an account by ID.
func (s *AccountStore) Read(ctx context.Context, id string) (*domain.Account, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, balance, credit_limit, version, created_at, updated_at
		 FROM accounts WHERE id = $1`,
		id,
	)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// List lists accounts ordered by ID with pagination.
func (s *AccountStore) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner_id, balance, credit_limit, version, created_at, updated_at
		 FROM accounts ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0, limit)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Apply atomically applies a batch of version-checked balance writes and
// appends the corresponding events. If any write's expected version does not
// match the stored version, nothing is applied and domain.ErrConflict is
// returned. Event sequence numbers come from the balance_events BIGSERIAL and
// are written back into the passed events.
func (s *AccountStore) Apply(ctx context.Context, writes []usecase.AccountWrite, events []*domain.BalanceChangeEvent) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, w := range writes {
		tag, err := tx.Exec(ctx,
			`UPDATE accounts
			 SET balance = $1, version = version + 1, updated_at = $2
			 WHERE id = $3 AND version = $4`,
			decimalToNumeric(w.NewBalance),
			timeToPgTimestamptz(w.UpdatedAt),
			w.AccountID,
			w.ExpectedVersion,
		)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`,
				w.AccountID,
			).Scan(&exists); err != nil {
				return err
			}

			if !exists {
				return domain.ErrAccountNotFound
			}

			return domain.ErrConflict
		}
	}

	// Sequence numbers must become visible in allocation order: if a
	// transaction allocated seq N but committed after seq N+1 was already
	// read, the feed cursor would move past N and never return it. The
	// advisory lock is held until commit, so at most one append is in
	// flight and no sequence can surface before an earlier one.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, eventAppendLockID); err != nil {
		return err
	}

	for _, ev := range events {
		err := tx.QueryRow(ctx,
			`INSERT INTO balance_events (id, transaction_id, account_id, old_balance, new_balance, occurred_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING seq`,
			ev.ID,
			ev.TransactionID,
			ev.AccountID,
			decimalToNumeric(ev.OldBalance),
			decimalToNumeric(ev.NewBalance),
			timeToPgTimestamptz(ev.OccurredAt),
		).Scan(&ev.Sequence)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		account     domain.Account
		balance     pgtype.Numeric
		creditLimit pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.OwnerID,
		&balance,
		&creditLimit,
		&account.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Balance = numericToDecimal(balance)
	account.CreditLimit = numericToDecimalPtr(creditLimit)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func decimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}

	return decimalToNumeric(*d)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func numericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}

	d := numericToDecimal(n)

	return &d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
