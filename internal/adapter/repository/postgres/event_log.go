package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kindredhq/ledgerd/internal/domain"
)

// EventLog implements usecase.EventLog backed by the balance_events table.
type EventLog struct {
	pool *pgxpool.Pool
}

// NewEventLog creates a new EventLog.
func NewEventLog(pool *pgxpool.Pool) *EventLog {
	return &EventLog{pool: pool}
}

// ReadFrom returns up to limit events with sequence greater than cursor,
// ordered by sequence, along with the sequence of the last event returned.
func (l *EventLog) ReadFrom(ctx context.Context, cursor int64, limit int) ([]*domain.BalanceChangeEvent, int64, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT seq, id, transaction_id, account_id, old_balance, new_balance, occurred_at
		 FROM balance_events WHERE seq > $1 ORDER BY seq LIMIT $2`,
		cursor, limit,
	)
	if err != nil {
		return nil, cursor, err
	}
	defer rows.Close()

	events := make([]*domain.BalanceChangeEvent, 0, limit)
	next := cursor

	for rows.Next() {
		var (
			ev         domain.BalanceChangeEvent
			oldBalance pgtype.Numeric
			newBalance pgtype.Numeric
			occurredAt pgtype.Timestamptz
		)

		err := rows.Scan(
			&ev.Sequence,
			&ev.ID,
			&ev.TransactionID,
			&ev.AccountID,
			&oldBalance,
			&newBalance,
			&occurredAt,
		)
		if err != nil {
			return nil, cursor, err
		}

		ev.OldBalance = numericToDecimal(oldBalance)
		ev.NewBalance = numericToDecimal(newBalance)
		ev.OccurredAt = occurredAt.Time

		events = append(events, &ev)
		next = ev.Sequence
	}

	return events, next, rows.Err()
}

// LatestSequence returns the highest assigned event sequence, or zero when
// the log is empty.
func (l *EventLog) LatestSequence(ctx context.Context) (int64, error) {
	var seq int64

	err := l.pool.QueryRow(ctx,
		`SELECT seq FROM balance_events ORDER BY seq DESC LIMIT 1`,
	).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, err
	}

	return seq, nil
}
