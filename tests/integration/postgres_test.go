package integration

import (
	"context"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgresRepo "github.com/kindredhq/ledgerd/internal/adapter/repository/postgres"
	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/postgres"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// newPostgresPool connects to the database named by TEST_DATABASE_URL,
// applies migrations, and truncates the ledger tables.
func newPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	if err := postgres.RunMigrations(databaseURL); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, databaseURL, 10, 2)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, `TRUNCATE balance_events, accounts CASCADE`); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}

	return pool
}

// A reader following the feed cursor must eventually see every committed
// event exactly in sequence order, even while writers are still committing.
// A sequence allocated before the cursor but committed after it would be
// skipped forever.
func TestPostgresFeedSeesEveryCommit(t *testing.T) {
	pool := newPostgresPool(t)
	ctx := context.Background()

	store := postgresRepo.NewRetryingAccountStore(
		postgresRepo.NewAccountStore(pool),
		postgresRepo.NewRetrier(),
	)
	eventLog := postgresRepo.NewEventLog(pool)
	idGen := postgresRepo.NewULIDGenerator()

	const numWriters = 20

	now := time.Now().UTC()
	for i := 0; i < numWriters; i++ {
		account := &domain.Account{
			ID:        strconv.Itoa(i),
			OwnerID:   "alice",
			Balance:   decimal.NewFromInt(100),
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.Create(ctx, account); err != nil {
			t.Fatalf("failed to create account %d: %v", i, err)
		}
	}

	// Each writer debits its own account once; distinct accounts mean no
	// version conflicts, only commit-order interleaving.
	var wg sync.WaitGroup
	wg.Add(numWriters)

	for i := 0; i < numWriters; i++ {
		i := i
		go func() {
			defer wg.Done()

			id := strconv.Itoa(i)
			account, err := store.Read(ctx, id)
			if err != nil {
				t.Errorf("failed to read account %s: %v", id, err)
				return
			}

			newBalance := account.Balance.Sub(decimal.NewFromInt(10))
			writes := []usecase.AccountWrite{{
				AccountID:       id,
				ExpectedVersion: account.Version,
				NewBalance:      newBalance,
				UpdatedAt:       time.Now().UTC(),
			}}
			events := []*domain.BalanceChangeEvent{{
				ID:            idGen.Generate(),
				TransactionID: idGen.Generate(),
				AccountID:     id,
				OldBalance:    account.Balance,
				NewBalance:    newBalance,
				OccurredAt:    time.Now().UTC(),
			}}

			if err := store.Apply(ctx, writes, events); err != nil {
				t.Errorf("failed to apply write for account %s: %v", id, err)
			}
		}()
	}

	// Follow the cursor while writers are still in flight, the way the
	// dispatcher does. The cursor only moves forward, so any event whose
	// sequence surfaces behind it is lost.
	var (
		cursor int64
		seen   []int64
	)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	deadline := time.After(10 * time.Second)
	for len(seen) < numWriters {
		select {
		case <-deadline:
			t.Fatalf("feed returned %d of %d events before deadline", len(seen), numWriters)
		default:
		}

		events, next, err := eventLog.ReadFrom(ctx, cursor, numWriters)
		if err != nil {
			t.Fatalf("failed to read events: %v", err)
		}

		for _, ev := range events {
			seen = append(seen, ev.Sequence)
		}
		cursor = next

		if len(events) == 0 {
			select {
			case <-done:
				// Writers finished; one more read below picks up
				// anything committed since the last poll.
				events, _, err := eventLog.ReadFrom(ctx, cursor, numWriters)
				if err != nil {
					t.Fatalf("failed to read events: %v", err)
				}
				for _, ev := range events {
					seen = append(seen, ev.Sequence)
				}
				if len(seen) != numWriters {
					t.Fatalf("cursor skipped events: saw %d of %d", len(seen), numWriters)
				}
			case <-time.After(10 * time.Millisecond):
			}
		}
	}

	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Fatalf("sequences out of order: %v", seen)
		}
	}
}
