package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/kindredhq/ledgerd/internal/domain"
)

// Coordinator drives a submission through its state machine: authorize, read
// a snapshot, validate, then commit with a version-checked write. The store's
// compare-and-swap totally orders commits; the coordinator never retries a
// conflict — resubmission is caller policy.
type Coordinator struct {
	store  AccountStore
	gate   AuthorizationGate
	engine *Engine
	idGen  IDGenerator
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(store AccountStore, gate AuthorizationGate, engine *Engine, idGen IDGenerator) *Coordinator {
	return &Coordinator{
		store:  store,
		gate:   gate,
		engine: engine,
		idGen:  idGen,
	}
}

// Receipt reports the state a submission terminated in. Events is populated
// only for committed transactions.
type Receipt struct {
	TransactionID string
	Status        domain.TransactionStatus
	Events        []*domain.BalanceChangeEvent
}

// Submit executes one transaction to a terminal state. It is synchronous:
// when it returns, the transaction is committed, rejected, or conflicted,
// and on any failure the store is exactly as it was before the call.
func (c *Coordinator) Submit(ctx context.Context, principal domain.Principal, tx domain.Transaction) (*Receipt, error) {
	if tx.ID == "" {
		tx.ID = c.idGen.Generate()
	}
	tx.SubmittedAt = time.Now().UTC()

	receipt := &Receipt{
		TransactionID: tx.ID,
		Status:        domain.StatusSubmitted,
	}

	c.advance(receipt, domain.StatusValidating)

	if err := tx.Validate(); err != nil {
		c.advance(receipt, domain.StatusRejected)
		return receipt, err
	}

	if err := c.authorize(ctx, principal, tx); err != nil {
		c.advance(receipt, domain.StatusRejected)
		return receipt, err
	}

	accounts, err := c.readSnapshots(ctx, tx)
	if err != nil {
		c.advance(receipt, domain.StatusRejected)
		return receipt, err
	}

	plan, err := c.engine.Stage(tx, accounts, tx.SubmittedAt)
	if err != nil {
		c.advance(receipt, domain.StatusRejected)
		return receipt, err
	}

	c.advance(receipt, domain.StatusApplying)

	if err := c.store.Apply(ctx, plan.Writes, plan.Events); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			c.advance(receipt, domain.StatusConflicted)
		}
		// Other store errors leave the submission non-terminal; the
		// caller cannot assume either outcome.
		return receipt, err
	}

	c.advance(receipt, domain.StatusCommitted)
	receipt.Events = plan.Events

	return receipt, nil
}

func (c *Coordinator) authorize(ctx context.Context, principal domain.Principal, tx domain.Transaction) error {
	switch tx.Kind {
	case domain.KindDebit:
		return c.gate.Authorize(ctx, principal, domain.OpDebit, tx.AccountID)
	case domain.KindCredit:
		return c.gate.Authorize(ctx, principal, domain.OpCredit, tx.AccountID)
	case domain.KindTransfer:
		// Authorization is checked against the account money leaves from;
		// any account may receive.
		return c.gate.Authorize(ctx, principal, domain.OpTransfer, tx.FromAccountID)
	default:
		return domain.ErrUnknownTransactionKind
	}
}

func (c *Coordinator) readSnapshots(ctx context.Context, tx domain.Transaction) (map[string]*domain.Account, error) {
	accounts := make(map[string]*domain.Account)

	for _, id := range tx.AccountIDs() {
		account, err := c.store.Read(ctx, id)
		if err != nil {
			return nil, err
		}

		accounts[id] = account
	}

	return accounts, nil
}

func (c *Coordinator) advance(receipt *Receipt, next domain.TransactionStatus) {
	if receipt.Status.CanTransitionTo(next) {
		receipt.Status = next
	}
}
