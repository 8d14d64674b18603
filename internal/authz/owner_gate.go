// Package authz provides reference implementations of the authorization
// gate. The ledger core only consumes the decision; policy lives here.
package authz

import (
	"context"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// OwnerGate authorizes by ownership: members may operate only on accounts
// they own, admins may do anything. Provisioning and listing all accounts
// are admin-only.
type OwnerGate struct {
	store usecase.AccountStore
}

// NewOwnerGate creates a new OwnerGate.
func NewOwnerGate(store usecase.AccountStore) *OwnerGate {
	return &OwnerGate{store: store}
}

// Authorize implements usecase.AuthorizationGate.
func (g *OwnerGate) Authorize(ctx context.Context, principal domain.Principal, op domain.Operation, accountID string) error {
	if !principal.Role.IsValid() {
		return domain.ErrAccessDenied
	}

	if principal.Role == domain.RoleAdmin {
		return nil
	}

	switch op {
	case domain.OpCreateAccount:
		return domain.ErrAccessDenied
	case domain.OpReadAccount:
		// An empty account ID means "all accounts".
		if accountID == "" {
			return domain.ErrAccessDenied
		}
	}

	account, err := g.store.Read(ctx, accountID)
	if err != nil {
		return err
	}

	if account.OwnerID != principal.ID {
		return domain.ErrAccessDenied
	}

	return nil
}

// AllowAll is a gate that permits every operation. It backs deployments
// that run with authentication disabled.
type AllowAll struct{}

// Authorize implements usecase.AuthorizationGate.
func (AllowAll) Authorize(ctx context.Context, principal domain.Principal, op domain.Operation, accountID string) error {
	return nil
}
