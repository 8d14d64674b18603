package domain

// Principal is the identity on whose behalf a transaction is submitted.
type Principal struct {
	ID   string
	Role Role
}

// Role represents a principal's access level
type Role string

const (
	// RoleAdmin has full access to all operations and accounts
	RoleAdmin Role = "admin"

	// RoleMember can operate only on accounts it owns
	RoleMember Role = "member"
)

var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// IsValid checks if the role is a known role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// Operation names an action checked against the authorization gate.
type Operation string

const (
	OpDebit         Operation = "debit"
	OpCredit        Operation = "credit"
	OpTransfer      Operation = "transfer"
	OpCreateAccount Operation = "account.create"
	OpReadAccount   Operation = "account.read"
)
