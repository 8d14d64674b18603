package domain

// TransactionStatus tracks a submission through the coordinator.
type TransactionStatus string

const (
	StatusSubmitted  TransactionStatus = "submitted"
	StatusValidating TransactionStatus = "validating"
	StatusApplying   TransactionStatus = "applying"
	StatusRejected   TransactionStatus = "rejected"
	StatusCommitted  TransactionStatus = "committed"
	StatusConflicted TransactionStatus = "conflicted"
)

var statusTransitions = map[TransactionStatus][]TransactionStatus{
	StatusSubmitted:  {StatusValidating},
	StatusValidating: {StatusApplying, StatusRejected},
	StatusApplying:   {StatusCommitted, StatusConflicted},
}

// CanTransitionTo reports whether the status machine allows moving to next.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCommitted, StatusConflicted:
		return true
	}
	return false
}
