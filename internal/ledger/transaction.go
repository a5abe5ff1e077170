package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the settlement state of a transaction.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// Transaction represents one immutable ledger entry. RunningBalance is the
// account balance immediately after this entry and is precomputed by the
// ledger source; the query engine never recomputes it.
type Transaction struct {
	ID             int64
	Date           time.Time
	Description    string
	Amount         decimal.Decimal
	Status         Status
	InitiatedBy    string
	RunningBalance decimal.Decimal
	Category       string
	Icon           string
}

// IsIncome reports whether the entry is a credit. A zero amount counts as income.
func (t Transaction) IsIncome() bool {
	return t.Amount.Sign() >= 0
}

// Store is a read-only snapshot of the full transaction history for a session.
type Store interface {
	All() []Transaction
}
