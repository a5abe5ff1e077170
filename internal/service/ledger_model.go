package service

import (
	"github.com/carson-networks/bank-dashboard/internal/ledger"
)

// LedgerView is the result of one ledger query: the sorted, filtered
// transactions plus the aggregate totals and the match count.
type LedgerView struct {
	Transactions []ledger.Transaction
	Summary      ledger.Summary
	Count        int
}
