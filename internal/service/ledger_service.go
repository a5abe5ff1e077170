package service

import (
	"context"

	"github.com/carson-networks/bank-dashboard/internal/ledger"
)

const defaultRecentLimit = 5

// LedgerService handles transaction history business logic. The underlying
// store is an immutable snapshot, so every method is read-only.
type LedgerService struct {
	store ledger.Store
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store ledger.Store) *LedgerService {
	return &LedgerService{store: store}
}

// Query returns the sorted transactions matching the query, together with
// the income/expense/net aggregate over the same set.
func (s *LedgerService) Query(ctx context.Context, query ledger.Query) (*LedgerView, error) {
	sorted := ledger.Sort(s.store.All())
	filtered := ledger.Filter(sorted, query)

	return &LedgerView{
		Transactions: filtered,
		Summary:      ledger.Aggregate(filtered),
		Count:        len(filtered),
	}, nil
}

// Recent returns the newest transactions for the dashboard activity panel.
// A non-positive limit falls back to the default of five.
func (s *LedgerService) Recent(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return ledger.Recent(s.store.All(), limit), nil
}
