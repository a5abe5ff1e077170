package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TypeFilter selects transactions by the sign of their amount.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = "income"
	TypeExpense TypeFilter = "expense"
)

// Query describes one view over the ledger. The zero value matches everything.
type Query struct {
	Search string
	Type   TypeFilter
	Year   int // 0 matches all years
}

// Summary holds the aggregate totals for a filtered transaction set.
// TotalExpenses is reported as a positive magnitude.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
}

// Sort returns a new slice ordered by date descending. The sort is stable, so
// entries sharing a date keep their input order.
func Sort(transactions []Transaction) []Transaction {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// Filter returns the transactions matching every predicate of the query:
// case-insensitive substring match on the description, amount sign per the
// type filter, and calendar year. The input slice is not modified.
func Filter(transactions []Transaction, query Query) []Transaction {
	search := strings.ToLower(query.Search)

	matched := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if !matchesType(t, query.Type) {
			continue
		}
		if query.Year != 0 && t.Date.Year() != query.Year {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func matchesType(t Transaction, filter TypeFilter) bool {
	switch filter {
	case TypeIncome:
		return t.IsIncome()
	case TypeExpense:
		return !t.IsIncome()
	default:
		return true
	}
}

// Aggregate computes the income, expense, and net totals for a transaction
// set. All three are zero for an empty input.
func Aggregate(transactions []Transaction) Summary {
	summary := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, t := range transactions {
		if t.IsIncome() {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount.Abs())
		}
	}

	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// Recent returns the n newest transactions, date descending.
func Recent(transactions []Transaction, n int) []Transaction {
	sorted := Sort(transactions)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
