package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeTransaction(id int64, date string, amount string) Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return Transaction{
		ID:          id,
		Date:        parsed,
		Description: "Entry",
		Amount:      decimal.RequireFromString(amount),
		Status:      StatusCompleted,
	}
}

// -- Sort tests --

func TestSort_DateDescending(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1200.00"),
		makeTransaction(2, "2024-02-01", "-50.00"),
		makeTransaction(3, "2024-01-10", "-300.00"),
	}

	sorted := Sort(transactions)

	assert.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].Date.After(sorted[i-1].Date), "dates must be non-increasing")
	}
	assert.Equal(t, int64(2), sorted[0].ID)
	assert.Equal(t, int64(3), sorted[1].ID)
	assert.Equal(t, int64(1), sorted[2].ID)
}

func TestSort_StableOnEqualDates(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(10, "2024-06-01", "5.00"),
		makeTransaction(11, "2024-06-01", "6.00"),
		makeTransaction(12, "2024-06-01", "7.00"),
	}

	sorted := Sort(transactions)

	assert.Equal(t, int64(10), sorted[0].ID, "input order preserved on ties")
	assert.Equal(t, int64(11), sorted[1].ID)
	assert.Equal(t, int64(12), sorted[2].ID)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1.00"),
		makeTransaction(2, "2024-03-05", "1.00"),
	}

	_ = Sort(transactions)

	assert.Equal(t, int64(1), transactions[0].ID)
	assert.Equal(t, int64(2), transactions[1].ID)
}

// -- Filter tests --

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	transactions := []Transaction{
		{ID: 1, Date: time.Now(), Description: "Salary Deposit", Amount: decimal.RequireFromString("100")},
		{ID: 2, Date: time.Now(), Description: "Grocery Market", Amount: decimal.RequireFromString("-20")},
	}

	filtered := Filter(transactions, Query{Search: "sAlArY", Type: TypeAll})

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestFilter_TypeMatchesAmountSign(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1200.00"),
		makeTransaction(2, "2024-01-10", "-300.00"),
		makeTransaction(3, "2024-02-01", "0.00"),
	}

	income := Filter(transactions, Query{Type: TypeIncome})
	expense := Filter(transactions, Query{Type: TypeExpense})

	assert.Len(t, income, 2, "zero amount counts as income")
	assert.Len(t, expense, 1)
	assert.Equal(t, int64(2), expense[0].ID)
}

func TestFilter_YearBoundsAreExact(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-12-31", "1.00"),
		makeTransaction(2, "2025-01-01", "1.00"),
	}

	filtered := Filter(transactions, Query{Year: 2024})

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestFilter_PredicatesAreConjunctive(t *testing.T) {
	transactions := []Transaction{
		{ID: 1, Date: mustDate("2024-03-01"), Description: "Rent Payment", Amount: decimal.RequireFromString("-1200")},
		{ID: 2, Date: mustDate("2025-03-01"), Description: "Rent Payment", Amount: decimal.RequireFromString("-1250")},
		{ID: 3, Date: mustDate("2024-03-02"), Description: "Rent Refund", Amount: decimal.RequireFromString("1200")},
	}

	filtered := Filter(transactions, Query{Search: "rent", Type: TypeExpense, Year: 2024})

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestFilter_Idempotent(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1200.00"),
		makeTransaction(2, "2024-01-10", "-300.00"),
		makeTransaction(3, "2024-02-01", "-50.00"),
	}
	query := Query{Type: TypeExpense, Year: 2024}

	once := Filter(transactions, query)
	twice := Filter(once, query)

	assert.Equal(t, once, twice)
}

func TestFilter_PreservesRunningBalance(t *testing.T) {
	tx := makeTransaction(1, "2024-01-05", "-300.00")
	tx.RunningBalance = decimal.RequireFromString("24900.00")

	filtered := Filter([]Transaction{tx}, Query{Type: TypeExpense})

	assert.Len(t, filtered, 1)
	assert.True(t, filtered[0].RunningBalance.Equal(decimal.RequireFromString("24900.00")))
}

// -- Aggregate tests --

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.NetBalance.IsZero())
}

func TestAggregate_NetIsIncomeMinusExpenses(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1200.00"),
		makeTransaction(2, "2024-01-10", "-300.00"),
		makeTransaction(3, "2024-02-01", "-50.00"),
	}

	summary := Aggregate(transactions)

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("1200.00")))
	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("350.00")))
	assert.True(t, summary.NetBalance.Equal(summary.TotalIncome.Sub(summary.TotalExpenses)))
}

func TestAggregate_ExpenseFilterScenario(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1200.00"),
		makeTransaction(2, "2024-01-10", "-300.00"),
		makeTransaction(3, "2024-02-01", "-50.00"),
	}

	filtered := Filter(transactions, Query{Type: TypeExpense, Year: 2024})
	summary := Aggregate(filtered)

	assert.Len(t, filtered, 2)
	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("350.00")))
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.NetBalance.Equal(decimal.RequireFromString("-350.00")))
}

// -- Recent tests --

func TestRecent_TruncatesToNewest(t *testing.T) {
	transactions := []Transaction{
		makeTransaction(1, "2024-01-05", "1.00"),
		makeTransaction(2, "2024-03-05", "1.00"),
		makeTransaction(3, "2024-02-05", "1.00"),
	}

	recent := Recent(transactions, 2)

	assert.Len(t, recent, 2)
	assert.Equal(t, int64(2), recent[0].ID)
	assert.Equal(t, int64(3), recent[1].ID)
}

func TestRecent_ShorterInputReturnedWhole(t *testing.T) {
	transactions := []Transaction{makeTransaction(1, "2024-01-05", "1.00")}

	recent := Recent(transactions, 5)

	assert.Len(t, recent, 1)
}

func mustDate(date string) time.Time {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return parsed
}
