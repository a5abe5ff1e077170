package directory

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind represents the product class of an account.
type AccountKind string

const (
	KindChecking   AccountKind = "checking"
	KindSavings    AccountKind = "savings"
	KindRetirement AccountKind = "retirement"
)

// Account is a read-only snapshot of one account for the current session.
type Account struct {
	ID           string
	DisplayName  string
	MaskedNumber string
	Balance      decimal.Decimal
	Kind         AccountKind
}

// Biller is a payee the account holder can pay. Amount and DueDate describe
// the current outstanding bill; they are not user-entered.
type Biller struct {
	ID      string
	Name    string
	Icon    string
	Amount  decimal.Decimal
	DueDate time.Time
}

// DepositDetails are the instructions shared with a counterparty who wants to
// send funds to the account holder.
type DepositDetails struct {
	BankName      string
	RoutingNumber string
	AccountNumber string
	AccountType   string
}

// AccountDirectory provides the account snapshots. List returns a stable order.
type AccountDirectory interface {
	List() []Account
	DepositDetails() DepositDetails
}

// BillerDirectory provides the payable billers. List returns a stable order.
type BillerDirectory interface {
	List() []Biller
	Find(id string) (Biller, bool)
}
