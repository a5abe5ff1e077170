package directory

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaticAccounts serves the fixed account set for a demo session.
// Data is immutable after construction.
type StaticAccounts struct {
	accounts []Account
	deposit  DepositDetails
}

// NewStaticAccounts creates the account directory with the stock demo data.
func NewStaticAccounts() *StaticAccounts {
	return &StaticAccounts{
		accounts: []Account{
			{
				ID:           "checking",
				DisplayName:  "Checking Account",
				MaskedNumber: "****4521",
				Balance:      decimal.RequireFromString("24847.32"),
				Kind:         KindChecking,
			},
			{
				ID:           "savings",
				DisplayName:  "Savings Account",
				MaskedNumber: "****7893",
				Balance:      decimal.RequireFromString("48120.15"),
				Kind:         KindSavings,
			},
			{
				ID:           "ira2024",
				DisplayName:  "IRA 2024",
				MaskedNumber: "****2204",
				Balance:      decimal.RequireFromString("31200.00"),
				Kind:         KindRetirement,
			},
			{
				ID:           "ira2023",
				DisplayName:  "IRA 2023",
				MaskedNumber: "****2301",
				Balance:      decimal.RequireFromString("28450.88"),
				Kind:         KindRetirement,
			},
		},
		deposit: DepositDetails{
			BankName:      "Meridian National Bank",
			RoutingNumber: "021000089",
			AccountNumber: "****4521",
			AccountType:   "Checking",
		},
	}
}

// List returns the account snapshots in their fixed display order.
func (d *StaticAccounts) List() []Account {
	accounts := make([]Account, len(d.accounts))
	copy(accounts, d.accounts)
	return accounts
}

// DepositDetails returns the receive-money instructions for the primary account.
func (d *StaticAccounts) DepositDetails() DepositDetails {
	return d.deposit
}

// StaticBillers serves the fixed biller set for a demo session.
type StaticBillers struct {
	billers []Biller
}

// NewStaticBillers creates the biller directory with the stock demo data.
func NewStaticBillers() *StaticBillers {
	return &StaticBillers{
		billers: []Biller{
			{
				ID:      "power",
				Name:    "City Power & Light",
				Icon:    "zap",
				Amount:  decimal.RequireFromString("145.50"),
				DueDate: time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:      "internet",
				Name:    "FastNet Internet",
				Icon:    "wifi",
				Amount:  decimal.RequireFromString("89.99"),
				DueDate: time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:      "mortgage",
				Name:    "Home Mortgage",
				Icon:    "home",
				Amount:  decimal.RequireFromString("2450.00"),
				DueDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:      "phone",
				Name:    "Mobile Services",
				Icon:    "phone",
				Amount:  decimal.RequireFromString("125.00"),
				DueDate: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

// List returns the billers in their fixed display order.
func (d *StaticBillers) List() []Biller {
	billers := make([]Biller, len(d.billers))
	copy(billers, d.billers)
	return billers
}

// Find looks up a biller by ID.
func (d *StaticBillers) Find(id string) (Biller, bool) {
	for _, b := range d.billers {
		if b.ID == id {
			return b, true
		}
	}
	return Biller{}, false
}
