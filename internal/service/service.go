package service

import (
	"github.com/carson-networks/bank-dashboard/internal/directory"
	"github.com/carson-networks/bank-dashboard/internal/ledger"
)

// Service holds all business logic services.
type Service struct {
	Ledger  *LedgerService
	Account *AccountService
}

// NewService creates a new Service over the given ledger store and account
// directory.
func NewService(store ledger.Store, accounts directory.AccountDirectory) *Service {
	return &Service{
		Ledger:  NewLedgerService(store),
		Account: NewAccountService(accounts),
	}
}
