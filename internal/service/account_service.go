package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/directory"
)

// AccountService handles account business logic over the read-only directory.
type AccountService struct {
	directory directory.AccountDirectory
}

// NewAccountService creates a new AccountService.
func NewAccountService(dir directory.AccountDirectory) *AccountService {
	return &AccountService{directory: dir}
}

// ListAccounts returns the account snapshots in stable order plus the total
// balance across all of them.
func (s *AccountService) ListAccounts(ctx context.Context) ([]directory.Account, decimal.Decimal, error) {
	accounts := s.directory.List()

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return accounts, total, nil
}

// DepositDetails returns the receive-money instructions.
func (s *AccountService) DepositDetails(ctx context.Context) (directory.DepositDetails, error) {
	return s.directory.DepositDetails(), nil
}
