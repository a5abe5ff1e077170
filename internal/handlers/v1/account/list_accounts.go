package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/directory"
	"github.com/carson-networks/bank-dashboard/internal/logging"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct{}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts     []Account `json:"accounts" doc:"Account snapshots in display order"`
	TotalBalance string    `json:"totalBalance" doc:"Sum of all account balances"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]directory.Account, decimal.Decimal, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns the account holder's accounts and the total balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, total, err := h.AccountService.ListAccounts(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list accounts", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{
		Accounts:     make([]Account, len(accounts)),
		TotalBalance: total.StringFixed(2),
	}

	for i, acc := range accounts {
		resp.Accounts[i] = Account{
			ID:           acc.ID,
			DisplayName:  acc.DisplayName,
			MaskedNumber: acc.MaskedNumber,
			Balance:      acc.Balance.StringFixed(2),
			Kind:         string(acc.Kind),
		}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
