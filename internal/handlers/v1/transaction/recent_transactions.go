package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-dashboard/internal/ledger"
)

// RecentTransactionsInput is the Huma input for the recent activity panel.
type RecentTransactionsInput struct {
	Limit int `query:"limit" minimum:"0" maximum:"50" doc:"Number of entries, default 5"`
}

// RecentTransactionsResponseBody is the response body for recent activity.
type RecentTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Newest transactions, date descending"`
}

// RecentTransactionsOutput is the Huma output for recent activity.
type RecentTransactionsOutput struct {
	Body RecentTransactionsResponseBody
}

// recentLister is the interface for listing recent transactions.
type recentLister interface {
	Recent(ctx context.Context, limit int) ([]ledger.Transaction, error)
}

// RecentTransactionsHandler handles GET /v1/transactions/recent.
type RecentTransactionsHandler struct {
	LedgerService recentLister
}

// NewRecentTransactionsHandler creates a new RecentTransactionsHandler.
func NewRecentTransactionsHandler(svc recentLister) *RecentTransactionsHandler {
	return &RecentTransactionsHandler{LedgerService: svc}
}

// Register registers the recent transactions endpoint with the Huma API.
func (h *RecentTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recent-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/recent",
		Summary:     "Recent transactions",
		Description: "Returns the newest transactions for the dashboard activity panel.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *RecentTransactionsHandler) handle(ctx context.Context, input *RecentTransactionsInput) (*RecentTransactionsOutput, error) {
	transactions, err := h.LedgerService.Recent(ctx, input.Limit)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list recent transactions", err)
	}

	return &RecentTransactionsOutput{Body: RecentTransactionsResponseBody{
		Transactions: convertTransactions(transactions),
	}}, nil
}
