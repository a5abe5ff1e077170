package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-dashboard/internal/ledger"
	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/service"
)

const dateLayout = "2006-01-02"

// ListTransactionsInput is the Huma input for querying the ledger.
type ListTransactionsInput struct {
	Search string `query:"search" doc:"Case-insensitive substring match on descriptions"`
	Type   string `query:"type" enum:"all,income,expense" doc:"Filter by amount sign, default all"`
	Year   int    `query:"year" minimum:"0" doc:"Filter by calendar year, 0 for all years"`
}

// ListTransactionsResponseBody is the response body for querying the ledger.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, date descending"`
	Count        int           `json:"count" doc:"Number of matching transactions"`
	Summary      Summary       `json:"summary" doc:"Aggregate totals over the matching set"`
}

// ListTransactionsOutput is the Huma output for querying the ledger.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ledgerQuerier is the interface for querying the ledger.
type ledgerQuerier interface {
	Query(ctx context.Context, query ledger.Query) (*service.LedgerView, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	LedgerService ledgerQuerier
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc ledgerQuerier) *ListTransactionsHandler {
	return &ListTransactionsHandler{LedgerService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the transactions matching the search, type, and year filters, with aggregate totals.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput maps the API input onto a ledger query. An empty
// type filter means all.
func parseListTransactionsInput(input *ListTransactionsInput) ledger.Query {
	typeFilter := ledger.TypeFilter(input.Type)
	if typeFilter == "" {
		typeFilter = ledger.TypeAll
	}

	return ledger.Query{
		Search: input.Search,
		Type:   typeFilter,
		Year:   input.Year,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	query := parseListTransactionsInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("queryLedgerMs")
	}
	view, err := h.LedgerService.Query(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to query transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", view.Count)
	}

	resp := ListTransactionsResponseBody{
		Transactions: convertTransactions(view.Transactions),
		Count:        view.Count,
		Summary: Summary{
			TotalIncome:   view.Summary.TotalIncome.StringFixed(2),
			TotalExpenses: view.Summary.TotalExpenses.StringFixed(2),
			NetBalance:    view.Summary.NetBalance.StringFixed(2),
		},
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

func convertTransactions(transactions []ledger.Transaction) []Transaction {
	converted := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		converted[i] = Transaction{
			ID:             tx.ID,
			Date:           tx.Date.Format(dateLayout),
			Description:    tx.Description,
			Amount:         tx.Amount.StringFixed(2),
			Status:         string(tx.Status),
			InitiatedBy:    tx.InitiatedBy,
			RunningBalance: tx.RunningBalance.StringFixed(2),
			Category:       tx.Category,
			Icon:           tx.Icon,
		}
	}
	return converted
}
