package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-dashboard/internal/directory"
)

// DepositDetailsInput is the Huma input for fetching deposit details.
type DepositDetailsInput struct{}

// DepositDetailsOutput is the Huma output for fetching deposit details.
type DepositDetailsOutput struct {
	Body DepositDetails
}

// depositDetailsReader is the interface for fetching deposit details.
type depositDetailsReader interface {
	DepositDetails(ctx context.Context) (directory.DepositDetails, error)
}

// DepositDetailsHandler handles GET /v1/accounts/deposit-details.
type DepositDetailsHandler struct {
	AccountService depositDetailsReader
}

// NewDepositDetailsHandler creates a new DepositDetailsHandler.
func NewDepositDetailsHandler(svc depositDetailsReader) *DepositDetailsHandler {
	return &DepositDetailsHandler{AccountService: svc}
}

// Register registers the deposit details endpoint with the Huma API.
func (h *DepositDetailsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-deposit-details",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/deposit-details",
		Summary:     "Get deposit details",
		Description: "Returns the instructions for receiving funds into the primary account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DepositDetailsHandler) handle(ctx context.Context, input *DepositDetailsInput) (*DepositDetailsOutput, error) {
	details, err := h.AccountService.DepositDetails(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch deposit details", err)
	}

	return &DepositDetailsOutput{Body: DepositDetails{
		BankName:      details.BankName,
		RoutingNumber: details.RoutingNumber,
		AccountNumber: details.AccountNumber,
		AccountType:   details.AccountType,
	}}, nil
}
