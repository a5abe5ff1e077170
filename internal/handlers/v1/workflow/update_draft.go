package workflow

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/directory"
	wf "github.com/carson-networks/bank-dashboard/internal/workflow"
)

// UpdateDraftBody is the request body for updating a draft. Only the fields
// for the session's kind are read.
type UpdateDraftBody struct {
	Amount        string `json:"amount,omitempty" doc:"Decimal amount (send-money and transfer)"`
	Recipient     string `json:"recipient,omitempty" doc:"Send-money recipient"`
	Memo          string `json:"memo,omitempty" doc:"Send-money memo"`
	FromAccountID string `json:"fromAccountID,omitempty" doc:"Transfer source account"`
	ToAccountID   string `json:"toAccountID,omitempty" doc:"Transfer destination account"`
	BillerID      string `json:"billerID,omitempty" doc:"Pay-bill biller; amount and due date come from the biller"`
}

// UpdateDraftInput is the Huma input for updating a draft.
type UpdateDraftInput struct {
	ID   string `path:"id" doc:"Session UUID"`
	Body UpdateDraftBody
}

// UpdateDraftOutput is the Huma output for updating a draft.
type UpdateDraftOutput struct {
	Body Session
}

// draftUpdater is the interface for updating a session draft.
type draftUpdater interface {
	Snapshot(id uuid.UUID) (wf.View, error)
	UpdateDraft(id uuid.UUID, draft wf.Request) (wf.View, error)
}

// billerFinder resolves the selected biller when a pay-bill draft changes.
type billerFinder interface {
	Find(id string) (directory.Biller, bool)
}

// UpdateDraftHandler handles PATCH /v1/workflows/{id}/draft.
type UpdateDraftHandler struct {
	Manager draftUpdater
	Billers billerFinder
}

// NewUpdateDraftHandler creates a new UpdateDraftHandler.
func NewUpdateDraftHandler(manager draftUpdater, billers billerFinder) *UpdateDraftHandler {
	return &UpdateDraftHandler{Manager: manager, Billers: billers}
}

// Register registers the update draft endpoint with the Huma API.
func (h *UpdateDraftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-workflow-draft",
		Method:      http.MethodPatch,
		Path:        "/v1/workflows/{id}/draft",
		Summary:     "Update draft",
		Description: "Replaces the session's draft. Legal only in the input step.",
		Tags:        []string{"Workflows"},
	}, h.handle)
}

// parseDraft builds the typed draft for the session's kind. The amount is
// optional while editing; validation happens on advance, not here. A pay-bill
// draft resolves the biller so amount and due date come from the biller
// record; an unknown biller ID is kept and rejected by validation.
func parseDraft(kind wf.Kind, body UpdateDraftBody, billers billerFinder) (wf.Request, error) {
	amount := decimal.Zero
	if body.Amount != "" {
		parsed, err := decimal.NewFromString(body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		amount = parsed
	}

	switch kind {
	case wf.KindSendMoney:
		return wf.SendMoney{
			Recipient: body.Recipient,
			Value:     amount,
			Memo:      body.Memo,
		}, nil
	case wf.KindTransfer:
		return wf.Transfer{
			FromAccountID: body.FromAccountID,
			ToAccountID:   body.ToAccountID,
			Value:         amount,
		}, nil
	case wf.KindPayBill:
		draft := wf.PayBill{BillerID: body.BillerID}
		if biller, ok := billers.Find(body.BillerID); ok {
			draft.BillerName = biller.Name
			draft.Value = biller.Amount
			draft.DueDate = biller.DueDate
		}
		return draft, nil
	default:
		return nil, huma.NewError(http.StatusBadRequest, "unknown workflow kind")
	}
}

func (h *UpdateDraftHandler) handle(ctx context.Context, input *UpdateDraftInput) (*UpdateDraftOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid session id", err)
	}

	current, err := h.Manager.Snapshot(id)
	if err != nil {
		return nil, mapSessionError(err)
	}

	draft, err := parseDraft(current.Kind, input.Body, h.Billers)
	if err != nil {
		return nil, err
	}

	view, err := h.Manager.UpdateDraft(id, draft)
	if err != nil {
		return nil, mapSessionError(err)
	}

	return &UpdateDraftOutput{Body: convertSession(view)}, nil
}
