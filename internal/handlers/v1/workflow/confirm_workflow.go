package workflow

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-dashboard/internal/logging"
	wf "github.com/carson-networks/bank-dashboard/internal/workflow"
)

// ConfirmWorkflowInput is the Huma input for confirming a submission.
type ConfirmWorkflowInput struct {
	ID string `path:"id" doc:"Session UUID"`
}

// ConfirmWorkflowOutput is the Huma output for confirming a submission.
type ConfirmWorkflowOutput struct {
	Body Result
}

// workflowConfirmer is the interface for confirming a session.
type workflowConfirmer interface {
	Confirm(ctx context.Context, id uuid.UUID) (wf.Outcome, error)
}

// ConfirmWorkflowHandler handles POST /v1/workflows/{id}/confirm.
type ConfirmWorkflowHandler struct {
	Manager workflowConfirmer
}

// NewConfirmWorkflowHandler creates a new ConfirmWorkflowHandler.
func NewConfirmWorkflowHandler(manager workflowConfirmer) *ConfirmWorkflowHandler {
	return &ConfirmWorkflowHandler{Manager: manager}
}

// Register registers the confirm endpoint with the Huma API.
func (h *ConfirmWorkflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "confirm-workflow",
		Method:      http.MethodPost,
		Path:        "/v1/workflows/{id}/confirm",
		Summary:     "Confirm and submit",
		Description: "Submits the reviewed draft and returns the outcome. A confirm while a submission is in flight is rejected without submitting again.",
		Tags:        []string{"Workflows"},
	}, h.handle)
}

func (h *ConfirmWorkflowHandler) handle(ctx context.Context, input *ConfirmWorkflowInput) (*ConfirmWorkflowOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid session id", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("submitMs")
	}
	outcome, err := h.Manager.Confirm(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapSessionError(err)
	}

	if logData != nil {
		logData.AddData("outcome", string(outcome.Status))
	}

	return &ConfirmWorkflowOutput{Body: convertResult(outcome)}, nil
}
