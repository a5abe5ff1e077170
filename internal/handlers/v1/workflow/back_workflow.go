package workflow

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	wf "github.com/carson-networks/bank-dashboard/internal/workflow"
)

// BackWorkflowInput is the Huma input for stepping back.
type BackWorkflowInput struct {
	ID string `path:"id" doc:"Session UUID"`
}

// BackWorkflowOutput is the Huma output for stepping back.
type BackWorkflowOutput struct {
	Body Session
}

// workflowBacker is the interface for stepping a session back.
type workflowBacker interface {
	Back(id uuid.UUID) (wf.View, error)
}

// BackWorkflowHandler handles POST /v1/workflows/{id}/back.
type BackWorkflowHandler struct {
	Manager workflowBacker
}

// NewBackWorkflowHandler creates a new BackWorkflowHandler.
func NewBackWorkflowHandler(manager workflowBacker) *BackWorkflowHandler {
	return &BackWorkflowHandler{Manager: manager}
}

// Register registers the back endpoint with the Huma API.
func (h *BackWorkflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "back-workflow",
		Method:      http.MethodPost,
		Path:        "/v1/workflows/{id}/back",
		Summary:     "Step back",
		Description: "Returns from review to input with the draft preserved, or from a failed result back to review.",
		Tags:        []string{"Workflows"},
	}, h.handle)
}

func (h *BackWorkflowHandler) handle(ctx context.Context, input *BackWorkflowInput) (*BackWorkflowOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid session id", err)
	}

	view, err := h.Manager.Back(id)
	if err != nil {
		return nil, mapSessionError(err)
	}

	return &BackWorkflowOutput{Body: convertSession(view)}, nil
}
