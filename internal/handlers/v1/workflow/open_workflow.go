package workflow

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	wf "github.com/carson-networks/bank-dashboard/internal/workflow"
)

// OpenWorkflowBody is the request body for opening a workflow.
type OpenWorkflowBody struct {
	Kind string `json:"kind" required:"true" enum:"send_money,transfer,pay_bill" doc:"Flow kind to open"`
}

// OpenWorkflowInput is the Huma input for opening a workflow.
type OpenWorkflowInput struct {
	Body OpenWorkflowBody
}

// OpenWorkflowOutput is the Huma output for opening a workflow.
type OpenWorkflowOutput struct {
	Status int
	Body   Session
}

// workflowOpener is the interface for opening a workflow session.
type workflowOpener interface {
	Open(kind wf.Kind) (wf.View, error)
}

// OpenWorkflowHandler handles POST /v1/workflows.
type OpenWorkflowHandler struct {
	Manager workflowOpener
}

// NewOpenWorkflowHandler creates a new OpenWorkflowHandler.
func NewOpenWorkflowHandler(manager workflowOpener) *OpenWorkflowHandler {
	return &OpenWorkflowHandler{Manager: manager}
}

// Register registers the open workflow endpoint with the Huma API.
func (h *OpenWorkflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "open-workflow",
		Method:        http.MethodPost,
		Path:          "/v1/workflows",
		Summary:       "Open workflow",
		Description:   "Opens a fresh money-movement flow in the input step with an empty draft.",
		Tags:          []string{"Workflows"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *OpenWorkflowHandler) handle(ctx context.Context, input *OpenWorkflowInput) (*OpenWorkflowOutput, error) {
	view, err := h.Manager.Open(wf.Kind(input.Body.Kind))
	if err != nil {
		return nil, mapSessionError(err)
	}

	return &OpenWorkflowOutput{
		Status: http.StatusCreated,
		Body:   convertSession(view),
	}, nil
}
