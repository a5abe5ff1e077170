package workflow

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-dashboard/internal/logging"
	wf "github.com/carson-networks/bank-dashboard/internal/workflow"
)

// AdvanceWorkflowInput is the Huma input for advancing to review.
type AdvanceWorkflowInput struct {
	ID string `path:"id" doc:"Session UUID"`
}

// AdvanceWorkflowResponseBody is the response body for advancing to review.
// FieldErrors is non-empty when validation failed and the session stayed in
// the input step.
type AdvanceWorkflowResponseBody struct {
	Session     Session      `json:"session" doc:"Session state after the attempt"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty" doc:"Validation failures, empty on success"`
}

// AdvanceWorkflowOutput is the Huma output for advancing to review.
type AdvanceWorkflowOutput struct {
	Status int
	Body   AdvanceWorkflowResponseBody
}

// workflowAdvancer is the interface for advancing a session.
type workflowAdvancer interface {
	Advance(ctx context.Context, id uuid.UUID) (wf.View, wf.FieldErrors, error)
}

// AdvanceWorkflowHandler handles POST /v1/workflows/{id}/advance.
type AdvanceWorkflowHandler struct {
	Manager workflowAdvancer
}

// NewAdvanceWorkflowHandler creates a new AdvanceWorkflowHandler.
func NewAdvanceWorkflowHandler(manager workflowAdvancer) *AdvanceWorkflowHandler {
	return &AdvanceWorkflowHandler{Manager: manager}
}

// Register registers the advance endpoint with the Huma API.
func (h *AdvanceWorkflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "advance-workflow",
		Method:      http.MethodPost,
		Path:        "/v1/workflows/{id}/advance",
		Summary:     "Advance to review",
		Description: "Validates the draft and moves the session from input to review. On validation failure the session stays in input and the field errors are returned.",
		Tags:        []string{"Workflows"},
	}, h.handle)
}

func (h *AdvanceWorkflowHandler) handle(ctx context.Context, input *AdvanceWorkflowInput) (*AdvanceWorkflowOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid session id", err)
	}

	view, fieldErrs, err := h.Manager.Advance(ctx, id)
	if err != nil {
		return nil, mapSessionError(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("validationErrors", len(fieldErrs))
	}

	resp := &AdvanceWorkflowOutput{
		Status: http.StatusOK,
		Body:   AdvanceWorkflowResponseBody{Session: convertSession(view)},
	}
	if len(fieldErrs) > 0 {
		resp.Status = http.StatusUnprocessableEntity
		resp.Body.FieldErrors = convertFieldErrors(fieldErrs)
	}
	return resp, nil
}
