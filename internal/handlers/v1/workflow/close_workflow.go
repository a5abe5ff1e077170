package workflow

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// CloseWorkflowInput is the Huma input for closing a session.
type CloseWorkflowInput struct {
	ID string `path:"id" doc:"Session UUID"`
}

// CloseWorkflowOutput is the Huma output for closing a session.
type CloseWorkflowOutput struct {
	Status int
}

// workflowCloser is the interface for closing a session.
type workflowCloser interface {
	Close(id uuid.UUID) error
}

// CloseWorkflowHandler handles DELETE /v1/workflows/{id}.
type CloseWorkflowHandler struct {
	Manager workflowCloser
}

// NewCloseWorkflowHandler creates a new CloseWorkflowHandler.
func NewCloseWorkflowHandler(manager workflowCloser) *CloseWorkflowHandler {
	return &CloseWorkflowHandler{Manager: manager}
}

// Register registers the close endpoint with the Huma API.
func (h *CloseWorkflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "close-workflow",
		Method:        http.MethodDelete,
		Path:          "/v1/workflows/{id}",
		Summary:       "Close workflow",
		Description:   "Discards the session from any step. An in-flight submission completes and is discarded.",
		Tags:          []string{"Workflows"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *CloseWorkflowHandler) handle(ctx context.Context, input *CloseWorkflowInput) (*CloseWorkflowOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid session id", err)
	}

	if err := h.Manager.Close(id); err != nil {
		return nil, mapSessionError(err)
	}

	return &CloseWorkflowOutput{Status: http.StatusNoContent}, nil
}
