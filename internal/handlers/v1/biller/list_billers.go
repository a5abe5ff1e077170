package biller

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-dashboard/internal/directory"
)

const dateLayout = "2006-01-02"

// Biller is the API response model for a payable biller.
type Biller struct {
	ID      string `json:"id" doc:"Biller identifier"`
	Name    string `json:"name" doc:"Biller display name"`
	Icon    string `json:"icon" doc:"Display icon"`
	Amount  string `json:"amount" doc:"Current amount due"`
	DueDate string `json:"dueDate" doc:"Due date, YYYY-MM-DD"`
}

// ListBillersInput is the Huma input for listing billers.
type ListBillersInput struct{}

// ListBillersResponseBody is the response body for listing billers.
type ListBillersResponseBody struct {
	Billers []Biller `json:"billers" doc:"Payable billers in display order"`
}

// ListBillersOutput is the Huma output for listing billers.
type ListBillersOutput struct {
	Body ListBillersResponseBody
}

// billerLister is the interface for listing billers.
type billerLister interface {
	List() []directory.Biller
}

// ListBillersHandler handles GET /v1/billers.
type ListBillersHandler struct {
	Billers billerLister
}

// NewListBillersHandler creates a new ListBillersHandler.
func NewListBillersHandler(billers billerLister) *ListBillersHandler {
	return &ListBillersHandler{Billers: billers}
}

// Register registers the list billers endpoint with the Huma API.
func (h *ListBillersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-billers",
		Method:      http.MethodGet,
		Path:        "/v1/billers",
		Summary:     "List billers",
		Description: "Returns the billers available to the pay-bill flow.",
		Tags:        []string{"Billers"},
	}, h.handle)
}

func (h *ListBillersHandler) handle(ctx context.Context, input *ListBillersInput) (*ListBillersOutput, error) {
	billers := h.Billers.List()

	resp := ListBillersResponseBody{Billers: make([]Biller, len(billers))}
	for i, b := range billers {
		resp.Billers[i] = Biller{
			ID:      b.ID,
			Name:    b.Name,
			Icon:    b.Icon,
			Amount:  b.Amount.StringFixed(2),
			DueDate: b.DueDate.Format(dateLayout),
		}
	}

	return &ListBillersOutput{Body: resp}, nil
}
