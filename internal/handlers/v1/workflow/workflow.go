// Package workflow exposes the money-movement state machine over HTTP. Each
// operation maps onto one named session transition; illegal transitions are
// reported as conflicts rather than performed.
package workflow

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	wf "github.com/carson-networks/bank-dashboard/internal/workflow"
)

const dateLayout = "2006-01-02"

// Session is the API response model for a workflow session.
type Session struct {
	ID         string  `json:"id" doc:"Session UUID"`
	Kind       string  `json:"kind" doc:"Flow kind: send_money, transfer, or pay_bill"`
	Step       string  `json:"step" doc:"Current step: input, review, submitting, or result"`
	Processing bool    `json:"processing" doc:"Whether a submission is in flight"`
	Draft      Draft   `json:"draft" doc:"Current draft payload"`
	Result     *Result `json:"result,omitempty" doc:"Submission outcome, present in the result step"`
}

// Draft is the API model of a money-movement draft. Only the fields for the
// session's kind are populated.
type Draft struct {
	Amount        string `json:"amount,omitempty" doc:"Decimal amount"`
	Recipient     string `json:"recipient,omitempty" doc:"Send-money recipient"`
	Memo          string `json:"memo,omitempty" doc:"Send-money memo"`
	FromAccountID string `json:"fromAccountID,omitempty" doc:"Transfer source account"`
	ToAccountID   string `json:"toAccountID,omitempty" doc:"Transfer destination account"`
	BillerID      string `json:"billerID,omitempty" doc:"Pay-bill biller"`
	BillerName    string `json:"billerName,omitempty" doc:"Pay-bill biller display name"`
	DueDate       string `json:"dueDate,omitempty" doc:"Pay-bill due date, YYYY-MM-DD"`
}

// Result is the API model of a submission outcome.
type Result struct {
	Status       string `json:"status" doc:"success or failure"`
	Message      string `json:"message" doc:"Display message"`
	Amount       string `json:"amount" doc:"Submitted amount"`
	Counterparty string `json:"counterparty" doc:"Other side of the movement"`
	CompletedAt  string `json:"completedAt" doc:"RFC3339 completion time"`
}

// FieldError is the API model of one validation failure.
type FieldError struct {
	Field string `json:"field" doc:"Draft field the error applies to"`
	Code  string `json:"code" doc:"Machine-readable error code"`
}

func convertSession(view wf.View) Session {
	session := Session{
		ID:         view.ID.String(),
		Kind:       string(view.Kind),
		Step:       string(view.Step),
		Processing: view.Processing,
		Draft:      convertDraft(view.Draft),
	}
	if view.Result != nil {
		result := convertResult(*view.Result)
		session.Result = &result
	}
	return session
}

func convertDraft(draft wf.Request) Draft {
	switch d := draft.(type) {
	case wf.SendMoney:
		return Draft{
			Amount:    amountString(d.Value),
			Recipient: d.Recipient,
			Memo:      d.Memo,
		}
	case wf.Transfer:
		return Draft{
			Amount:        amountString(d.Value),
			FromAccountID: d.FromAccountID,
			ToAccountID:   d.ToAccountID,
		}
	case wf.PayBill:
		converted := Draft{
			Amount:     amountString(d.Value),
			BillerID:   d.BillerID,
			BillerName: d.BillerName,
		}
		if !d.DueDate.IsZero() {
			converted.DueDate = d.DueDate.Format(dateLayout)
		}
		return converted
	default:
		return Draft{}
	}
}

func convertResult(outcome wf.Outcome) Result {
	return Result{
		Status:       string(outcome.Status),
		Message:      outcome.Message,
		Amount:       outcome.Amount.StringFixed(2),
		Counterparty: outcome.Counterparty,
		CompletedAt:  outcome.CompletedAt.Format(time.RFC3339),
	}
}

func convertFieldErrors(fieldErrs wf.FieldErrors) []FieldError {
	converted := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		converted[i] = FieldError{Field: fe.Field, Code: fe.Code}
	}
	return converted
}

// amountString renders a draft amount, leaving untouched zero values blank.
func amountString(value decimal.Decimal) string {
	if value.IsZero() {
		return ""
	}
	return value.StringFixed(2)
}

// mapSessionError translates workflow errors onto HTTP statuses.
func mapSessionError(err error) error {
	switch {
	case errors.Is(err, wf.ErrSessionNotFound):
		return huma.NewError(http.StatusNotFound, "session not found", err)
	case errors.Is(err, wf.ErrSubmissionInFlight):
		return huma.NewError(http.StatusConflict, "submission already in flight", err)
	case errors.Is(err, wf.ErrInvalidState):
		return huma.NewError(http.StatusConflict, "operation illegal in current step", err)
	case errors.Is(err, wf.ErrKindMismatch), errors.Is(err, wf.ErrUnknownKind):
		return huma.NewError(http.StatusBadRequest, "invalid request for this flow", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "workflow operation failed", err)
	}
}
