package workflow

import "github.com/carson-networks/bank-dashboard/internal/directory"

// Field error codes surfaced to the caller for inline feedback.
const (
	CodeRequired      = "required"
	CodeNotPositive   = "not_positive"
	CodeSameAccount   = "same_account"
	CodeUnknownBiller = "unknown_biller"
)

// FieldError is one validation failure keyed to a draft field.
type FieldError struct {
	Field string
	Code  string
}

// FieldErrors is the full set of validation failures for a draft. An empty
// set means the draft is valid.
type FieldErrors []FieldError

// Has reports whether the set contains an error for the named field.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// BillerFinder resolves a biller ID; the pay-bill validator uses it to check
// that the selected biller exists.
type BillerFinder interface {
	Find(id string) (directory.Biller, bool)
}

// Validator checks a draft for a specific kind. Implementations are pure and
// evaluate every applicable rule on every call, so a draft with two problems
// reports both.
type Validator func(req Request) FieldErrors

// NewValidator returns the validator for a kind. Pay-bill validation needs
// the biller directory; the other kinds ignore it.
func NewValidator(kind Kind, billers BillerFinder) (Validator, error) {
	switch kind {
	case KindSendMoney:
		return validateSendMoney, nil
	case KindTransfer:
		return validateTransfer, nil
	case KindPayBill:
		return func(req Request) FieldErrors {
			return validatePayBill(req, billers)
		}, nil
	default:
		return nil, ErrUnknownKind
	}
}

func validateSendMoney(req Request) FieldErrors {
	draft, ok := req.(SendMoney)
	if !ok {
		return FieldErrors{{Field: "kind", Code: CodeRequired}}
	}

	var errs FieldErrors
	if draft.Recipient == "" {
		errs = append(errs, FieldError{Field: "recipient", Code: CodeRequired})
	}
	if draft.Value.Sign() <= 0 {
		errs = append(errs, FieldError{Field: "amount", Code: CodeNotPositive})
	}
	return errs
}

func validateTransfer(req Request) FieldErrors {
	draft, ok := req.(Transfer)
	if !ok {
		return FieldErrors{{Field: "kind", Code: CodeRequired}}
	}

	var errs FieldErrors
	if draft.Value.Sign() <= 0 {
		errs = append(errs, FieldError{Field: "amount", Code: CodeNotPositive})
	}
	if draft.FromAccountID == draft.ToAccountID {
		errs = append(errs, FieldError{Field: "toAccountID", Code: CodeSameAccount})
	}
	return errs
}

func validatePayBill(req Request, billers BillerFinder) FieldErrors {
	draft, ok := req.(PayBill)
	if !ok {
		return FieldErrors{{Field: "kind", Code: CodeRequired}}
	}

	var errs FieldErrors
	if draft.BillerID == "" {
		errs = append(errs, FieldError{Field: "billerID", Code: CodeRequired})
	} else if _, found := billers.Find(draft.BillerID); !found {
		errs = append(errs, FieldError{Field: "billerID", Code: CodeUnknownBiller})
	}
	return errs
}
