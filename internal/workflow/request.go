package workflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which money-movement flow a session drives.
type Kind string

const (
	KindSendMoney Kind = "send_money"
	KindTransfer  Kind = "transfer"
	KindPayBill   Kind = "pay_bill"
)

// Request is the user-editable draft payload of a money-movement flow.
// Exactly one concrete type exists per Kind; the interface is sealed so the
// session can rely on the kind/draft pairing.
type Request interface {
	Kind() Kind
	// Amount is the decimal value the flow will move once submitted.
	Amount() decimal.Decimal
	// Counterparty names the other side of the movement for display.
	Counterparty() string
}

// SendMoney is the draft for sending funds to an external recipient.
type SendMoney struct {
	Recipient string
	Value     decimal.Decimal
	Memo      string
}

func (SendMoney) Kind() Kind                { return KindSendMoney }
func (r SendMoney) Amount() decimal.Decimal { return r.Value }
func (r SendMoney) Counterparty() string    { return r.Recipient }

// Transfer is the draft for moving funds between the holder's own accounts.
type Transfer struct {
	FromAccountID string
	ToAccountID   string
	Value         decimal.Decimal
}

func (Transfer) Kind() Kind                { return KindTransfer }
func (r Transfer) Amount() decimal.Decimal { return r.Value }
func (r Transfer) Counterparty() string    { return r.ToAccountID }

// PayBill is the draft for paying a selected biller. Value and DueDate come
// from the biller record, not from user input.
type PayBill struct {
	BillerID   string
	BillerName string
	Value      decimal.Decimal
	DueDate    time.Time
}

func (PayBill) Kind() Kind                { return KindPayBill }
func (r PayBill) Amount() decimal.Decimal { return r.Value }
func (r PayBill) Counterparty() string    { return r.BillerName }

// EmptyRequest returns the zero-value draft for a kind.
func EmptyRequest(kind Kind) (Request, error) {
	switch kind {
	case KindSendMoney:
		return SendMoney{}, nil
	case KindTransfer:
		return Transfer{}, nil
	case KindPayBill:
		return PayBill{}, nil
	default:
		return nil, ErrUnknownKind
	}
}
