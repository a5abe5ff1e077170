package account

// Account is the API response model for an account snapshot.
type Account struct {
	ID           string `json:"id" doc:"Account identifier"`
	DisplayName  string `json:"displayName" doc:"Human-readable account name"`
	MaskedNumber string `json:"maskedNumber" doc:"Masked account number, e.g. ****4521"`
	Balance      string `json:"balance" doc:"Decimal balance"`
	Kind         string `json:"kind" doc:"Account kind: checking, savings, or retirement"`
}

// DepositDetails is the API response model for receive-money instructions.
type DepositDetails struct {
	BankName      string `json:"bankName" doc:"Receiving bank name"`
	RoutingNumber string `json:"routingNumber" doc:"ABA routing number"`
	AccountNumber string `json:"accountNumber" doc:"Masked account number"`
	AccountType   string `json:"accountType" doc:"Account type label"`
}
