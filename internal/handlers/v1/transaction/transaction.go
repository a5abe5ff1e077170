package transaction

// Transaction is the API response model for a ledger entry.
type Transaction struct {
	ID             int64  `json:"id" doc:"Transaction identifier"`
	Date           string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Description    string `json:"description" doc:"Display description"`
	Amount         string `json:"amount" doc:"Signed decimal amount; negative is a debit"`
	Status         string `json:"status" doc:"Settlement status"`
	InitiatedBy    string `json:"initiatedBy" doc:"Channel that initiated the entry"`
	RunningBalance string `json:"runningBalance" doc:"Account balance immediately after this entry"`
	Category       string `json:"category" doc:"Spending category"`
	Icon           string `json:"icon" doc:"Display icon"`
}

// Summary is the API response model for the aggregate totals over a filtered set.
type Summary struct {
	TotalIncome   string `json:"totalIncome" doc:"Sum of non-negative amounts"`
	TotalExpenses string `json:"totalExpenses" doc:"Sum of debit magnitudes"`
	NetBalance    string `json:"netBalance" doc:"Total income minus total expenses"`
}
