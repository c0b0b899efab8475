package ledger

const (
	// Debit is a dcType value of a debit line
	Debit = "DEBIT"

	// Credit is a dcType value of a credit line
	Credit = "CREDIT"
)

// AccountDTO represents a ledger account
type AccountDTO struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateAccountDTO is a payload to create a new account
type CreateAccountDTO struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// LineDTO is a single journal line of a create entry payload
type LineDTO struct {
	DcType    string  `json:"dcType" validate:"required"`
	Amount    float64 `json:"amount"`
	AccountID int64   `json:"accountId"`
}

// CreateEntryDTO is a payload to create a journal entry
type CreateEntryDTO struct {
	EntryDate   string    `json:"entryDate" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Lines       []LineDTO `json:"lines" validate:"required,min=1"`
}

// EntryLineDTO is a journal line of an entry detail payload.
// Account code/name ride along for display purposes
type EntryLineDTO struct {
	DcType      string  `json:"dcType"`
	Amount      float64 `json:"amount"`
	AccountID   int64   `json:"accountId"`
	AccountCode string  `json:"accountCode"`
	AccountName string  `json:"accountName"`
}

// EntryDetailDTO is a full journal entry payload
type EntryDetailDTO struct {
	ID          int64          `json:"id"`
	EntryDate   string         `json:"entryDate"`
	Description string         `json:"description"`
	Lines       []EntryLineDTO `json:"lines"`
}

// EntrySummaryDTO is a journal entry summary with per-side totals
type EntrySummaryDTO struct {
	ID          int64   `json:"id"`
	EntryDate   string  `json:"entryDate"`
	Description string  `json:"description"`
	DebitTotal  float64 `json:"debitTotal"`
	CreditTotal float64 `json:"creditTotal"`
}
