package dal

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// AccountRecord is a stored account
type AccountRecord struct {
	ID   int64
	Code string
	Name string
}

// LineRecord is a stored journal line joined with its account
type LineRecord struct {
	DcType      string
	Amount      float64
	AccountID   int64
	AccountCode string
	AccountName string
}

// EntryRecord is a stored journal entry with its lines
type EntryRecord struct {
	ID          int64
	EntryDate   string
	Description string
	Lines       []LineRecord
}

// EntrySummaryRecord is a journal entry without its lines, carrying
// per side totals instead
type EntrySummaryRecord struct {
	ID          int64
	EntryDate   string
	Description string
	DebitTotal  float64
	CreditTotal float64
}

// Storage is a persistance layer
type Storage interface {
	Setup(ctx context.Context) error
	ListAccounts(ctx context.Context) ([]AccountRecord, error)
	GetAccountByID(ctx context.Context, id int64) (*AccountRecord, error)
	GetAccountByCode(ctx context.Context, code string) (*AccountRecord, error)
	InsertAccount(ctx context.Context, code string, name string) (int64, error)
	InsertEntry(ctx context.Context, entry *EntryRecord) (int64, error)
	GetEntryByID(ctx context.Context, id int64) (*EntryRecord, error)
	ListEntries(ctx context.Context) ([]EntrySummaryRecord, error)
	UpdateEntryDescription(ctx context.Context, id int64, description string) error
}
