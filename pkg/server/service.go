package server

import (
	"context"
	"fmt"

	"github.com/kjm-dev/ledger.entry-composer/pkg/dal"
	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/router"
)

var logger = diag.CreateLogger()

// Service implements ledger operations on top of the storage. Accounting
// rules live here, handlers only bind requests and render responses.
type Service interface {
	ListAccounts(ctx context.Context) ([]ledger.AccountDTO, error)
	CreateAccount(ctx context.Context, req ledger.CreateAccountDTO) (*ledger.AccountDTO, error)
	CreateEntry(ctx context.Context, req ledger.CreateEntryDTO) (int64, error)
	GetEntry(ctx context.Context, id int64) (*ledger.EntryDetailDTO, error)
	ListEntries(ctx context.Context) ([]ledger.EntrySummaryDTO, error)
	UpdateEntryDescription(ctx context.Context, id int64, description string) (*ledger.EntryDetailDTO, error)
}

type service struct {
	storage dal.Storage
}

func (svc *service) ListAccounts(ctx context.Context) ([]ledger.AccountDTO, error) {
	records, err := svc.storage.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]ledger.AccountDTO, len(records))
	for i, record := range records {
		accounts[i] = ledger.AccountDTO{ID: record.ID, Code: record.Code, Name: record.Name}
	}
	return accounts, nil
}

func (svc *service) CreateAccount(ctx context.Context, req ledger.CreateAccountDTO) (*ledger.AccountDTO, error) {
	if _, err := svc.storage.GetAccountByCode(ctx, req.Code); err != dal.ErrNotFound {
		if err != nil {
			return nil, err
		}
		return nil, router.BadRequestError("Account code already exists: " + req.Code)
	}
	id, err := svc.storage.InsertAccount(ctx, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Created account %v (%v)", req.Code, id)
	return &ledger.AccountDTO{ID: id, Code: req.Code, Name: req.Name}, nil
}

func (svc *service) CreateEntry(ctx context.Context, req ledger.CreateEntryDTO) (int64, error) {
	var debitSum, creditSum float64
	for _, line := range req.Lines {
		switch line.DcType {
		case ledger.Debit:
			debitSum += line.Amount
		case ledger.Credit:
			creditSum += line.Amount
		default:
			return 0, router.BadRequestError("dcType must be DEBIT or CREDIT")
		}
	}
	if debitSum != creditSum {
		return 0, router.BadRequestError("Debit sum must equal credit sum")
	}

	record := &dal.EntryRecord{
		EntryDate:   req.EntryDate,
		Description: req.Description,
		Lines:       make([]dal.LineRecord, len(req.Lines)),
	}
	for i, line := range req.Lines {
		if _, err := svc.storage.GetAccountByID(ctx, line.AccountID); err != nil {
			if err == dal.ErrNotFound {
				return 0, router.ResourceNotFoundError(fmt.Sprintf("Account not found: %v", line.AccountID))
			}
			return 0, err
		}
		record.Lines[i] = dal.LineRecord{
			DcType:    line.DcType,
			Amount:    line.Amount,
			AccountID: line.AccountID,
		}
	}

	id, err := svc.storage.InsertEntry(ctx, record)
	if err != nil {
		return 0, err
	}
	logger.Info(ctx, "Created journal entry %v", id)
	return id, nil
}

func (svc *service) GetEntry(ctx context.Context, id int64) (*ledger.EntryDetailDTO, error) {
	record, err := svc.storage.GetEntryByID(ctx, id)
	if err != nil {
		if err == dal.ErrNotFound {
			return nil, router.ResourceNotFoundError(fmt.Sprintf("JournalEntry not found: %v", id))
		}
		return nil, err
	}
	return toEntryDetail(record), nil
}

func (svc *service) ListEntries(ctx context.Context) ([]ledger.EntrySummaryDTO, error) {
	records, err := svc.storage.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ledger.EntrySummaryDTO, len(records))
	for i, record := range records {
		entries[i] = ledger.EntrySummaryDTO{
			ID:          record.ID,
			EntryDate:   record.EntryDate,
			Description: record.Description,
			DebitTotal:  record.DebitTotal,
			CreditTotal: record.CreditTotal,
		}
	}
	return entries, nil
}

func (svc *service) UpdateEntryDescription(ctx context.Context, id int64, description string) (*ledger.EntryDetailDTO, error) {
	if err := svc.storage.UpdateEntryDescription(ctx, id, description); err != nil {
		if err == dal.ErrNotFound {
			return nil, router.ResourceNotFoundError(fmt.Sprintf("JournalEntry not found: %v", id))
		}
		return nil, err
	}
	return svc.GetEntry(ctx, id)
}

func toEntryDetail(record *dal.EntryRecord) *ledger.EntryDetailDTO {
	entry := &ledger.EntryDetailDTO{
		ID:          record.ID,
		EntryDate:   record.EntryDate,
		Description: record.Description,
		Lines:       make([]ledger.EntryLineDTO, len(record.Lines)),
	}
	for i, line := range record.Lines {
		entry.Lines[i] = ledger.EntryLineDTO{
			DcType:      line.DcType,
			Amount:      line.Amount,
			AccountID:   line.AccountID,
			AccountCode: line.AccountCode,
			AccountName: line.AccountName,
		}
	}
	return entry
}

// ServiceOpt is an option for ledger service
type ServiceOpt func(*service)

// WithStorage will init the service with storage
func WithStorage(storage dal.Storage) ServiceOpt {
	return func(svc *service) {
		svc.storage = storage
	}
}

// NewService creates an instance of a ledger service
func NewService(opts ...ServiceOpt) Service {
	svc := &service{}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}
