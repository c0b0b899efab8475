package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/request"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mocks/api.go -package=mocks github.com/kjm-dev/ledger.entry-composer/pkg/ledger API

// API is an interface to communicate with the ledger service
type API interface {
	ListAccounts(ctx context.Context) ([]AccountDTO, error)
	CreateAccount(ctx context.Context, account CreateAccountDTO) error
	CreateEntry(ctx context.Context, entry CreateEntryDTO) (int64, error)
	GetEntry(ctx context.Context, id int64) (*EntryDetailDTO, error)
	ListEntries(ctx context.Context) ([]EntrySummaryDTO, error)
	UpdateEntryDescription(ctx context.Context, id int64, description string) (*EntryDetailDTO, error)
}

type api struct {
	baseURL string
}

func (a *api) ListAccounts(ctx context.Context) ([]AccountDTO, error) {
	res := request.Do(ctx, request.Get(a.baseURL+"/api/accounts"))
	var accounts []AccountDTO
	if err := ResolveJSON(res, &accounts); err != nil {
		return nil, errors.Wrap(err, "Failed to fetch accounts")
	}
	return accounts, nil
}

func (a *api) CreateAccount(ctx context.Context, account CreateAccountDTO) error {
	payload, err := json.Marshal(account)
	if err != nil {
		return err
	}
	res := request.Do(ctx, request.Post(
		a.baseURL+"/api/accounts",
		"application/json",
		bytes.NewReader(payload)))
	if _, err := Resolve(res); err != nil {
		return errors.Wrap(err, "Failed to create account")
	}
	return nil
}

func (a *api) CreateEntry(ctx context.Context, entry CreateEntryDTO) (int64, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return 0, err
	}
	res := request.Do(ctx, request.Post(
		a.baseURL+"/api/journal-entries",
		"application/json",
		bytes.NewReader(payload)))
	resPayload, err := Resolve(res)
	if err != nil {
		return 0, err
	}
	return createdEntryID(resPayload)
}

func (a *api) GetEntry(ctx context.Context, id int64) (*EntryDetailDTO, error) {
	res := request.Do(ctx, request.Get(fmt.Sprintf("%v/api/journal-entries/%v", a.baseURL, id)))
	var entry EntryDetailDTO
	if err := ResolveJSON(res, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *api) ListEntries(ctx context.Context) ([]EntrySummaryDTO, error) {
	res := request.Do(ctx, request.Get(a.baseURL+"/api/journal-entries"))
	var entries []EntrySummaryDTO
	if err := ResolveJSON(res, &entries); err != nil {
		return nil, errors.Wrap(err, "Failed to fetch entries")
	}
	return entries, nil
}

func (a *api) UpdateEntryDescription(ctx context.Context, id int64, description string) (*EntryDetailDTO, error) {
	payload, err := json.Marshal(map[string]string{"description": description})
	if err != nil {
		return nil, err
	}
	res := request.Do(ctx, request.Patch(
		fmt.Sprintf("%v/api/journal-entries/%v", a.baseURL, id),
		"application/json",
		bytes.NewReader(payload)))
	var entry EntryDetailDTO
	if err := ResolveJSON(res, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Factory is a function that creates ledger API instance for a given base url
type Factory func(baseURL string) API

// NewAPI returns an instance of a new API for a given service base url
func NewAPI(baseURL string) API {
	return &api{baseURL: baseURL}
}
