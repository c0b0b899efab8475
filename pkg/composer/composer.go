package composer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

// State of the submission flow
type State string

// Submission states. The composer always returns to StateIdle after a
// submission resolves, there is no automatic retry.
const (
	StateIdle       State = "idle"
	StateCollecting State = "collecting"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Display renders composer outcomes to the operator
type Display interface {
	ShowMessage(message string)
	ShowEntry(entry *ledger.EntryDetailDTO)
	ShowFailure(statusCode int, payload interface{})
}

// Composer drives the entry composition flow. It owns the account catalog,
// the line collection and the header fields of the entry in progress.
// All methods are meant to be called from a single goroutine.
type Composer struct {
	api     ledger.API
	display Display

	catalog Catalog
	rows    *Rows

	entryDate   string
	description string

	state State

	// refreshSeq numbers issued catalog refreshes, appliedSeq is the newest
	// one whose response has been applied. A response older than appliedSeq
	// is discarded so overlapping refreshes can not roll the catalog back.
	refreshSeq uint64
	appliedSeq uint64
}

// Opt is an option to initialize the composer with
type Opt func(*Composer)

// WithAPI will init the composer with a ledger api
func WithAPI(api ledger.API) Opt {
	return func(c *Composer) {
		c.api = api
	}
}

// WithDisplay will init the composer with a display
func WithDisplay(display Display) Opt {
	return func(c *Composer) {
		c.display = display
	}
}

// New creates a composer instance
func New(opts ...Opt) *Composer {
	c := &Composer{
		rows:  NewRows(),
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init loads the catalog and seeds the initial two lines. The composer stays
// usable when the initial load fails, the operator can retry with an explicit
// refresh.
func (c *Composer) Init(ctx context.Context) {
	if err := c.RefreshCatalog(ctx); err != nil {
		logger.WithError(err).Error(ctx, "Initial catalog load failed")
		c.display.ShowMessage("Initial load failed. Check that the ledger service is reachable")
	}
	c.rows.Seed()
}

// RefreshCatalog replaces the account catalog with a fresh copy from the
// ledger service and synchronizes every line row against it, exactly once per
// successful refresh. On failure the current catalog stays as is. A response
// that resolves after a newer refresh has already been applied is discarded
func (c *Composer) RefreshCatalog(ctx context.Context) error {
	c.refreshSeq++
	seq := c.refreshSeq
	logger.Debug(ctx, "Refreshing account catalog (seq %v)", seq)
	accounts, err := c.api.ListAccounts(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to refresh account catalog")
	}
	if seq <= c.appliedSeq {
		logger.Debug(ctx, "Discarding stale catalog response (seq %v, applied %v)", seq, c.appliedSeq)
		return nil
	}
	c.appliedSeq = seq
	c.catalog = NewCatalog(accounts)
	c.rows.SyncAll(c.catalog)
	return nil
}

// CreateAccount submits a new account and refreshes the catalog so the new
// account becomes selectable right away
func (c *Composer) CreateAccount(ctx context.Context, code string, name string) error {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" || name == "" {
		c.display.ShowMessage("Account code and name must not be blank")
		return nil
	}
	if err := c.api.CreateAccount(ctx, ledger.CreateAccountDTO{Code: code, Name: name}); err != nil {
		c.surfaceFailure(ctx, err)
		return err
	}
	c.display.ShowMessage(fmt.Sprintf("Account created: %v", code))
	return c.RefreshCatalog(ctx)
}

// SetEntryDate assigns the entry date header field
func (c *Composer) SetEntryDate(value string) {
	c.entryDate = value
}

// SetDescription assigns the description header field
func (c *Composer) SetDescription(value string) {
	c.description = value
}

// Rows exposes the line collection of the entry in progress
func (c *Composer) Rows() *Rows {
	return c.rows
}

// Catalog returns the current account catalog
func (c *Composer) Catalog() Catalog {
	return c.catalog
}

// State returns the current submission state
func (c *Composer) State() State {
	return c.state
}

// Submit validates the entry in progress and hands it to the ledger service.
// Header fields and lines are snapshot when submission starts, later edits do
// not affect an in flight submission. A failed validation shows a guidance
// message and never reaches the network. On success the created entry is
// fetched back by id and displayed
func (c *Composer) Submit(ctx context.Context) error {
	c.state = StateCollecting
	entryDate := strings.TrimSpace(c.entryDate)
	description := strings.TrimSpace(c.description)
	lines := c.rows.List()

	c.state = StateValidating
	if message := validateDraft(entryDate, description, lines); message != "" {
		c.display.ShowMessage(message)
		c.state = StateIdle
		return nil
	}

	draft := ledger.CreateEntryDTO{
		EntryDate:   entryDate,
		Description: description,
		Lines:       make([]ledger.LineDTO, len(lines)),
	}
	for i, row := range lines {
		draft.Lines[i] = ledger.LineDTO{
			DcType:    row.Side,
			Amount:    row.Amount(),
			AccountID: row.AccountID,
		}
	}

	c.state = StateSubmitting
	id, err := c.api.CreateEntry(ctx, draft)
	if err != nil {
		c.state = StateFailed
		c.surfaceFailure(ctx, err)
		c.state = StateIdle
		return err
	}
	c.state = StateSucceeded
	logger.Info(ctx, "Journal entry created: %v", id)
	c.display.ShowMessage(fmt.Sprintf("Journal entry created: %v", id))
	err = c.ShowEntry(ctx, id)
	c.state = StateIdle
	return err
}

// ShowEntry fetches an entry by id and renders it
func (c *Composer) ShowEntry(ctx context.Context, id int64) error {
	entry, err := c.api.GetEntry(ctx, id)
	if err != nil {
		c.surfaceFailure(ctx, err)
		return err
	}
	c.display.ShowEntry(entry)
	return nil
}

func validateDraft(entryDate string, description string, lines []LineRow) string {
	if entryDate == "" || description == "" {
		return "Entry date and description must not be blank"
	}
	if len(lines) < 2 {
		return "At least two lines are required, one debit and one credit"
	}
	for _, row := range lines {
		if row.Amount() <= 0 {
			return "Amount must be a number greater than 0"
		}
	}
	for _, row := range lines {
		if row.AccountID <= 0 {
			return "Select an account for every line, the account catalog may be empty"
		}
	}
	return ""
}

func (c *Composer) surfaceFailure(ctx context.Context, err error) {
	if svcErr, ok := errors.Cause(err).(*ledger.ServiceError); ok {
		c.display.ShowFailure(svcErr.StatusCode, svcErr.Payload)
		return
	}
	logger.WithError(err).Error(ctx, "Ledger request failed")
	c.display.ShowMessage(fmt.Sprintf("Request failed: %v", err))
}
