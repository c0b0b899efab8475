package dal

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"

	// This has to be here to let go mods work work
	_ "github.com/mattn/go-sqlite3"
)

var logger = diag.CreateLogger()

type sqlStorage struct {
	db *sql.DB
}

func (s *sqlStorage) Setup(ctx context.Context) error {
	logger.Info(ctx, "Setup SQL storage")
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS accounts(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code nvarchar(255) NOT NULL UNIQUE,
	name nvarchar(255) NOT NULL,
	created_at timestamp NOT NULL
);
CREATE TABLE IF NOT EXISTS journal_entries(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_date nvarchar(255) NOT NULL,
	description nvarchar(255) NOT NULL,
	created_at timestamp NOT NULL
);
CREATE TABLE IF NOT EXISTS journal_lines(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id INTEGER NOT NULL,
	dc_type nvarchar(10) NOT NULL,
	amount REAL NOT NULL,
	account_id INTEGER NOT NULL
);
`)
	return errors.Wrap(err, "Failed to setup storage")
}

func (s *sqlStorage) ListAccounts(ctx context.Context) ([]AccountRecord, error) {
	res, err := s.db.QueryContext(ctx, `
	SELECT id, code, name FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	accounts := []AccountRecord{}
	for res.Next() {
		var account AccountRecord
		if err := res.Scan(&account.ID, &account.Code, &account.Name); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, res.Err()
}

func (s *sqlStorage) GetAccountByID(ctx context.Context, id int64) (*AccountRecord, error) {
	return s.getAccount(ctx, `SELECT id, code, name FROM accounts WHERE id = $1`, id)
}

func (s *sqlStorage) GetAccountByCode(ctx context.Context, code string) (*AccountRecord, error) {
	return s.getAccount(ctx, `SELECT id, code, name FROM accounts WHERE code = $1`, code)
}

func (s *sqlStorage) getAccount(ctx context.Context, query string, arg interface{}) (*AccountRecord, error) {
	account := &AccountRecord{}
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&account.ID, &account.Code, &account.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *sqlStorage) InsertAccount(ctx context.Context, code string, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO accounts(code, name, created_at)
	VALUES($1, $2, $3)`, code, name, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *sqlStorage) InsertEntry(ctx context.Context, entry *EntryRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `
	INSERT INTO journal_entries(entry_date, description, created_at)
	VALUES($1, $2, $3)`, entry.EntryDate, entry.Description, time.Now())
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	for _, line := range entry.Lines {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO journal_lines(entry_id, dc_type, amount, account_id)
		VALUES($1, $2, $3, $4)`, id, line.DcType, line.Amount, line.AccountID); err != nil {
			tx.Rollback()
			return 0, err
		}
	}
	return id, tx.Commit()
}

func (s *sqlStorage) GetEntryByID(ctx context.Context, id int64) (*EntryRecord, error) {
	entry := &EntryRecord{}
	err := s.db.QueryRowContext(ctx, `
	SELECT id, entry_date, description FROM journal_entries WHERE id = $1`, id).
		Scan(&entry.ID, &entry.EntryDate, &entry.Description)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res, err := s.db.QueryContext(ctx, `
	SELECT l.dc_type, l.amount, l.account_id, a.code, a.name
	FROM journal_lines l
	JOIN accounts a ON a.id = l.account_id
	WHERE l.entry_id = $1
	ORDER BY l.id`, id)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	for res.Next() {
		var line LineRecord
		if err := res.Scan(
			&line.DcType,
			&line.Amount,
			&line.AccountID,
			&line.AccountCode,
			&line.AccountName,
		); err != nil {
			return nil, err
		}
		entry.Lines = append(entry.Lines, line)
	}
	return entry, res.Err()
}

func (s *sqlStorage) ListEntries(ctx context.Context) ([]EntrySummaryRecord, error) {
	res, err := s.db.QueryContext(ctx, `
	SELECT e.id, e.entry_date, e.description,
		COALESCE(SUM(CASE WHEN l.dc_type = 'DEBIT' THEN l.amount ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN l.dc_type = 'CREDIT' THEN l.amount ELSE 0 END), 0)
	FROM journal_entries e
	LEFT JOIN journal_lines l ON l.entry_id = e.id
	GROUP BY e.id
	ORDER BY e.entry_date DESC, e.id DESC`)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	entries := []EntrySummaryRecord{}
	for res.Next() {
		var entry EntrySummaryRecord
		if err := res.Scan(
			&entry.ID,
			&entry.EntryDate,
			&entry.Description,
			&entry.DebitTotal,
			&entry.CreditTotal,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, res.Err()
}

func (s *sqlStorage) UpdateEntryDescription(ctx context.Context, id int64, description string) error {
	res, err := s.db.ExecContext(ctx, `
	UPDATE journal_entries SET description = $1 WHERE id = $2`, description, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SQLStorageOpt is an option of SQL storage
type SQLStorageOpt func(s *sqlStorage)

// WithSQLDb will set an explicit db instance for a storage
func WithSQLDb(db *sql.DB) SQLStorageOpt {
	return func(s *sqlStorage) {
		s.db = db
	}
}

// NewSQLStorage returns an instance of a local storage
func NewSQLStorage(opts ...SQLStorageOpt) (Storage, error) {
	storage := &sqlStorage{}
	for _, opt := range opts {
		opt(storage)
	}
	return storage, nil
}
