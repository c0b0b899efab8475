package composer

import (
	"fmt"
	"math"
	"strconv"
)

// Debit and credit sides of a journal line
const (
	Debit  = "DEBIT"
	Credit = "CREDIT"
)

// LineRow is one editable journal line. AmountInput holds the raw operator
// input, it is parsed on demand so a half-typed value never breaks editing.
// AccountID is a weak reference into the catalog, SyncAll keeps it valid
// whenever possible.
type LineRow struct {
	Side        string
	AmountInput string
	AccountID   int64
	Options     []AccountOption
}

// Amount returns the numeric value of the row input. Values that do not
// parse to a finite number count as 0
func (r LineRow) Amount() float64 {
	amount, err := strconv.ParseFloat(r.AmountInput, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// Balance is the live debit/credit preview of the rows
type Balance struct {
	DebitTotal  float64
	CreditTotal float64
	Difference  float64
}

// Rows is the ordered collection of lines of the entry in progress. All
// mutations go through its methods so the balance is recomputed before the
// next read, call sites never recompute themselves.
type Rows struct {
	catalog Catalog
	rows    []LineRow
	balance Balance
}

// NewRows returns an empty collection bound to an empty catalog
func NewRows() *Rows {
	return &Rows{}
}

// Seed resets the collection to the initial two lines, one debit and one
// credit, with options built from the last synchronized catalog
func (rs *Rows) Seed() {
	rs.rows = nil
	rs.appendRow(Debit)
	rs.appendRow(Credit)
	rs.recompute()
}

// Add appends one more line defaulting to the debit side
func (rs *Rows) Add() {
	rs.appendRow(Debit)
	rs.recompute()
}

func (rs *Rows) appendRow(side string) {
	row := LineRow{Side: side}
	syncRow(&row, rs.catalog)
	rs.rows = append(rs.rows, row)
}

// Remove deletes the line at the given index
func (rs *Rows) Remove(index int) error {
	if err := rs.checkIndex(index); err != nil {
		return err
	}
	rs.rows = append(rs.rows[:index], rs.rows[index+1:]...)
	rs.recompute()
	return nil
}

// SetSide assigns the debit or credit side of a line
func (rs *Rows) SetSide(index int, side string) error {
	if err := rs.checkIndex(index); err != nil {
		return err
	}
	if side != Debit && side != Credit {
		return fmt.Errorf("Unknown line side: %v", side)
	}
	rs.rows[index].Side = side
	rs.recompute()
	return nil
}

// SetAmount assigns the raw amount input of a line
func (rs *Rows) SetAmount(index int, input string) error {
	if err := rs.checkIndex(index); err != nil {
		return err
	}
	rs.rows[index].AmountInput = input
	rs.recompute()
	return nil
}

// SelectAccount assigns the account reference of a line
func (rs *Rows) SelectAccount(index int, accountID int64) error {
	if err := rs.checkIndex(index); err != nil {
		return err
	}
	rs.rows[index].AccountID = accountID
	rs.recompute()
	return nil
}

// SyncAll rebuilds every row's account options from the given catalog.
// A row selection that survived the refresh is kept, a stale one falls back
// to the first catalog entry. Against an empty catalog every row gets the
// single placeholder option with no valid id. Calling it again with the same
// catalog changes nothing.
func (rs *Rows) SyncAll(catalog Catalog) {
	rs.catalog = catalog
	for i := range rs.rows {
		syncRow(&rs.rows[i], catalog)
	}
	rs.recompute()
}

func syncRow(row *LineRow, catalog Catalog) {
	row.Options = catalog.options()
	if catalog.Empty() {
		row.AccountID = 0
		return
	}
	if catalog.Contains(row.AccountID) {
		return
	}
	row.AccountID = catalog.Accounts()[0].ID
}

// List returns a copy of the current lines in order
func (rs *Rows) List() []LineRow {
	list := make([]LineRow, len(rs.rows))
	copy(list, rs.rows)
	return list
}

// Len returns the number of lines
func (rs *Rows) Len() int {
	return len(rs.rows)
}

// Balance returns totals as of the last mutation
func (rs *Rows) Balance() Balance {
	return rs.balance
}

func (rs *Rows) recompute() {
	balance := Balance{}
	for _, row := range rs.rows {
		switch row.Side {
		case Debit:
			balance.DebitTotal += row.Amount()
		case Credit:
			balance.CreditTotal += row.Amount()
		}
	}
	balance.Difference = balance.DebitTotal - balance.CreditTotal
	rs.balance = balance
}

func (rs *Rows) checkIndex(index int) error {
	if index < 0 || index >= len(rs.rows) {
		return fmt.Errorf("No line at index %v", index)
	}
	return nil
}
