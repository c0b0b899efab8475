package composer

import (
	"fmt"

	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
)

// noAccountsLabel is rendered as the only selectable option when the
// catalog has no accounts. Its id is 0 which never passes submit validation.
const noAccountsLabel = "no accounts available"

// Catalog is the current set of accounts selectable by entry lines.
// Refresh replaces it wholesale, accounts are never merged in place.
// Order matches the service response order.
type Catalog struct {
	accounts []ledger.AccountDTO
}

// NewCatalog returns a catalog holding the given accounts
func NewCatalog(accounts []ledger.AccountDTO) Catalog {
	return Catalog{accounts: accounts}
}

// Accounts returns catalog accounts in service order
func (c Catalog) Accounts() []ledger.AccountDTO {
	return c.accounts
}

// Empty tells if the catalog has no accounts
func (c Catalog) Empty() bool {
	return len(c.accounts) == 0
}

// Contains tells if an account with the given id is present
func (c Catalog) Contains(id int64) bool {
	for _, account := range c.accounts {
		if account.ID == id {
			return true
		}
	}
	return false
}

// AccountOption is a single selectable account of a line row
type AccountOption struct {
	ID    int64
	Label string
}

func (c Catalog) options() []AccountOption {
	if c.Empty() {
		return []AccountOption{{ID: 0, Label: noAccountsLabel}}
	}
	options := make([]AccountOption, len(c.accounts))
	for i, account := range c.accounts {
		options[i] = AccountOption{
			ID:    account.ID,
			Label: fmt.Sprintf("%v - %v (id:%v)", account.Code, account.Name, account.ID),
		}
	}
	return options
}
