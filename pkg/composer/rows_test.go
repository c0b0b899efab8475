package composer

import (
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
	"github.com/stretchr/testify/assert"
)

func randCatalog(size int) Catalog {
	accounts := make([]ledger.AccountDTO, size)
	for i := range accounts {
		accounts[i] = ledger.AccountDTO{
			ID:   int64(i + 1),
			Code: faker.Word(),
			Name: faker.Word(),
		}
	}
	return NewCatalog(accounts)
}

func TestRows_Balance(t *testing.T) {
	type tcFn func(*testing.T)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "sum amounts by side", func(t *testing.T) {
				rows := NewRows()
				rows.SyncAll(randCatalog(2))
				rows.Seed()
				assert.NoError(t, rows.SetAmount(0, "10000"))
				assert.NoError(t, rows.SetAmount(1, "7000"))
				rows.Add()
				assert.NoError(t, rows.SetSide(2, Credit))
				assert.NoError(t, rows.SetAmount(2, "3000"))
				assert.Equal(t, Balance{
					DebitTotal:  10000,
					CreditTotal: 10000,
					Difference:  0,
				}, rows.Balance())
			}
		},
		func() (string, tcFn) {
			return "treat non numeric amounts as zero", func(t *testing.T) {
				rows := NewRows()
				rows.Seed()
				assert.NoError(t, rows.SetAmount(0, "not-a-number"))
				assert.NoError(t, rows.SetAmount(1, "500"))
				assert.Equal(t, Balance{
					DebitTotal:  0,
					CreditTotal: 500,
					Difference:  -500,
				}, rows.Balance())
			}
		},
		func() (string, tcFn) {
			return "treat nan and inf amounts as zero", func(t *testing.T) {
				rows := NewRows()
				rows.Seed()
				assert.NoError(t, rows.SetAmount(0, "NaN"))
				assert.NoError(t, rows.SetAmount(1, "+Inf"))
				assert.Equal(t, Balance{}, rows.Balance())
			}
		},
		func() (string, tcFn) {
			return "recompute on side change", func(t *testing.T) {
				rows := NewRows()
				rows.Seed()
				assert.NoError(t, rows.SetAmount(0, "100"))
				assert.NoError(t, rows.SetSide(0, Credit))
				assert.Equal(t, Balance{
					CreditTotal: 100,
					Difference:  -100,
				}, rows.Balance())
			}
		},
		func() (string, tcFn) {
			return "recompute on row removal", func(t *testing.T) {
				rows := NewRows()
				rows.Seed()
				assert.NoError(t, rows.SetAmount(0, "100"))
				assert.NoError(t, rows.SetAmount(1, "100"))
				assert.NoError(t, rows.Remove(0))
				assert.Equal(t, 1, rows.Len())
				assert.Equal(t, Balance{
					CreditTotal: 100,
					Difference:  -100,
				}, rows.Balance())
			}
		},
	}
	for _, tt := range tests {
		t.Run(tt())
	}
}

func TestRows_Seed(t *testing.T) {
	type tcFn func(*testing.T)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "seed one debit and one credit line", func(t *testing.T) {
				catalog := randCatalog(3)
				rows := NewRows()
				rows.SyncAll(catalog)
				rows.Seed()
				list := rows.List()
				if !assert.Len(t, list, 2) {
					return
				}
				assert.Equal(t, Debit, list[0].Side)
				assert.Equal(t, Credit, list[1].Side)
				for _, row := range list {
					assert.Equal(t, catalog.Accounts()[0].ID, row.AccountID)
					assert.Len(t, row.Options, 3)
				}
			}
		},
		func() (string, tcFn) {
			return "append debit line with current options", func(t *testing.T) {
				catalog := randCatalog(2)
				rows := NewRows()
				rows.SyncAll(catalog)
				rows.Seed()
				rows.Add()
				list := rows.List()
				if !assert.Len(t, list, 3) {
					return
				}
				assert.Equal(t, Debit, list[2].Side)
				assert.Equal(t, catalog.Accounts()[0].ID, list[2].AccountID)
			}
		},
		func() (string, tcFn) {
			return "fail mutators for unknown index", func(t *testing.T) {
				rows := NewRows()
				rows.Seed()
				assert.Error(t, rows.SetAmount(5, "100"))
				assert.Error(t, rows.SetSide(-1, Debit))
				assert.Error(t, rows.SelectAccount(2, 1))
				assert.Error(t, rows.Remove(2))
			}
		},
		func() (string, tcFn) {
			return "fail on unknown side", func(t *testing.T) {
				rows := NewRows()
				rows.Seed()
				assert.Error(t, rows.SetSide(0, "BOTH"))
			}
		},
	}
	for _, tt := range tests {
		t.Run(tt())
	}
}

func TestRows_SyncAll(t *testing.T) {
	type tcFn func(*testing.T)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "preserve selection still present in catalog", func(t *testing.T) {
				catalog := randCatalog(3)
				rows := NewRows()
				rows.SyncAll(catalog)
				rows.Seed()
				assert.NoError(t, rows.SelectAccount(1, 3))
				rows.SyncAll(catalog)
				assert.Equal(t, int64(3), rows.List()[1].AccountID)
			}
		},
		func() (string, tcFn) {
			return "fall back to first catalog entry for stale selection", func(t *testing.T) {
				rows := NewRows()
				rows.SyncAll(NewCatalog([]ledger.AccountDTO{{ID: 1, Code: "101", Name: "Cash"}}))
				rows.Seed()
				assert.Equal(t, int64(1), rows.List()[0].AccountID)

				rows.SyncAll(NewCatalog([]ledger.AccountDTO{{ID: 2, Code: "201", Name: "Payable"}}))
				for _, row := range rows.List() {
					assert.Equal(t, int64(2), row.AccountID)
				}
			}
		},
		func() (string, tcFn) {
			return "leave no valid selection for empty catalog", func(t *testing.T) {
				rows := NewRows()
				rows.SyncAll(randCatalog(2))
				rows.Seed()
				rows.SyncAll(NewCatalog(nil))
				for _, row := range rows.List() {
					assert.Equal(t, int64(0), row.AccountID)
					if assert.Len(t, row.Options, 1) {
						assert.Equal(t, AccountOption{ID: 0, Label: noAccountsLabel}, row.Options[0])
					}
				}
			}
		},
		func() (string, tcFn) {
			return "yield same selections when applied twice", func(t *testing.T) {
				initial := randCatalog(3)
				rows := NewRows()
				rows.SyncAll(initial)
				rows.Seed()
				assert.NoError(t, rows.SelectAccount(0, 2))

				refreshed := randCatalog(2)
				rows.SyncAll(refreshed)
				once := rows.List()
				rows.SyncAll(refreshed)
				assert.Equal(t, once, rows.List())
			}
		},
		func() (string, tcFn) {
			return "label options with code name and id", func(t *testing.T) {
				rows := NewRows()
				rows.SyncAll(NewCatalog([]ledger.AccountDTO{{ID: 1, Code: "101", Name: "Cash"}}))
				rows.Seed()
				assert.Equal(t, []AccountOption{
					{ID: 1, Label: "101 - Cash (id:1)"},
				}, rows.List()[0].Options)
			}
		},
	}
	for _, tt := range tests {
		t.Run(tt())
	}
}
