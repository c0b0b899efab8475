package app

import (
	"database/sql"
	"os"

	"go.uber.org/dig"

	"github.com/kjm-dev/ledger.entry-composer/config"
	"github.com/kjm-dev/ledger.entry-composer/pkg/composer"
	"github.com/kjm-dev/ledger.entry-composer/pkg/dal"
	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
	"github.com/kjm-dev/ledger.entry-composer/pkg/server"
)

// Injector is a function that will inject desired services
// to a target function
type Injector func(function interface{}) error

// BootstrapServices setup di container with all app services
func BootstrapServices(appCfg *config.AppConfig) Injector {
	c := dig.New()

	c.Provide(func() (*sql.DB, error) {
		return sql.Open(appCfg.Storage.Driver.Value(), appCfg.Storage.DSN.Value())
	})

	c.Provide(func(db *sql.DB) (dal.Storage, error) {
		return dal.NewSQLStorage(dal.WithSQLDb(db))
	})

	c.Provide(func(storage dal.Storage) server.Service {
		return server.NewService(server.WithStorage(storage))
	})

	c.Provide(func() ledger.API {
		return ledger.NewAPI(appCfg.Ledger.API.Value())
	})

	c.Provide(func() composer.Display {
		return NewConsoleDisplay(os.Stdout)
	})

	c.Provide(func(api ledger.API, display composer.Display) *composer.Composer {
		return composer.New(
			composer.WithAPI(api),
			composer.WithDisplay(display),
		)
	})

	return func(function interface{}) error {
		return c.Invoke(function)
	}
}
