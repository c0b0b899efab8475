package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kjm-dev/ledger.entry-composer/config"
	"github.com/kjm-dev/ledger.entry-composer/pkg/app"
	"github.com/kjm-dev/ledger.entry-composer/pkg/composer"
	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"
)

var logger = diag.CreateLogger()

var cliArgs struct {
	cmd   string
	code  string
	name  string
	date  string
	desc  string
	lines string
	id    int64
}

func init() {
	flag.StringVar(&cliArgs.cmd, "cmd", "", "Command to run. Available commands: accounts, create-account, submit, get, entries")
	flag.StringVar(&cliArgs.code, "code", "", "Account code (create-account)")
	flag.StringVar(&cliArgs.name, "name", "", "Account name (create-account)")
	flag.StringVar(&cliArgs.date, "date", "", "Entry date, e.g. 2024-03-01 (submit)")
	flag.StringVar(&cliArgs.desc, "desc", "", "Entry description (submit)")
	flag.StringVar(&cliArgs.lines, "lines", "", "Entry lines, e.g. DEBIT:10000:1,CREDIT:10000:2 (submit)")
	flag.Int64Var(&cliArgs.id, "id", 0, "Journal entry id (get)")

	flag.Parse()
}

func showHelpAndExit() {
	flag.PrintDefaults()
	os.Exit(1)
}

type lineSpec struct {
	side      string
	amount    string
	accountID int64
}

func parseLines(raw string) ([]lineSpec, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	specs := make([]lineSpec, len(parts))
	for i, part := range parts {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("Bad line %q, want side:amount:accountId", part)
		}
		accountID, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Bad account id in line %q", part)
		}
		specs[i] = lineSpec{side: fields[0], amount: fields[1], accountID: accountID}
	}
	return specs, nil
}

func applyLines(rows *composer.Rows, specs []lineSpec) error {
	for rows.Len() > len(specs) {
		if err := rows.Remove(rows.Len() - 1); err != nil {
			return err
		}
	}
	for i, spec := range specs {
		if i >= rows.Len() {
			rows.Add()
		}
		if err := rows.SetSide(i, spec.side); err != nil {
			return err
		}
		if err := rows.SetAmount(i, spec.amount); err != nil {
			return err
		}
		if err := rows.SelectAccount(i, spec.accountID); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if cliArgs.cmd == "" {
		showHelpAndExit()
	}

	appCfg := config.LoadAppConfig()

	diag.SetupLoggingSystem(func(setup diag.LoggingSystemSetup) {
		setup.SetLogLevel(appCfg.Log.Level.Value())
	})

	injector := app.BootstrapServices(appCfg)
	ctx := context.Background()

	switch cliArgs.cmd {
	case "accounts":
		if err := injector(func(c *composer.Composer) error {
			if err := c.RefreshCatalog(ctx); err != nil {
				return err
			}
			for _, account := range c.Catalog().Accounts() {
				fmt.Printf("%v\t%v\t%v\n", account.ID, account.Code, account.Name)
			}
			return nil
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to list accounts")
			os.Exit(1)
		}

	case "create-account":
		if err := injector(func(c *composer.Composer) error {
			return c.CreateAccount(ctx, cliArgs.code, cliArgs.name)
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to create account")
			os.Exit(1)
		}

	case "submit":
		if err := injector(func(c *composer.Composer) error {
			specs, err := parseLines(cliArgs.lines)
			if err != nil {
				return err
			}
			c.Init(ctx)
			c.SetEntryDate(cliArgs.date)
			c.SetDescription(cliArgs.desc)
			if err := applyLines(c.Rows(), specs); err != nil {
				return err
			}
			balance := c.Rows().Balance()
			fmt.Printf("debit: %v, credit: %v, difference: %v\n",
				balance.DebitTotal, balance.CreditTotal, balance.Difference)
			return c.Submit(ctx)
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to submit journal entry")
			os.Exit(1)
		}

	case "get":
		if err := injector(func(c *composer.Composer) error {
			return c.ShowEntry(ctx, cliArgs.id)
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to get journal entry")
			os.Exit(1)
		}

	case "entries":
		if err := injector(func(api ledger.API) error {
			entries, err := api.ListEntries(ctx)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Printf("%v\t%v\t%v\tD:%v C:%v\n",
					entry.ID, entry.EntryDate, entry.Description,
					entry.DebitTotal, entry.CreditTotal)
			}
			return nil
		}); err != nil {
			logger.WithError(err).Error(ctx, "Failed to list journal entries")
			os.Exit(1)
		}

	default:
		flag.PrintDefaults()
		os.Exit(1)
	}
}
