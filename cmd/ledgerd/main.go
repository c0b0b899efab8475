package main

import (
	"context"
	"os"

	"github.com/kjm-dev/ledger.entry-composer/config"
	"github.com/kjm-dev/ledger.entry-composer/pkg/app"
	"github.com/kjm-dev/ledger.entry-composer/pkg/server"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/router"
)

var logger = diag.CreateLogger()

func main() {
	appCfg := config.LoadAppConfig()

	diag.SetupLoggingSystem(func(setup diag.LoggingSystemSetup) {
		setup.SetLogLevel(appCfg.Log.Level.Value())
	})

	injector := app.BootstrapServices(appCfg)
	ctx := context.Background()

	port := appCfg.Server.Port.Value()
	logger.Info(ctx, "Starting ledger server on port %v", port)

	if err := injector(func(svc server.Service) error {
		return router.StartServer(port, func(r router.Router) {
			r.Use(router.MiddlewareFunc(diag.NewRequestIDMiddleware()))
			r.Use(router.MiddlewareFunc(diag.NewLogRequestsMiddleware()))
			server.SetupRoutes(r, svc)
		})
	}); err != nil {
		logger.WithError(err).Error(ctx, "Server failed")
		os.Exit(1)
	}
}
