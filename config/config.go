package config

import (
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/config"
	"github.com/kjm-dev/ledger.entry-composer/pkg/version"
)

var appEnv = config.NewAppEnv(version.AppName)
var configBuilder = config.NewBuilder(appEnv)

var localParams = configBuilder.NewParamsBuilder(configBuilder.WithLocalSource())

// Do not change vars below at runtime
var (
	LogLevel = localParams.NewParam("log/logLevel").String()

	LedgerAPI = localParams.NewParam("ledger/api").String()

	ServerPort = localParams.NewParam("server/port").Int()

	StorageDriver = localParams.NewParam("storage/driver").String()
	StorageDSN    = localParams.NewParam("storage/data-source-name").String()
)

// Log represents logger specific options
type Log struct {
	Level config.StringVal
}

// Ledger represents ledger service settings
type Ledger struct {
	API config.StringVal
}

// Server represents http server settings
type Server struct {
	Port config.IntVal
}

// Storage represents storage settings
type Storage struct {
	Driver config.StringVal
	DSN    config.StringVal
}

// AppConfig is a toplevel config structure
type AppConfig struct {
	Log     Log
	Ledger  Ledger
	Server  Server
	Storage Storage
}

// Load will load and initialize config
func Load() config.ServiceConfig {
	cfg, err := configBuilder.LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadAppConfig will load and initialize app config structure
func LoadAppConfig() *AppConfig {
	cfg, err := configBuilder.LoadConfig()
	if err != nil {
		panic(err)
	}

	appCfg := AppConfig{
		Log: Log{
			Level: cfg.StringParam(LogLevel),
		},
		Ledger: Ledger{
			API: cfg.StringParam(LedgerAPI),
		},
		Server: Server{
			Port: cfg.IntParam(ServerPort),
		},
		Storage: Storage{
			Driver: cfg.StringParam(StorageDriver),
			DSN:    cfg.StringParam(StorageDSN),
		},
	}

	return &appCfg
}
