package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"
)

const (
	appEnvVar = "APP_ENV"

	facetVar = "APP_ENV_FACET"
)

var logger = diag.CreateLogger()

// AppEnv represents app env
type AppEnv struct {
	// ServiceName is a name of a current service
	ServiceName string

	// Name is a env name. By default taken from APP_ENV. Corresponds to NODE_ENV
	Name string

	// Facet is a env facet like preprod (for production). By default taken from APP_ENV_FACET
	Facet string
}

type appEnvCfg struct {
	lookupFlag func(name string) *flag.Flag
}

type appEnvOpt func(*appEnvCfg)

func withLookupFlag(lookupFlag func(name string) *flag.Flag) appEnvOpt {
	return func(cfg *appEnvCfg) {
		cfg.lookupFlag = lookupFlag
	}
}

// NewAppEnv creates a new instance of the app env from os env
// Will use "dev" by default and "test" when running under go test
func NewAppEnv(serviceName string, opts ...appEnvOpt) AppEnv {
	cfg := appEnvCfg{
		lookupFlag: flag.Lookup,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	appEnv := os.Getenv(appEnvVar)
	if appEnv == "" {
		if v := cfg.lookupFlag("test.v"); v == nil {
			appEnv = "dev"
		} else {
			appEnv = "test"
		}
	}
	facet := os.Getenv(facetVar)
	return AppEnv{
		Name:        appEnv,
		Facet:       facet,
		ServiceName: serviceName,
	}
}

// Source is an abstraction to read params
type Source interface {
	GetParameters(params []param) (map[param]interface{}, error)
}

type sourceBinding struct {
	params []param
	source Source
}

// ServiceConfig is a loaded config to read param values from
type ServiceConfig interface {
	StringParam(p StringParam) StringVal
	IntParam(p IntParam) IntVal
	BoolParam(p BoolParam) BoolVal
}

type serviceConfig struct {
	values map[param]paramValue
}

func (c *serviceConfig) StringParam(p StringParam) StringVal {
	return c.values[p].(StringVal)
}

func (c *serviceConfig) IntParam(p IntParam) IntVal {
	return c.values[p].(IntVal)
}

func (c *serviceConfig) BoolParam(p BoolParam) BoolVal {
	return c.values[p].(BoolVal)
}

type loadCfg struct {
	bindings []sourceBinding
}

// ServiceConfigOpt represents load option
type ServiceConfigOpt func(cfg *loadCfg)

// WithSource is a load option to add a source with params bound to it
func WithSource(binding sourceBinding) ServiceConfigOpt {
	return func(cfg *loadCfg) {
		cfg.bindings = append(cfg.bindings, binding)
	}
}

// Load will fetch values of all bound params from their sources.
// Every param must be resolvable, otherwise load fails.
func Load(opts ...ServiceConfigOpt) (ServiceConfig, error) {
	loadCfg := loadCfg{}
	for _, opt := range opts {
		opt(&loadCfg)
	}

	cfg := &serviceConfig{values: map[param]paramValue{}}
	for _, binding := range loadCfg.bindings {
		values, err := binding.source.GetParameters(binding.params)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to fetch config values")
		}
		for _, p := range binding.params {
			rawValue, ok := values[p]
			if !ok {
				return nil, errors.Errorf("Parameter %v not found", p)
			}
			value := p.emptyValue()
			if err := value.setValue(rawValue); err != nil {
				return nil, errors.Wrapf(err, "Failed to set parameter %v value", p)
			}
			cfg.values[p] = value
		}
	}
	return cfg, nil
}
