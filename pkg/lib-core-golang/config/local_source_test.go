package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir string, name string, data map[string]interface{}) {
	buffer, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(path.Join(dir, name), buffer, 0644))
}

func TestLocalSource_GetParameters(t *testing.T) {
	type tcFn func(*testing.T)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "read params from default file", func(t *testing.T) {
				dir, err := ioutil.TempDir("", "local-source")
				require.NoError(t, err)
				defer os.RemoveAll(dir)

				wantURL := "https://" + faker.Word() + ".example.com"
				writeConfigFile(t, dir, "default.json", map[string]interface{}{
					"ledger": map[string]interface{}{"api": wantURL},
				})

				source, err := NewLocalSource(LocalOpts.WithDir(dir))
				require.NoError(t, err)

				p := newStringParam("ledger/api", "")
				values, err := source.GetParameters([]param{p})
				require.NoError(t, err)
				assert.Equal(t, wantURL, values[param(p)])
			}
		},
		func() (string, tcFn) {
			return "env file values take precedence over defaults", func(t *testing.T) {
				dir, err := ioutil.TempDir("", "local-source")
				require.NoError(t, err)
				defer os.RemoveAll(dir)

				writeConfigFile(t, dir, "default.json", map[string]interface{}{
					"log": map[string]interface{}{"logLevel": "info"},
				})
				writeConfigFile(t, dir, "test.json", map[string]interface{}{
					"log": map[string]interface{}{"logLevel": "debug"},
				})

				source, err := NewLocalSource(
					LocalOpts.WithDir(dir),
					LocalOpts.WithAppEnv(AppEnv{Name: "test", ServiceName: "svc"}),
				)
				require.NoError(t, err)

				p := newStringParam("log/logLevel", "")
				values, err := source.GetParameters([]param{p})
				require.NoError(t, err)
				assert.Equal(t, "debug", values[param(p)])
			}
		},
		func() (string, tcFn) {
			return "env variable overrides win", func(t *testing.T) {
				dir, err := ioutil.TempDir("", "local-source")
				require.NoError(t, err)
				defer os.RemoveAll(dir)

				writeConfigFile(t, dir, "default.json", map[string]interface{}{
					"ledger": map[string]interface{}{"api": "http://default.example.com"},
				})
				writeConfigFile(t, dir, "custom-environment-variables.json", map[string]interface{}{
					"ledger": map[string]interface{}{"api": "TEST_LEDGER_API_URL"},
				})

				wantURL := "https://" + faker.Word() + ".example.com"
				require.NoError(t, os.Setenv("TEST_LEDGER_API_URL", wantURL))
				defer os.Unsetenv("TEST_LEDGER_API_URL")

				source, err := NewLocalSource(LocalOpts.WithDir(dir))
				require.NoError(t, err)

				p := newStringParam("ledger/api", "")
				values, err := source.GetParameters([]param{p})
				require.NoError(t, err)
				assert.Equal(t, wantURL, values[param(p)])
			}
		},
		func() (string, tcFn) {
			return "resolve default service params from config root", func(t *testing.T) {
				dir, err := ioutil.TempDir("", "local-source")
				require.NoError(t, err)
				defer os.RemoveAll(dir)

				writeConfigFile(t, dir, "default.json", map[string]interface{}{
					"server": map[string]interface{}{"port": float64(8080)},
				})

				source, err := NewLocalSource(
					LocalOpts.WithDir(dir),
					LocalOpts.WithAppEnv(AppEnv{Name: "test", ServiceName: "entry-composer"}),
					LocalOpts.WithIgnoreDefaultService(),
				)
				require.NoError(t, err)

				p := newIntParam("server/port", "entry-composer")
				values, err := source.GetParameters([]param{p})
				require.NoError(t, err)
				assert.Equal(t, float64(8080), values[param(p)])
			}
		},
	}
	for _, tt := range tests {
		t.Run(tt())
	}
}
