// +build tools

package tools

// Build/dev tooling kept in go.mod (see Makefile targets)
import (
	_ "github.com/cespare/reflex"
	_ "github.com/mgechev/revive"
)
