package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kjm-dev/ledger.entry-composer/pkg/composer"
	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
)

type consoleDisplay struct {
	out io.Writer
}

func (d *consoleDisplay) ShowMessage(message string) {
	fmt.Fprintln(d.out, message)
}

func (d *consoleDisplay) ShowEntry(entry *ledger.EntryDetailDTO) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		fmt.Fprintf(d.out, "%+v\n", entry)
		return
	}
	fmt.Fprintln(d.out, string(data))
}

func (d *consoleDisplay) ShowFailure(statusCode int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(d.out, "Request failed (%v): %v\n", statusCode, payload)
		return
	}
	fmt.Fprintf(d.out, "Request failed (%v): %v\n", statusCode, string(data))
}

// NewConsoleDisplay returns a display rendering composer outcomes to the
// given writer
func NewConsoleDisplay(out io.Writer) composer.Display {
	return &consoleDisplay{out: out}
}
