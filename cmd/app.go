// Package cmd implements the CLI application producing EVM reports.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/procost/evm"
)

// Commands lists the subcommands to register.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&checkCmd{},
	&topicCmd{},
}

// readLedger opens, decodes and closes the input file. The file handle is
// released before any computation or output-writing begins.
func readLedger(path, currency string) (*evm.Ledger, error) {
	in, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("cannot open input file %q: %w", path, err)
	}
	defer in.Close()

	ledger, err := evm.DecodeLedger(in, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", path, err)
	}
	return ledger, nil
}

// printMarkdown renders markdown for the terminal; on any rendering trouble
// it falls back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
