package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/procost/evm"
	"github.com/procost/evm/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	input    string
	output   string
	bac      string
	currency string
	jsonOut  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute the EVM report from a cost ledger CSV" }
func (*reportCmd) Usage() string {
	return `evmr report -i <input.csv> [-o <output.csv>] [-bac <amount>]

  Reads the time-phased PV/EV/AC ledger, writes the detailed time series
  CSV, and prints the executive summary.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input CSV path (Date, PV, EV, AC); required")
	f.StringVar(&c.output, "o", "data/evm_output.csv", "output CSV path")
	f.StringVar(&c.bac, "bac", "", "Budget at Completion; inferred from the final cumulative PV when omitted")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code used to display amounts")
	f.StringVar(&c.jsonOut, "json", "", "optional path for a machine-readable summary (JSON)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}
	if err := evm.ValidateCurrency(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	bac, status := c.parseBAC()
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := readLedger(c.input, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := evm.Compute(ledger, bac, c.currency)

	if err := writeDetails(c.output, report.Details); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if c.jsonOut != "" {
		if err := writeSummaryJSON(c.jsonOut, &report.Summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.jsonOut, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Input file:  %s\n", c.input)
	fmt.Printf("Output file: %s\n", c.output)
	printMarkdown(renderer.SummaryMarkdown(&report.Summary))

	return subcommands.ExitSuccess
}

// parseBAC reads the -bac flag with the same tolerant numeric parsing as
// the ledger amounts. nil means "infer".
func (c *reportCmd) parseBAC() (*evm.Money, subcommands.ExitStatus) {
	if c.bac == "" {
		return nil, subcommands.ExitSuccess
	}
	v, err := evm.ParseAmount(c.bac)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -bac: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	m := evm.M(v, c.currency)
	return &m, subcommands.ExitSuccess
}

func writeDetails(path string, details []evm.Detail) error {
	// Refuse before creating the file: a failed run must leave no artifact,
	// not even an empty one.
	if len(details) == 0 {
		return evm.ErrNoRows
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return evm.EncodeDetails(out, details)
}

func writeSummaryJSON(path string, s *evm.Summary) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return evm.EncodeSummary(out, s)
}
