package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/procost/evm"
)

// checkCmd validates an input ledger without producing any artifact.
type checkCmd struct {
	input    string
	currency string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a cost ledger CSV without writing a report" }
func (*checkCmd) Usage() string {
	return `evmr check -i <input.csv>

  Parses the ledger with the same all-or-nothing validation as 'report'
  and reports the first problem found, or the number of valid rows.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input CSV path (Date, PV, EV, AC); required")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code used to display amounts")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "-i argument is required")
		return subcommands.ExitUsageError
	}
	if err := evm.ValidateCurrency(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := readLedger(c.input, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %d rows OK\n", c.input, ledger.Len())
	return subcommands.ExitSuccess
}
