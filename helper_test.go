package evm

import (
	"github.com/shopspring/decimal"

	"github.com/procost/evm/date"
)

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

// entry is a helper for tests to build a ledger entry from constants.
func entry(day string, pv, ev, ac float64) Entry {
	return Entry{Date: date.MustParse(day), PV: USD(pv), EV: USD(ev), AC: USD(ac)}
}

// dec parses a decimal constant, panicking on bad test data.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// closeTo reports whether two decimals agree within 1e-6, loose enough to
// absorb division precision.
func closeTo(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(dec("0.000001"))
}
