package evm

import (
	"iter"
	"slices"

	"github.com/procost/evm/date"
)

// Entry is one reporting period of the cost ledger: the period's Planned
// Value, Earned Value and Actual Cost. Amounts are finite by construction,
// ParseAmount rejects anything else before an Entry exists. Negative amounts
// are legitimate corrections.
type Entry struct {
	Date       date.Date
	PV, EV, AC Money
}

// Ledger is the ordered sequence of reporting periods.
//
// In a Ledger entries are always in chronological order; entries sharing a
// date keep their original file order. A Ledger is immutable once built.
type Ledger struct {
	entries []Entry
}

// NewLedger builds a ledger from entries in any order. Entries are sorted
// ascending by date with a stable sort, so input order breaks date ties.
func NewLedger(entries []Entry) *Ledger {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return a.Date.Compare(b.Date) })
	return &Ledger{entries: sorted}
}

// Len returns the number of reporting periods.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries iterates over the periods in chronological order.
func (l *Ledger) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Last returns the final period and false when the ledger is empty.
func (l *Ledger) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
