package evm

import "fmt"

// BACSource records where the Budget at Completion figure came from.
type BACSource int

const (
	// BACInferred means no budget was supplied and BAC was taken as the
	// final cumulative planned value. This is a stated approximation: it
	// assumes the ledger covers the full planned baseline.
	BACInferred BACSource = iota
	// BACUser means the caller supplied the budget, used verbatim.
	BACUser
)

func (s BACSource) String() string {
	switch s {
	case BACInferred:
		return "inferred"
	case BACUser:
		return "user"
	default:
		return "unknown"
	}
}

// ParseBACSource parses a string into a BACSource.
func ParseBACSource(str string) (BACSource, error) {
	switch str {
	case "inferred":
		return BACInferred, nil
	case "user":
		return BACUser, nil
	default:
		return 0, fmt.Errorf("unknown BAC source: %q", str)
	}
}
