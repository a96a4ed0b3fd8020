package evm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount reports an empty or whitespace-only numeric field. An empty
// amount is never read as zero.
var ErrEmptyAmount = errors.New("empty amount")

// ParseAmount parses a monetary amount that may use either '.' or ',' as the
// decimal separator, with the other acting as thousands grouping.
//
// The rules are a heuristic and are preserved verbatim:
//   - both separators present: the rightmost one is the decimal point, every
//     occurrence of the other is stripped as grouping,
//   - only a comma: the comma is a decimal comma ("1234,56" is 1234.56),
//   - only a period, or no separator: plain decimal number.
func ParseAmount(s string) (decimal.Decimal, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrEmptyAmount
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", orig)
	}
	return d, nil
}
