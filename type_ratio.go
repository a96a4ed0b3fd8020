package evm

import "github.com/shopspring/decimal"

// divTolerance is the absolute threshold under which a denominator is
// treated as zero. Absolute, not relative: one period's tiny planned value
// must degrade to a missing ratio, not abort the run.
var divTolerance = decimal.New(1, -9) // 1e-9

// Ratio is a dimensionless performance index (SPI, CPI) that may be missing.
// The zero value is Missing. Missing is the explicit not-a-number sentinel of
// the whole report: any formula fed a missing ratio yields a missing result,
// never zero.
type Ratio struct {
	value decimal.Decimal
	valid bool
}

// Missing is the absent-ratio sentinel.
var Missing = Ratio{}

// RatioOf returns num/den, or Missing when the denominator is zero or within
// divTolerance of it.
func RatioOf(num, den Money) Ratio {
	if den.value.Abs().LessThan(divTolerance) {
		return Missing
	}
	return Ratio{value: num.value.Div(den.value), valid: true}
}

// IsMissing reports whether the ratio carries no value.
func (r Ratio) IsMissing() bool { return !r.valid }

// Value returns the underlying decimal and whether it is present.
func (r Ratio) Value() (decimal.Decimal, bool) { return r.value, r.valid }

// Mul returns the product of two ratios; missing propagates.
func (r Ratio) Mul(o Ratio) Ratio {
	if !r.valid || !o.valid {
		return Missing
	}
	return Ratio{value: r.value.Mul(o.value), valid: true}
}

// Equal reports equality of two ratios; two missing ratios are equal.
func (r Ratio) Equal(o Ratio) bool {
	if r.valid != o.valid {
		return false
	}
	return !r.valid || r.value.Equal(o.value)
}

// String renders the ratio with three decimals, or "NA" when missing.
func (r Ratio) String() string {
	if !r.valid {
		return "NA"
	}
	return r.value.StringFixed(3)
}

// Plain returns the bare decimal text of the ratio, or "NA" when missing.
// This is the form written to the detail CSV.
func (r Ratio) Plain() string {
	if !r.valid {
		return "NA"
	}
	return r.value.String()
}

// MarshalJSON writes the ratio as a number, or null when missing.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return r.value.MarshalJSON()
}
