package evm

import (
	"fmt"
	"io"
)

// EncodeSummary writes the summary as a single ordered JSON object, one
// machine-readable sibling of the console rendering. Present figures are
// written rounded to the currency fraction; missing forecasts and indices
// are written as null, never omitted.
func EncodeSummary(w io.Writer, s *Summary) error {
	var o jsonObjectWriter
	o.Append("bac", s.BAC.Rounded())
	o.Append("bacSource", s.BACSource.String())
	o.Optional("currency", s.BAC.Currency())
	o.Append("pvCum", s.CumPV.Rounded())
	o.Append("evCum", s.CumEV.Rounded())
	o.Append("acCum", s.CumAC.Rounded())
	o.Append("sv", s.SV.Rounded())
	o.Append("cv", s.CV.Rounded())
	o.Append("spi", s.SPI)
	o.Append("cpi", s.CPI)
	o.Append("costOnly", s.CostOnly)
	o.Append("costSchedule", s.CostSchedule)

	data, err := o.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal summary: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write summary: %w", err)
	}
	return nil
}
