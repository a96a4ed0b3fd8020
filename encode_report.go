package evm

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrNoRows reports a request to write a report with no detail rows. An
// empty artifact is never produced.
var ErrNoRows = errors.New("no rows to write")

// DetailHeader is the column set of the detail CSV artifact.
var DetailHeader = []string{
	"Date",
	"PV_period", "EV_period", "AC_period",
	"PV_cum", "EV_cum", "AC_cum",
	"SV", "CV", "SPI", "CPI",
}

// EncodeDetails writes the report time series as CSV: one row per reporting
// period in chronological order, amounts as plain decimal text, ratios as
// plain decimal text or the literal "NA" sentinel.
func EncodeDetails(w io.Writer, details []Detail) error {
	if len(details) == 0 {
		return ErrNoRows
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(DetailHeader); err != nil {
		return fmt.Errorf("cannot write detail header: %w", err)
	}
	for _, d := range details {
		record := []string{
			d.Date.String(),
			d.PV.Plain(), d.EV.Plain(), d.AC.Plain(),
			d.CumPV.Plain(), d.CumEV.Plain(), d.CumAC.Plain(),
			d.SV.Plain(), d.CV.Plain(),
			d.SPI.Plain(), d.CPI.Plain(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write detail row for %s: %w", d.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
