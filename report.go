package evm

import "github.com/procost/evm/date"

// Detail is one row of the report time series: the period's own figures,
// the running cumulative figures, and the four instantaneous-cumulative
// metrics as of that period.
type Detail struct {
	Date       date.Date
	PV, EV, AC Money // period values

	CumPV, CumEV, CumAC Money

	SV, CV   Money // cumEV-cumPV, cumEV-cumAC
	SPI, CPI Ratio
}

// Summary is the terminal snapshot of the report: the resolved Budget at
// Completion, the final cumulative figures and indices, and the two forecast
// models. Every field is either a finite value or an explicit missing
// sentinel, never absent.
type Summary struct {
	BAC       Money
	BACSource BACSource

	CumPV, CumEV, CumAC Money
	SV, CV              Money
	SPI, CPI            Ratio

	// CostOnly assumes future work is performed at the observed cost
	// efficiency: EAC = BAC / CPI.
	CostOnly Forecast
	// CostSchedule additionally weighs schedule efficiency:
	// EAC = AC + (BAC - EV) / (CPI * SPI).
	CostSchedule Forecast
}

// Report is the complete outcome of one computation run.
type Report struct {
	Details []Detail
	Summary Summary
}

// Compute folds the date-sorted ledger into the report. It is a pure
// function: identical inputs yield identical outputs, and it never fails
// from arithmetic. A nil bac infers the budget from the final cumulative
// planned value. currency denominates derived figures when the ledger is
// empty.
func Compute(ledger *Ledger, bac *Money, currency string) *Report {
	zero := M(0, currency)
	cumPV, cumEV, cumAC := zero, zero, zero

	details := make([]Detail, 0, ledger.Len())
	for e := range ledger.Entries() {
		cumPV = cumPV.Add(e.PV)
		cumEV = cumEV.Add(e.EV)
		cumAC = cumAC.Add(e.AC)

		details = append(details, Detail{
			Date:  e.Date,
			PV:    e.PV,
			EV:    e.EV,
			AC:    e.AC,
			CumPV: cumPV,
			CumEV: cumEV,
			CumAC: cumAC,
			SV:    cumEV.Sub(cumPV),
			CV:    cumEV.Sub(cumAC),
			SPI:   RatioOf(cumEV, cumPV),
			CPI:   RatioOf(cumEV, cumAC),
		})
	}

	return &Report{Details: details, Summary: summarize(details, bac, zero)}
}

// summarize derives the terminal snapshot from the final detail record.
func summarize(details []Detail, bac *Money, zero Money) Summary {
	// Placeholders keep an empty ledger from raising: zero cumulatives and
	// missing indices.
	last := Detail{CumPV: zero, CumEV: zero, CumAC: zero, SV: zero, CV: zero}
	if len(details) > 0 {
		last = details[len(details)-1]
	}

	s := Summary{
		BAC:       last.CumPV,
		BACSource: BACInferred,
		CumPV:     last.CumPV,
		CumEV:     last.CumEV,
		CumAC:     last.CumAC,
		SV:        last.SV,
		CV:        last.CV,
		SPI:       last.SPI,
		CPI:       last.CPI,
	}
	if bac != nil {
		s.BAC = *bac
		s.BACSource = BACUser
	}

	s.CostOnly = costOnlyForecast(s.BAC, last.CumAC, last.CPI)
	s.CostSchedule = costScheduleForecast(s.BAC, last.CumEV, last.CumAC, last.CPI, last.SPI)
	return s
}

// costOnlyForecast computes EAC = BAC / CPI, ETC = EAC - AC, VAC = BAC - EAC.
func costOnlyForecast(bac, ac Money, cpi Ratio) Forecast {
	v, ok := cpi.Value()
	if !ok || v.Abs().LessThan(divTolerance) {
		return Forecast{}
	}
	eac := Money{value: bac.value.Div(v), cur: bac.cur}
	return NewForecast(eac, eac.Sub(ac), bac.Sub(eac))
}

// costScheduleForecast computes EAC = AC + (BAC - EV) / (CPI * SPI) and the
// derived ETC and VAC. A missing or near-zero index product makes the whole
// triple missing.
func costScheduleForecast(bac, ev, ac Money, cpi, spi Ratio) Forecast {
	denom, ok := cpi.Mul(spi).Value()
	if !ok || denom.Abs().LessThan(divTolerance) {
		return Forecast{}
	}
	eac := ac.Add(Money{value: bac.Sub(ev).value.Div(denom), cur: bac.cur})
	return NewForecast(eac, eac.Sub(ac), bac.Sub(eac))
}
