package evm

// Forecast is an (EAC, ETC, VAC) triple produced by one forecasting model.
// A degenerate performance index makes the whole triple missing as a unit:
// EAC, ETC and VAC are all derived from the same division.
type Forecast struct {
	eac, etc, vac Money
	valid         bool
}

// NewForecast builds a present forecast triple.
func NewForecast(eac, etc, vac Money) Forecast {
	return Forecast{eac: eac, etc: etc, vac: vac, valid: true}
}

// IsMissing reports whether the forecast could not be computed.
func (f Forecast) IsMissing() bool { return !f.valid }

// EAC returns the Estimate At Completion and whether it is present.
func (f Forecast) EAC() (Money, bool) { return f.eac, f.valid }

// ETC returns the Estimate To Complete and whether it is present.
func (f Forecast) ETC() (Money, bool) { return f.etc, f.valid }

// VAC returns the Variance At Completion and whether it is present.
func (f Forecast) VAC() (Money, bool) { return f.vac, f.valid }

// Strings returns the display form of the three figures, "NA" when missing.
func (f Forecast) Strings() (eac, etc, vac string) {
	if !f.valid {
		return "NA", "NA", "NA"
	}
	return f.eac.String(), f.etc.String(), f.vac.String()
}

// MarshalJSON writes the triple as an ordered object, or null when missing.
func (f Forecast) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	var w jsonObjectWriter
	w.Append("eac", f.eac.Rounded())
	w.Append("etc", f.etc.Rounded())
	w.Append("vac", f.vac.Rounded())
	return w.MarshalJSON()
}
