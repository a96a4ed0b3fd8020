// Package date provides a calendar date value type with day granularity and
// the multi-format parser used to read reporting-period dates.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the canonical string representation, ISO-8601.
const Format = "2006-01-02"

// ReadFormats are the accepted input layouts, tried in order. The order is a
// disambiguation rule: ISO first, then day-first for slash-separated input.
// "03/04/2024" therefore reads as 3 April 2024, never 4 March.
// The layouts are permissive on padding, so 2025-7-1 reads like 2025-07-01.
var ReadFormats = []string{"2006-1-2", "2/1/2006", "2006/1/2"}

// Date represents a calendar date with no time component.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1 when d is before x, 0 when equal, +1 when after.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the date in its canonical format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date trying each layout of ReadFormats in order and
// returning the first match. Changing the order changes how ambiguous
// strings like "01/02/2024" read, so it is fixed.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range ReadFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q: want one of %q", str, ReadFormats)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON parses a date from a JSON string with the same layout
// priority as Parse.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON writes the date as a canonical JSON string.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
