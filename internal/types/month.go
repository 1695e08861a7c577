// Package types implements special types for the BudgetAI backend.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the month as a human readable budget period label,
// e.g. "July 2024".
func (m Month) Label() string {
	return time.Time(m).Format("January 2006")
}

// AddMonths returns the month n months later. Negative values of n are
// allowed and move the month backwards.
func (m Month) AddMonths(n int) Month {
	return MonthOf(time.Time(m).AddDate(0, n, 0))
}

// Before reports whether the month is before the month passed as parameter.
func (m Month) Before(other Month) bool {
	return time.Time(m).Before(time.Time(other))
}

// Equal reports whether the two months are the same.
func (m Month) Equal(other Month) bool {
	return time.Time(m).Equal(time.Time(other))
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepted formats are "YYYY-MM", "YYYY-MM-DD" and RFC3339 timestamps.
// Everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02T15:04:05Z07:00"
	if matched, _ := regexp.MatchString(`^[0-9]{4}-[0-9]{2}$`, value); matched {
		pattern = "2006-01"
	} else if matched, _ := regexp.MatchString(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`, value); matched {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}
