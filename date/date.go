// Package date provides a day-granularity calendar date and the strict
// YYYY-MM-DD validation used everywhere a user enters a date.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the only accepted textual form of a date, ISO-8601 with
// zero-padded month and day.
const Format = "2006-01-02"

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a canonical time.Time for that day (midnight UTC), which makes
// dates comparable.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(Format) }

// IsValid reports whether text is a real calendar date in the strict
// YYYY-MM-DD form. Leap years are honored, any other separator, ordering or
// unpadded field is rejected. It is a pure predicate and never fails.
func IsValid(text string) bool {
	_, err := parse(text)
	return err == nil
}

// parse is the single strict parser behind IsValid and Parse.
func parse(str string) (time.Time, error) {
	// time.Parse alone is not enough: it tolerates a 5-digit year.
	if len(str) != len(Format) {
		return time.Time{}, fmt.Errorf("invalid date %q: want format %q", str, Format)
	}
	on, err := time.Parse(Format, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want format %q: %w", str, Format, err)
	}
	return on, nil
}

// Parse parses a Date from its strict YYYY-MM-DD form.
func Parse(str string) (Date, error) {
	on, err := parse(str)
	if err != nil {
		return Date{}, err
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a
// json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
