package wareki

import (
	"fmt"
	"time"
)

// jstZone is the Asia/Tokyo timezone (UTC+9) used to normalize input
// times to the Japanese calendar date before era lookups.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// GregorianDate is a calendar date in the proleptic Gregorian calendar.
// Values returned by this package are always calendar-valid.
type GregorianDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Date returns the GregorianDate for year, month and day. Unlike [time.Date]
// it does not normalize out-of-range values: Feb 30 or Feb 29 of a common
// year is reported as [ErrInvalidGregorianDate].
func Date(year int, month time.Month, day int) (GregorianDate, error) {
	if month < time.January || month > time.December {
		return GregorianDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidGregorianDate, int(month))
	}
	if day < 1 || day > daysIn(year, month) {
		return GregorianDate{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidGregorianDate, year, int(month), day)
	}
	return GregorianDate{Year: year, Month: month, Day: day}, nil
}

// mustDate is Date for table literals known to be valid.
func mustDate(year int, month time.Month, day int) GregorianDate {
	d, err := Date(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// daysIn returns the number of days in month of year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateFromTime converts a time.Time to a GregorianDate by first normalizing
// to JST, so a moment in time always maps to the Japanese calendar date
// regardless of the input timezone.
func dateFromTime(t time.Time) GregorianDate {
	y, m, d := t.In(jstZone).Date()
	return GregorianDate{Year: y, Month: m, Day: d}
}

// Time returns the date as midnight UTC.
func (d GregorianDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the date in ISO 8601 form, e.g. "2024-05-01".
func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is strictly before other.
func (d GregorianDate) Before(other GregorianDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly after other.
func (d GregorianDate) After(other GregorianDate) bool {
	return other.Before(d)
}
