package wareki

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/width"
)

// gannen (元年) is the customary name for year 1 of an era.
const gannen = "元"

var (
	kanjiPattern = regexp.MustCompile(`^(\D+?)\s*(元|\d{1,3})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日$`)
	dotPattern   = regexp.MustCompile(`^(\D+?)\s*(元|\d{1,3})[./-](\d{1,2})[./-](\d{1,2})$`)
)

// EraYearDate is a wareki date as written, before validation against the
// era table. Era holds the designator verbatim.
type EraYearDate struct {
	Era   string
	Year  int
	Month time.Month
	Day   int
}

// Parse reads a written wareki date. Accepted forms include
//
//	令和6年5月1日
//	令6年5月1日
//	令和元年5月1日
//	R6.5.1
//	r06/05/01
//	H31-4-30
//
// Fullwidth digits and letters (令和６年５月１日, Ｒ６．５．１) are accepted.
// Parse checks syntax only; use [ParseGregorian] or [Converter.FromWareki]
// to validate the date against the era table.
func Parse(s string) (EraYearDate, error) {
	folded := strings.TrimSpace(width.Fold.String(s))

	m := kanjiPattern.FindStringSubmatch(folded)
	if m == nil {
		m = dotPattern.FindStringSubmatch(folded)
	}
	if m == nil {
		return EraYearDate{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	year := 1
	if m[2] != gannen {
		year, _ = strconv.Atoi(m[2])
	}
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	return EraYearDate{
		Era:   strings.TrimSpace(m[1]),
		Year:  year,
		Month: time.Month(month),
		Day:   day,
	}, nil
}

// ParseGregorian parses a written wareki date and converts it to the
// Gregorian calendar.
func (c *Converter) ParseGregorian(s string) (GregorianDate, error) {
	w, err := Parse(s)
	if err != nil {
		return GregorianDate{}, err
	}
	return c.FromWareki(w.Era, w.Year, w.Month, w.Day)
}

// ParseGregorian parses a written wareki date and converts it using the
// built-in era table.
func ParseGregorian(s string) (GregorianDate, error) { return defaultConv.ParseGregorian(s) }
