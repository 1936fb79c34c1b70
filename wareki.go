// Package wareki converts between the Gregorian calendar and the Japanese
// imperial era calendar (和暦).
//
// The era table runs from Meiji (1868-01-25) to Reiwa and is compiled into
// this package. Each era covers the half-open interval from its own start
// date to the start of the following era; the newest era is open-ended.
// Dates before Meiji are not supported.
//
// Era years follow the usual wareki convention: the year in which an era
// begins is year 1, and the era year increments on every January 1, not on
// the anniversary of the era's start. Reiwa began on 2019-05-01, so
// 2019-12-31 is Reiwa 1 and 2020-01-01 is Reiwa 2.
//
// Basic usage with package-level functions:
//
//	w, _ := wareki.ToWareki(2024, time.May, 1)
//	w.String() // "令和6年"
//
//	d, _ := wareki.FromWareki("令和", 6, time.May, 1)
//	d.String() // "2024-05-01"
//
// Eras may be named by display name ("令和"), abbreviation ("令") or
// romanized code ("R" or "r").
//
// For a custom era table, create a Converter with [New].
package wareki

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Wareki is an era and an era-relative year.
type Wareki struct {
	Era  Era
	Name string // Display name of the era, e.g. "令和".
	Year int    // Era year, 1-based.
}

// String returns the wareki year, e.g. "令和8年".
func (w Wareki) String() string {
	return w.Name + strconv.Itoa(w.Year) + "年"
}

// Converter converts dates using a fixed era table.
// Create one with [New]. A Converter is immutable and safe for concurrent use.
type Converter struct {
	eras []EraDefinition // newest first
}

// New creates a Converter for the given era table, ordered newest first.
// With no arguments the built-in table is used.
//
// The table must be non-empty, start dates must be valid and strictly
// descending, every era needs a Name, no Era value may appear twice, and no
// designator may name two eras.
// Otherwise New returns an error wrapping [ErrInvalidTable].
func New(defs ...EraDefinition) (*Converter, error) {
	if len(defs) == 0 {
		defs = builtinEras
	}
	if err := validateTable(defs); err != nil {
		return nil, err
	}
	eras := make([]EraDefinition, len(defs))
	copy(eras, defs)
	return &Converter{eras: eras}, nil
}

func validateTable(defs []EraDefinition) error {
	// Designators and era identities are keyed by row, so two rows never
	// share either, even when they carry the same Era value.
	designators := make(map[string]int)
	identities := make(map[Era]int)
	claim := func(designator string, row int) error {
		if designator == "" {
			return nil
		}
		if prev, ok := designators[designator]; ok && prev != row {
			return fmt.Errorf("%w: designator %q names both %s and %s",
				ErrInvalidTable, designator, defs[prev].Name, defs[row].Name)
		}
		designators[designator] = row
		return nil
	}

	for i, def := range defs {
		if def.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidTable, i)
		}
		if prev, ok := identities[def.Era]; ok {
			return fmt.Errorf("%w: %s and %s are both %v", ErrInvalidTable, defs[prev].Name, def.Name, def.Era)
		}
		identities[def.Era] = i
		if _, err := Date(def.Start.Year, def.Start.Month, def.Start.Day); err != nil {
			return fmt.Errorf("%w: %s starts on an invalid date: %v", ErrInvalidTable, def.Name, err)
		}
		if i > 0 && !def.Start.Before(defs[i-1].Start) {
			return fmt.Errorf("%w: %s (%v) must start before %s (%v)",
				ErrInvalidTable, def.Name, def.Start, defs[i-1].Name, defs[i-1].Start)
		}
		if err := claim(def.Name, i); err != nil {
			return err
		}
		if err := claim(def.Short, i); err != nil {
			return err
		}
		if err := claim(strings.ToLower(def.Code), i); err != nil {
			return err
		}
	}
	return nil
}

// defaultConv is the package-level converter used by top-level functions.
var defaultConv = must(New())

func must(c *Converter, err error) *Converter {
	if err != nil {
		panic(err)
	}
	return c
}

// Eras returns a copy of the era table, newest first.
func (c *Converter) Eras() []EraDefinition {
	eras := make([]EraDefinition, len(c.eras))
	copy(eras, c.eras)
	return eras
}

// Lookup returns the era named by designator: its display name, its
// abbreviation, or its romanized code in any case.
func (c *Converter) Lookup(designator string) (EraDefinition, bool) {
	i := c.index(designator)
	if i < 0 {
		return EraDefinition{}, false
	}
	return c.eras[i], true
}

func (c *Converter) index(designator string) int {
	for i, def := range c.eras {
		if def.matches(designator) {
			return i
		}
	}
	return -1
}

// ToWareki converts a Gregorian date to its era and era year.
//
// It returns an error wrapping [ErrInvalidGregorianDate] if the date does not
// exist, or [ErrDateOutOfRange] if it precedes the earliest era.
func (c *Converter) ToWareki(year int, month time.Month, day int) (Wareki, error) {
	d, err := Date(year, month, day)
	if err != nil {
		return Wareki{}, err
	}
	return c.toWareki(d)
}

func (c *Converter) toWareki(d GregorianDate) (Wareki, error) {
	for _, def := range c.eras {
		if !d.Before(def.Start) {
			// Era years turn over on January 1.
			return Wareki{Era: def.Era, Name: def.Name, Year: d.Year - def.Start.Year + 1}, nil
		}
	}
	earliest := c.eras[len(c.eras)-1]
	return Wareki{}, fmt.Errorf("%w: %v precedes %s (%v)", ErrDateOutOfRange, d, earliest.Name, earliest.Start)
}

// FromTime converts the calendar date of t in JST (Asia/Tokyo, UTC+9) to its
// era and era year. The time of day is ignored.
func (c *Converter) FromTime(t time.Time) (Wareki, error) {
	return c.toWareki(dateFromTime(t))
}

// FromWareki converts an era date to the Gregorian calendar.
//
// It returns an error wrapping [ErrInvalidEraYear] if year < 1,
// [ErrUnknownEra] if era names no era, [ErrInvalidGregorianDate] if the
// month and day do not exist in the resulting year, and
// [ErrDateBeforeEraStart] or [ErrDateAfterEraEnd] if the date lies outside
// the named era. A date is never attributed to an era other than the one
// requested.
func (c *Converter) FromWareki(era string, year int, month time.Month, day int) (GregorianDate, error) {
	if year < 1 {
		return GregorianDate{}, fmt.Errorf("%w: got %d", ErrInvalidEraYear, year)
	}
	i := c.index(era)
	if i < 0 {
		return GregorianDate{}, fmt.Errorf("%w: %q", ErrUnknownEra, era)
	}
	def := c.eras[i]

	if def.Start.Year > 0 && year-1 > math.MaxInt-def.Start.Year {
		if i > 0 {
			return GregorianDate{}, fmt.Errorf("%w: %s%d年 is past %s (%v)",
				ErrDateAfterEraEnd, def.Name, year, c.eras[i-1].Name, c.eras[i-1].Start)
		}
		return GregorianDate{}, fmt.Errorf("%w: %s%d年 is out of range", ErrInvalidGregorianDate, def.Name, year)
	}
	d, err := Date(def.Start.Year+year-1, month, day)
	if err != nil {
		return GregorianDate{}, err
	}
	if d.Before(def.Start) {
		return GregorianDate{}, fmt.Errorf("%w: %s%d年%d月%d日 is %v, %s began %v",
			ErrDateBeforeEraStart, def.Name, year, int(month), day, d, def.Name, def.Start)
	}
	// The table is newest first, so the successor is the previous entry.
	if i > 0 {
		next := c.eras[i-1]
		if !d.Before(next.Start) {
			return GregorianDate{}, fmt.Errorf("%w: %s%d年%d月%d日 is %v, %s began %v",
				ErrDateAfterEraEnd, def.Name, year, int(month), day, d, next.Name, next.Start)
		}
	}
	return d, nil
}

// ToTime is like FromWareki but returns the date as midnight UTC.
func (c *Converter) ToTime(era string, year int, month time.Month, day int) (time.Time, error) {
	d, err := c.FromWareki(era, year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(), nil
}

// --- Package-level convenience functions ---

// ToWareki converts a Gregorian date using the built-in era table.
func ToWareki(year int, month time.Month, day int) (Wareki, error) {
	return defaultConv.ToWareki(year, month, day)
}

// FromWareki converts an era date using the built-in era table.
func FromWareki(era string, year int, month time.Month, day int) (GregorianDate, error) {
	return defaultConv.FromWareki(era, year, month, day)
}

// FromTime converts the JST calendar date of t using the built-in era table.
func FromTime(t time.Time) (Wareki, error) { return defaultConv.FromTime(t) }

// ToTime converts an era date to midnight UTC using the built-in era table.
func ToTime(era string, year int, month time.Month, day int) (time.Time, error) {
	return defaultConv.ToTime(era, year, month, day)
}

// Lookup returns the built-in era named by designator.
func Lookup(designator string) (EraDefinition, bool) { return defaultConv.Lookup(designator) }

// Eras returns the built-in era table, newest first.
func Eras() []EraDefinition { return defaultConv.Eras() }
