package wareki

import (
	"strconv"
	"strings"
	"time"
)

// Era identifies a Japanese imperial era.
type Era int

// Built-in eras, oldest first.
const (
	Meiji Era = iota
	Taisho
	Showa
	Heisei
	Reiwa
)

var eraNames = [...]string{
	Meiji:  "Meiji",
	Taisho: "Taisho",
	Showa:  "Showa",
	Heisei: "Heisei",
	Reiwa:  "Reiwa",
}

// String returns the romanized name of a built-in era (e.g. "Reiwa"), or
// "Era(n)" for eras defined only by a custom table.
func (e Era) String() string {
	if e >= 0 && int(e) < len(eraNames) {
		return eraNames[e]
	}
	return "Era(" + strconv.Itoa(int(e)) + ")"
}

// EraDefinition describes one era and the day it began.
type EraDefinition struct {
	Era   Era
	Name  string        // Display name, e.g. "令和".
	Short string        // One-character abbreviation, e.g. "令".
	Code  string        // Romanized code, e.g. "R". Matched case-insensitively.
	Start GregorianDate // First day of the era (inclusive).
}

// matches reports whether designator names this era. Name and Short match
// exactly; Code matches after lowercasing both sides, so only letters whose
// lowercase forms agree are equal ("r" and "R", but not "ſ" and "S").
func (def EraDefinition) matches(designator string) bool {
	if designator == "" {
		return false
	}
	return designator == def.Name ||
		designator == def.Short ||
		(def.Code != "" && strings.ToLower(designator) == strings.ToLower(def.Code))
}

// builtinEras is the era table, newest first. Meiji's start is the
// Gregorian equivalent of Meiji 1-01-01 in the lunisolar calendar.
var builtinEras = []EraDefinition{
	{Era: Reiwa, Name: "令和", Short: "令", Code: "R", Start: mustDate(2019, time.May, 1)},
	{Era: Heisei, Name: "平成", Short: "平", Code: "H", Start: mustDate(1989, time.January, 8)},
	{Era: Showa, Name: "昭和", Short: "昭", Code: "S", Start: mustDate(1926, time.December, 25)},
	{Era: Taisho, Name: "大正", Short: "大", Code: "T", Start: mustDate(1912, time.July, 30)},
	{Era: Meiji, Name: "明治", Short: "明", Code: "M", Start: mustDate(1868, time.January, 25)},
}
