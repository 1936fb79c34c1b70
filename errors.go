package wareki

import "errors"

// Sentinel errors returned by conversions. Returned errors wrap one of these
// with the offending input; compare with [errors.Is].
var (
	// ErrInvalidGregorianDate is returned when a year/month/day triple is not
	// a real calendar date (e.g. Feb 30, or Feb 29 in a common year).
	ErrInvalidGregorianDate = errors.New("wareki: invalid gregorian date")

	// ErrDateOutOfRange is returned when a date precedes the earliest era.
	ErrDateOutOfRange = errors.New("wareki: date is before the earliest supported era")

	// ErrInvalidEraYear is returned for an era year below 1.
	ErrInvalidEraYear = errors.New("wareki: era year must be at least 1")

	// ErrUnknownEra is returned when a designator matches no era.
	ErrUnknownEra = errors.New("wareki: unknown era")

	// ErrDateBeforeEraStart is returned when a wareki date falls before the
	// start of the era it names.
	ErrDateBeforeEraStart = errors.New("wareki: date is before the start of the era")

	// ErrDateAfterEraEnd is returned when a wareki date falls on or after the
	// start of the following era.
	ErrDateAfterEraEnd = errors.New("wareki: date is after the end of the era")

	// ErrSyntax is returned by [Parse] for text that is not a wareki date.
	ErrSyntax = errors.New("wareki: malformed wareki date")

	// ErrInvalidTable is returned by [New] for an inconsistent era table.
	ErrInvalidTable = errors.New("wareki: invalid era table")
)
