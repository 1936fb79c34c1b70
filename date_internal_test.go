package wareki

import (
	"errors"
	"testing"
	"time"
)

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := GregorianDate{Year: 2026, Month: time.January, Day: 1}
	if d1.Before(d1) {
		t.Error("equal dates: d.Before(d) should be false")
	}
	if d1.After(d1) {
		t.Error("equal dates: d.After(d) should be false")
	}
}

func TestDateBefore_SameYearSameMonth(t *testing.T) {
	t.Parallel()

	d1 := GregorianDate{Year: 2026, Month: time.January, Day: 1}
	d2 := GregorianDate{Year: 2026, Month: time.January, Day: 15}
	if !d1.Before(d2) {
		t.Error("Jan 1 should be before Jan 15")
	}
	if d2.Before(d1) {
		t.Error("Jan 15 should not be before Jan 1")
	}
}

func TestDateBefore_SameYearDifferentMonth(t *testing.T) {
	t.Parallel()

	d1 := GregorianDate{Year: 2026, Month: time.January, Day: 31}
	d2 := GregorianDate{Year: 2026, Month: time.February, Day: 1}
	if !d1.Before(d2) {
		t.Error("Jan 31 should be before Feb 1")
	}
}

func TestDateBefore_DifferentYear(t *testing.T) {
	t.Parallel()

	d1 := GregorianDate{Year: 2025, Month: time.December, Day: 31}
	d2 := GregorianDate{Year: 2026, Month: time.January, Day: 1}
	if !d1.Before(d2) {
		t.Error("2025-12-31 should be before 2026-01-01")
	}
	if !d2.After(d1) {
		t.Error("2026-01-01 should be after 2025-12-31")
	}
}

func TestDate_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.February, 29},
		{2000, time.February, 29},
		{2023, time.December, 31},
		{1868, time.January, 25},
		{2023, time.April, 30},
	}
	for _, tt := range tests {
		got, err := Date(tt.year, tt.month, tt.day)
		if err != nil {
			t.Errorf("Date(%d, %d, %d) unexpected error: %v", tt.year, tt.month, tt.day, err)
			continue
		}
		want := GregorianDate{Year: tt.year, Month: tt.month, Day: tt.day}
		if got != want {
			t.Errorf("Date(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, want)
		}
	}
}

func TestDate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"Feb 29 common year", 2023, time.February, 29},
		{"Feb 29 century", 1900, time.February, 29},
		{"Feb 30", 2024, time.February, 30},
		{"Apr 31", 2024, time.April, 31},
		{"day zero", 2024, time.January, 0},
		{"negative day", 2024, time.January, -1},
		{"month zero", 2024, 0, 1},
		{"month 13", 2024, 13, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Date(tt.year, tt.month, tt.day)
			if !errors.Is(err, ErrInvalidGregorianDate) {
				t.Errorf("Date(%d, %d, %d) error = %v, want ErrInvalidGregorianDate", tt.year, tt.month, tt.day, err)
			}
		})
	}
}

func TestDateFromTime_JST(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		time time.Time
		want GregorianDate
	}{
		{
			// 2019-04-30 15:00 UTC = 2019-05-01 00:00 JST
			"UTC afternoon is next day in JST",
			time.Date(2019, time.April, 30, 15, 0, 0, 0, time.UTC),
			GregorianDate{2019, time.May, 1},
		},
		{
			"UTC 14:59 is same day in JST",
			time.Date(2019, time.April, 30, 14, 59, 0, 0, time.UTC),
			GregorianDate{2019, time.April, 30},
		},
		{
			"JST late night",
			time.Date(1989, time.January, 7, 23, 59, 59, 0, jstZone),
			GregorianDate{1989, time.January, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateFromTime(tt.time); got != tt.want {
				t.Errorf("dateFromTime(%v) = %v, want %v", tt.time.Format(time.RFC3339), got, tt.want)
			}
		})
	}
}

func TestGregorianDate_StringAndTime(t *testing.T) {
	t.Parallel()

	d := GregorianDate{Year: 2024, Month: time.May, Day: 1}
	if got := d.String(); got != "2024-05-01" {
		t.Errorf("String() = %q, want 2024-05-01", got)
	}
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if got := d.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestDaysIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2100, time.February, 28},
		{2000, time.February, 29},
		{2024, time.December, 31},
		{2024, time.June, 30},
	}
	for _, tt := range tests {
		if got := daysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("daysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
