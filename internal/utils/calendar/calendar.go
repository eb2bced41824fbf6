// Package calendar renders dates and year boundaries in the calendars the
// bookkeeping core supports: Gregorian and Jalali (Solar Hijri).
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	ptime "github.com/yaa110/go-persian-calendar"
)

// Resolve maps a calendar name to a known calendar. An empty name selects fallback.
func Resolve(name string, fallback domain.Calendar) (domain.Calendar, error) {
	switch domain.Calendar(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return fallback, nil
	case domain.CalendarGregorian:
		return domain.CalendarGregorian, nil
	case domain.CalendarJalali, "persian", "shamsi":
		return domain.CalendarJalali, nil
	}
	return "", fmt.Errorf("%w: unknown calendar %q", apperrors.ErrValidation, name)
}

// DateStamp formats t as YYYYMMDD in the given calendar, using t's own location.
func DateStamp(cal domain.Calendar, t time.Time) string {
	if cal == domain.CalendarJalali {
		pt := ptime.New(t)
		return fmt.Sprintf("%04d%02d%02d", pt.Year(), int(pt.Month()), pt.Day())
	}
	return t.Format("20060102")
}

// YearOf returns the calendar year t falls in.
func YearOf(cal domain.Calendar, t time.Time) int {
	if cal == domain.CalendarJalali {
		return ptime.New(t).Year()
	}
	return t.Year()
}

// YearBounds returns the first and last instant of a calendar year in loc.
// The end is one microsecond before the next year starts so it survives
// storage at microsecond precision.
func YearBounds(cal domain.Calendar, year int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	var start, next time.Time
	if cal == domain.CalendarJalali {
		first := ptime.Date(year, ptime.Farvardin, 1, 0, 0, 0, 0, loc)
		following := ptime.Date(year+1, ptime.Farvardin, 1, 0, 0, 0, 0, loc)
		start, next = first.Time(), following.Time()
	} else {
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		next = time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	}
	return start, next.Add(-time.Microsecond)
}
