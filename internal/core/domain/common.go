package domain

import "time"

// DocumentTimes holds the two clocks every business document carries: the time
// the client claims the event happened and the canonical server time.
type DocumentTimes struct {
	ClientTime *time.Time `json:"clientTime,omitempty"`
	ServerTime time.Time  `json:"serverTime"`
}

// Calendar selects how dates are rendered in business identifiers and how
// financial years are bounded.
type Calendar string

const (
	CalendarGregorian Calendar = "gregorian"
	CalendarJalali    Calendar = "jalali"
)

// Label is the human readable calendar name.
func (c Calendar) Label() string {
	switch c {
	case CalendarJalali:
		return "Jalali"
	default:
		return "Gregorian"
	}
}
