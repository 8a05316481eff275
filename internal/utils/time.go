package utils

import (
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/constants"
)

// Clock supplies the current time. Injecting a fixed clock makes every
// "today" computation deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

// DayKey normalizes an instant to its local calendar-day key (YYYY-MM-DD).
// Two instants map to the same key iff they fall on the same local calendar day.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the calendar-day key for the clock's current instant.
func Today(clock Clock) string {
	return DayKey(clock.Now())
}

// ParseDayKey parses a YYYY-MM-DD day key into a midnight-local time.Time.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// PreviousDay returns the day key one calendar day before the given key.
func PreviousDay(key string) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, -1)), nil
}

// ValidDayKey reports whether the string is a well-formed YYYY-MM-DD day key.
func ValidDayKey(key string) bool {
	_, err := ParseDayKey(key)
	return err == nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// FormatClock renders a remaining-seconds value as MM:SS for countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatFocusTotal renders total focus minutes as "Xh Ym".
func FormatFocusTotal(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
