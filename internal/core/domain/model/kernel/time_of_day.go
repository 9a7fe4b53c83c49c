package kernel

import (
	"errors"
	"fmt"
	"time"

	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	// MinutesPerDay is the number of schedule minutes in one calendar day.
	MinutesPerDay = hoursPerDay * minutesPerHour
)

// ErrTimeOfDayIsNotConstructed is returned when validating a zero-value
// TimeOfDay that did not come from one of the constructors.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeOfDay must be created via NewTimeOfDay, ParseTimeOfDay, or TimeOfDayFromTime")

// TimeOfDay is a wall-clock schedule value ("HH:MM") with no calendar
// date attached. Stops carry arrival and departure times of day; the
// calendar date is chosen only when an order pins a course to today or
// tomorrow.
//
// Comparisons between two TimeOfDay values are therefore date-blind:
// 23:30 is always later than 01:15, with no wrap-around semantics.
type TimeOfDay struct { //nolint:recvcheck //using for validation
	minutes int

	guard guard.ConstructorGuard
}

// NewTimeOfDay builds a TimeOfDay from an hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{guard: guard.NewConstructorGuard()}

	if err := errors.Join(t.setHour(hour), t.setMinute(minute)); err != nil {
		return TimeOfDay{}, err
	}

	return t, nil
}

// ParseTimeOfDay parses the "HH:MM" wire format used by schedules.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("timeOfDay", err)
	}
	return NewTimeOfDay(parsed.Hour(), parsed.Minute())
}

// TimeOfDayFromTime extracts the wall-clock portion of a timestamp.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		minutes: t.Hour()*minutesPerHour + t.Minute(),
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate rejects a zero-value TimeOfDay.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return t.minutes / minutesPerHour
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return t.minutes % minutesPerHour
}

// Minutes returns the value as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// MinutesAfter returns how many minutes this value lies after other
// within the same calendar day. Negative when this value is earlier.
func (t TimeOfDay) MinutesAfter(other TimeOfDay) int {
	return t.minutes - other.minutes
}

// On pins the time of day to the calendar date of the given timestamp,
// in that timestamp's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String renders the "HH:MM" wire format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// IsEqual reports whether two constructed values denote the same minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) (bool, error) {
	if err := errors.Join(t.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return t.minutes == other.minutes, nil
}

func (t *TimeOfDay) setHour(hour int) error {
	if hour < 0 || hour >= hoursPerDay {
		return errs.NewValueIsOutOfRangeError("hour", hour, 0, hoursPerDay-1)
	}
	t.minutes += hour * minutesPerHour
	return nil
}

func (t *TimeOfDay) setMinute(minute int) error {
	if minute < 0 || minute >= minutesPerHour {
		return errs.NewValueIsOutOfRangeError("minute", minute, 0, minutesPerHour-1)
	}
	t.minutes += minute
	return nil
}
