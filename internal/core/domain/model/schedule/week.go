// Package schedule models the restaurant's opening hours: one half-open hour
// interval [open, close) per weekday. Like the menu catalog, the schedule is
// loaded once at startup and read-only afterwards.
package schedule

import (
	"errors"

	"waiterbot/internal/pkg/errs"
	"waiterbot/internal/pkg/guard"
)

var (
	// ErrDayHoursAreNotConstructed is returned when a DayHours instance was not
	// created through the NewDayHours factory function.
	ErrDayHoursAreNotConstructed = errors.New("DayHours must be created via NewDayHours constructor")

	// ErrWeekIsNotConstructed is returned when a Week instance was not created
	// through the NewWeek factory function.
	ErrWeekIsNotConstructed = errors.New("Week must be created via NewWeek constructor")
)

// Hour bounds for a single day. Close may be 24 for a day that runs to midnight.
const (
	minHour = 0
	maxHour = 24
)

// DayHours is the opening interval of a single day, as whole hours.
// The restaurant is open at hour h when open <= h < close.
type DayHours struct { //nolint:recvcheck //using for validation
	open  int
	close int

	guard guard.ConstructorGuard
}

// NewDayHours creates a validated DayHours. Both bounds must lie within
// [0, 24] and the opening hour must precede the closing hour.
func NewDayHours(open, close int) (DayHours, error) {
	hours := DayHours{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		hours.setOpen(open),
		hours.setClose(close),
	); err != nil {
		return DayHours{}, err
	}

	if open >= close {
		return DayHours{}, errs.NewValueIsInvalidError("open must be before close")
	}

	return hours, nil
}

// Validate ensures the DayHours was created through NewDayHours.
func (d DayHours) Validate() error {
	return d.guard.Validate(ErrDayHoursAreNotConstructed)
}

// Open returns the opening hour of the day.
func (d DayHours) Open() int {
	return d.open
}

// Close returns the closing hour of the day.
func (d DayHours) Close() int {
	return d.close
}

// IsOpenAt reports whether the restaurant is open at the given hour.
// The interval is half-open: the closing hour itself counts as closed.
func (d DayHours) IsOpenAt(hour int) bool {
	return d.open <= hour && hour < d.close
}

func (d *DayHours) setOpen(open int) error {
	if open < minHour || open > maxHour {
		return errs.NewValueIsOutOfRangeError("open", open, minHour, maxHour)
	}
	d.open = open
	return nil
}

func (d *DayHours) setClose(close int) error {
	if close < minHour || close > maxHour {
		return errs.NewValueIsOutOfRangeError("close", close, minHour, maxHour)
	}
	d.close = close
	return nil
}

// Week maps weekday names (e.g. "Wednesday") to their opening hours.
// Days the restaurant has no information for are simply absent.
type Week struct {
	days map[string]DayHours

	guard guard.ConstructorGuard
}

// NewWeek creates a Week from the given day table. Every entry must have been
// built via NewDayHours. An empty table is allowed; HoursFor then reports
// every day as unknown.
func NewWeek(days map[string]DayHours) (Week, error) {
	copied := make(map[string]DayHours, len(days))
	for day, hours := range days {
		if day == "" {
			return Week{}, errs.NewValueIsRequiredError("day")
		}
		if err := hours.Validate(); err != nil {
			return Week{}, err
		}
		copied[day] = hours
	}

	return Week{
		days:  copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Week was created through NewWeek.
func (w Week) Validate() error {
	return w.guard.Validate(ErrWeekIsNotConstructed)
}

// HoursFor returns the opening hours for the given weekday name.
// Returns an ObjectNotFoundError for days the schedule has no entry for.
func (w Week) HoursFor(day string) (DayHours, error) {
	hours, ok := w.days[day]
	if !ok {
		return DayHours{}, errs.NewObjectNotFoundError("day", day)
	}
	return hours, nil
}
