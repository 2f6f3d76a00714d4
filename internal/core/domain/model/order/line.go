package order

import (
	"errors"
	"fmt"

	"waiterbot/internal/pkg/errs"
	"waiterbot/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through one of the Line factory functions.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or NewCompositeLine constructors")

// Line is one entry of an order: either a bare dish name ("Pizza") or a
// composite additional request ("Burger no pickles"). Both forms are held
// uniformly as a single string value.
type Line struct {
	value string

	guard guard.ConstructorGuard
}

// NewLine creates a Line from a dish name or an already-formatted composite
// value. The value must be non-empty. Validity against the menu is the
// resolver's concern, checked at append time, not here.
func NewLine(value string) (Line, error) {
	if value == "" {
		return Line{}, errs.NewValueIsRequiredError("value")
	}

	return Line{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewCompositeLine creates the composite "{food} {modifier} {ingredient}"
// line of an additional request. All three parts are required.
func NewCompositeLine(food, modifier, ingredient string) (Line, error) {
	if food == "" {
		return Line{}, errs.NewValueIsRequiredError("food")
	}
	if modifier == "" {
		return Line{}, errs.NewValueIsRequiredError("modifier")
	}
	if ingredient == "" {
		return Line{}, errs.NewValueIsRequiredError("ingredient")
	}

	return Line{
		value: fmt.Sprintf("%s %s %s", food, modifier, ingredient),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line was created through a constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Value returns the textual form of the line.
func (l Line) Value() string {
	return l.value
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return l.value
}
