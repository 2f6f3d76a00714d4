package turn

import (
	"fmt"

	"waiterbot/internal/pkg/errs"
)

// Kind classifies an entity extracted from a user utterance. The extraction
// itself happens in an external NLU pipeline; the engine only consumes its
// typed output.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Food is the name of a dish the user wants to order.
	Food

	// Ingredient is an ingredient named in an additional request.
	Ingredient

	// Modifier is a modifier word attached to an additional request,
	// e.g. "no" or "extra".
	Modifier

	// Day is a weekday name in an opening-hours question.
	Day

	// Time is an hour-of-day value in an opening-hours question.
	Time
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Food:        "food",
		Ingredient:  "ingredient",
		Modifier:    "modifier",
		Day:         "day",
		Time:        "time",
	}
}

// getValidKindStrings returns only the kinds an entity may legitimately carry.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Food:       "food",
		Ingredient: "ingredient",
		Modifier:   "modifier",
		Day:        "day",
		Time:       "time",
	}
}

// Validate checks if the Kind value is valid.
// Valid kinds are Food, Ingredient, Modifier, Day, and Time.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the wire name of the kind ("food", "ingredient", ...).
// Implements fmt.Stringer and is safe on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// KindFromString parses the wire name of a kind as produced by the NLU
// pipeline. Returns an error for names the engine does not understand.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid kind", s))
}
