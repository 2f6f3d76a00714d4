package services

import (
	"errors"

	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/core/domain/model/order"
)

var (
	// ErrUnbalancedRequest is returned when the food, modifier, and ingredient
	// sequences of an additional request have unequal lengths. Pairing fails
	// outright rather than silently truncating to the shortest sequence,
	// which would drop an item the user stated.
	ErrUnbalancedRequest = errors.New("foods, modifiers, and ingredients must be equal in number")

	// ErrIngredientsNotAllowed is returned when the request names ingredients
	// that are not all on the ingredient whitelist. The augmentation is
	// rejected as a whole; there is no partial augmentation.
	ErrIngredientsNotAllowed = errors.New("not every requested ingredient is allowed")
)

// RequestAugmentor pairs extracted food, modifier, and ingredient entities
// into the composite lines of an "item with modification" order, e.g.
// "Burger no pickles". Pairing is positional: the i-th food goes with the
// i-th modifier and the i-th ingredient.
type RequestAugmentor struct{}

// NewRequestAugmentor creates a new RequestAugmentor instance.
func NewRequestAugmentor() RequestAugmentor {
	return RequestAugmentor{}
}

// Pair builds the composite "{food} {modifier} {ingredient}" lines by
// positional correspondence across the three sequences.
//
// The pairing is accepted as a whole or rejected as a whole:
//   - unequal sequence lengths fail with ErrUnbalancedRequest
//   - the count of whitelist-valid ingredients must equal the number of
//     requested items, otherwise Pair fails with ErrIngredientsNotAllowed
func (RequestAugmentor) Pair(foods, modifiers, ingredients []string) ([]order.Line, error) {
	if len(foods) != len(modifiers) || len(foods) != len(ingredients) {
		return nil, ErrUnbalancedRequest
	}

	allowed := 0
	for _, ingredient := range ingredients {
		if menu.IngredientAllowed(ingredient) {
			allowed++
		}
	}
	if allowed != len(foods) {
		return nil, ErrIngredientsNotAllowed
	}

	lines := make([]order.Line, 0, len(foods))
	for i := range foods {
		line, err := order.NewCompositeLine(foods[i], modifiers[i], ingredients[i])
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
