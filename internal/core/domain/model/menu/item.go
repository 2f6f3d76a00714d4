package menu

import (
	"errors"

	"waiterbot/internal/pkg/errs"
	"waiterbot/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single dish on the menu. It is an immutable value object holding
// the dish name, its price, and the expected preparation time.
//
// Item names need not be globally unique, but ordering lookups compare them
// case-insensitively, so "Pizza" and "pizza" refer to the same dish.
//
// Example:
//
//	item, err := menu.NewItem("Pizza", "10.50", "20 min")
//	if err != nil {
//	    // handle validation error
//	}
type Item struct { //nolint:recvcheck //using for validation
	name            string
	price           string
	preparationTime string

	guard guard.ConstructorGuard
}

// NewItem creates a menu Item with validation. All three attributes are
// required; the price is kept as its textual form since the engine never
// does arithmetic on it.
func NewItem(name, price, preparationTime string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setPreparationTime(preparationTime),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the dish name as printed on the menu.
func (i Item) Name() string {
	return i.name
}

// Price returns the textual price of the dish.
func (i Item) Price() string {
	return i.price
}

// PreparationTime returns the expected preparation time of the dish.
func (i Item) PreparationTime() string {
	return i.preparationTime
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price string) error {
	if price == "" {
		return errs.NewValueIsRequiredError("price")
	}
	i.price = price
	return nil
}

func (i *Item) setPreparationTime(preparationTime string) error {
	if preparationTime == "" {
		return errs.NewValueIsRequiredError("preparationTime")
	}
	i.preparationTime = preparationTime
	return nil
}
