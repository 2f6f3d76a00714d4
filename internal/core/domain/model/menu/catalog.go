package menu

import (
	"errors"
	"strings"

	"waiterbot/internal/pkg/errs"
	"waiterbot/internal/pkg/guard"
)

// ErrCatalogIsNotConstructed is returned when a Catalog instance was not
// created through the NewCatalog factory function.
var ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")

// Catalog is the process-wide, read-only set of menu items. It is built once
// at startup from the reference data and injected into the resolver; nothing
// mutates it afterwards, so it may be shared freely between sessions.
//
// Lookups are case-insensitive exact matches on the item name.
type Catalog struct {
	items  []Item
	byName map[string]Item

	guard guard.ConstructorGuard
}

// NewCatalog creates a Catalog from the given items. The item list must be
// non-empty and every item must have been built via NewItem. When two items
// share a name (compared case-insensitively) the first one wins for lookups;
// both stay listed.
func NewCatalog(items []Item) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, errs.NewValueIsRequiredError("items")
	}

	byName := make(map[string]Item, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Catalog{}, err
		}

		key := strings.ToLower(item.Name())
		if _, ok := byName[key]; !ok {
			byName[key] = item
		}
	}

	return Catalog{
		items:  append([]Item(nil), items...),
		byName: byName,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Catalog was created through NewCatalog.
func (c Catalog) Validate() error {
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Items returns the catalog entries in their listing order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Contains reports whether a dish with the given name is on the menu,
// comparing names case-insensitively.
func (c Catalog) Contains(name string) bool {
	_, ok := c.byName[strings.ToLower(name)]
	return ok
}

// Find returns the menu item with the given name (case-insensitive).
// Returns an ObjectNotFoundError when no such dish exists.
func (c Catalog) Find(name string) (Item, error) {
	item, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Item{}, errs.NewObjectNotFoundError("name", name)
	}
	return item, nil
}
