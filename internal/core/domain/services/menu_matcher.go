package services

import (
	"waiterbot/internal/core/domain/model/menu"
)

// MenuMatcher classifies requested dish names as available or unavailable
// against the menu catalog. Comparison is case-insensitive; the matcher has
// no side effects.
type MenuMatcher struct{}

// NewMenuMatcher creates a new MenuMatcher instance.
func NewMenuMatcher() MenuMatcher {
	return MenuMatcher{}
}

// Partition splits the requested names into those on the menu and those not,
// preserving the order of the input in both outputs. Re-partitioning the
// available output returns it unchanged as fully available.
func (MenuMatcher) Partition(names []string, catalog menu.Catalog) (available, unavailable []string, err error) {
	if err = catalog.Validate(); err != nil {
		return nil, nil, err
	}

	for _, name := range names {
		if catalog.Contains(name) {
			available = append(available, name)
		} else {
			unavailable = append(unavailable, name)
		}
	}

	return available, unavailable, nil
}
