package menu

import "strings"

// allowedIngredients returns the fixed set of ingredient names an additional
// request may refer to. The whitelist is a compile-time constant of the
// restaurant, independent of what is currently on the menu.
func allowedIngredients() map[string]struct{} {
	return map[string]struct{}{
		"tomatoes": {},
		"meat":     {},
		"mustard":  {},
		"pickles":  {},
		"ketchup":  {},
		"onions":   {},
		"cheese":   {},
	}
}

// IngredientAllowed reports whether the given ingredient name is on the
// whitelist, comparing case-insensitively.
func IngredientAllowed(name string) bool {
	_, ok := allowedIngredients()[strings.ToLower(name)]
	return ok
}
