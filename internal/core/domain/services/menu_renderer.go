package services

import (
	"fmt"
	"strings"

	"waiterbot/internal/core/domain/model/menu"
)

// MenuRenderer renders the menu catalog as a markdown table for chat
// display. Column widths fit the longest cell and every cell is centered.
type MenuRenderer struct{}

// NewMenuRenderer creates a new MenuRenderer instance.
func NewMenuRenderer() MenuRenderer {
	return MenuRenderer{}
}

// Render returns the catalog as a fenced markdown table with Name, Price,
// and Preparation_time columns.
func (MenuRenderer) Render(catalog menu.Catalog) (string, error) {
	if err := catalog.Validate(); err != nil {
		return "", err
	}

	const (
		nameHeader  = "Name"
		priceHeader = "Price"
		prepHeader  = "Preparation_time"
	)

	nameWidth := len(nameHeader)
	priceWidth := len(priceHeader)
	prepWidth := len(prepHeader)
	for _, item := range catalog.Items() {
		nameWidth = max(nameWidth, len(item.Name()))
		priceWidth = max(priceWidth, len(item.Price()))
		prepWidth = max(prepWidth, len(item.PreparationTime()))
	}

	var b strings.Builder
	b.WriteString("```markdown\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		center(nameHeader, nameWidth), center(priceHeader, priceWidth), center(prepHeader, prepWidth))
	fmt.Fprintf(&b, "|%s|%s|%s|\n",
		strings.Repeat("-", nameWidth+2), strings.Repeat("-", priceWidth+2), strings.Repeat("-", prepWidth+2))
	for _, item := range catalog.Items() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			center(item.Name(), nameWidth), center(item.Price(), priceWidth), center(item.PreparationTime(), prepWidth))
	}
	b.WriteString("```")

	return b.String(), nil
}

// center pads s with spaces to width, leaving the extra space on the right
// when the padding is odd.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
