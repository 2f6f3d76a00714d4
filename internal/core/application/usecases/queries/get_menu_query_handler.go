package queries

import (
	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/core/domain/services"
)

// GetMenuQueryHandler renders the menu catalog for chat display.
type GetMenuQueryHandler struct {
	catalog  menu.Catalog
	renderer services.MenuRenderer
}

// NewGetMenuQueryHandler creates a handler for menu queries bound to the
// given catalog.
func NewGetMenuQueryHandler(catalog menu.Catalog) (GetMenuQueryHandler, error) {
	if err := catalog.Validate(); err != nil {
		return GetMenuQueryHandler{}, err
	}

	return GetMenuQueryHandler{
		catalog:  catalog,
		renderer: services.NewMenuRenderer(),
	}, nil
}

// Handle executes the query and returns the menu as a single markdown-table
// message.
func (h GetMenuQueryHandler) Handle(query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	table, err := h.renderer.Render(h.catalog)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	return GetMenuQueryResponse{Messages: []string{table}}, nil
}
