// Package queries contains read-only operations of the conversation flow.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers answer from the immutable menu and schedule; they never
// touch the order-slot storage.
package queries

import (
	"errors"

	"waiterbot/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the menu rendered for chat display.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler, _ := NewGetMenuQueryHandler(catalog)
//
//	response, err := handler.Handle(query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menu: %w", err)
//	}
//	fmt.Println(response.Messages[0])
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the menu.
// This is a parameterless query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse holds the assistant's reply: the menu as one
// markdown-table message.
type GetMenuQueryResponse struct {
	Messages []string
}
