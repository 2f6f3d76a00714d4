package queries

import (
	"errors"

	"waiterbot/internal/pkg/guard"
)

var ErrCheckCurrentlyOpenQueryIsNotConstructed = errors.New(
	"CheckCurrentlyOpenQuery must be created via NewCheckCurrentlyOpenQuery constructor",
)

// CheckCurrentlyOpenQuery answers "are you open right now?". The day and
// hour come from the server clock, not from the user's turn.
type CheckCurrentlyOpenQuery struct {
	guard guard.ConstructorGuard
}

// NewCheckCurrentlyOpenQuery creates a query for a current-time is-open
// check. This is a parameterless query.
func NewCheckCurrentlyOpenQuery() CheckCurrentlyOpenQuery {
	return CheckCurrentlyOpenQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckCurrentlyOpenQueryIsNotConstructed if validation fails.
func (q CheckCurrentlyOpenQuery) Validate() error {
	return q.guard.Validate(ErrCheckCurrentlyOpenQueryIsNotConstructed)
}

// CheckCurrentlyOpenQueryResponse holds the assistant's reply: whether the
// restaurant is open at this moment. Empty when the schedule has no entry
// for the current weekday.
type CheckCurrentlyOpenQueryResponse struct {
	Messages []string
}
