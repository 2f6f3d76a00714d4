package queries

import (
	"errors"

	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/pkg/guard"
)

var ErrGetOpeningHoursQueryIsNotConstructed = errors.New(
	"GetOpeningHoursQuery must be created via NewGetOpeningHoursQuery constructor",
)

// GetOpeningHoursQuery answers "when are you open on {day}?". Carries the
// user's turn; the day is read from its extracted entities.
type GetOpeningHoursQuery struct { //nolint:recvcheck //using for validation
	turn turn.Turn

	guard guard.ConstructorGuard
}

// NewGetOpeningHoursQuery creates a query for a day's opening hours.
// Validates that the turn is fully constructed.
func NewGetOpeningHoursQuery(questionTurn turn.Turn) (GetOpeningHoursQuery, error) {
	query := GetOpeningHoursQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTurn(questionTurn); err != nil {
		return GetOpeningHoursQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpeningHoursQueryIsNotConstructed if validation fails.
func (q GetOpeningHoursQuery) Validate() error {
	return q.guard.Validate(ErrGetOpeningHoursQueryIsNotConstructed)
}

// Turn returns the utterance with its extracted entities.
func (q GetOpeningHoursQuery) Turn() turn.Turn {
	return q.turn
}

func (q *GetOpeningHoursQuery) setTurn(questionTurn turn.Turn) error {
	if err := questionTurn.Validate(); err != nil {
		return err
	}

	q.turn = questionTurn
	return nil
}

// GetOpeningHoursQueryResponse holds the assistant's reply: the opening
// hours of the asked day, or a clarification when the day is missing or
// unknown.
type GetOpeningHoursQueryResponse struct {
	Messages []string
}
