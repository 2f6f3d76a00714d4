package queries

import (
	"errors"

	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/pkg/guard"
)

var ErrCheckIsOpenQueryIsNotConstructed = errors.New(
	"CheckIsOpenQuery must be created via NewCheckIsOpenQuery constructor",
)

// CheckIsOpenQuery answers "are you open on {day} at {time}?". Carries the
// user's turn; the day and hour are read from its extracted entities.
type CheckIsOpenQuery struct { //nolint:recvcheck //using for validation
	turn turn.Turn

	guard guard.ConstructorGuard
}

// NewCheckIsOpenQuery creates a query for an is-open check.
// Validates that the turn is fully constructed.
func NewCheckIsOpenQuery(questionTurn turn.Turn) (CheckIsOpenQuery, error) {
	query := CheckIsOpenQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTurn(questionTurn); err != nil {
		return CheckIsOpenQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckIsOpenQueryIsNotConstructed if validation fails.
func (q CheckIsOpenQuery) Validate() error {
	return q.guard.Validate(ErrCheckIsOpenQueryIsNotConstructed)
}

// Turn returns the utterance with its extracted entities.
func (q CheckIsOpenQuery) Turn() turn.Turn {
	return q.turn
}

func (q *CheckIsOpenQuery) setTurn(questionTurn turn.Turn) error {
	if err := questionTurn.Validate(); err != nil {
		return err
	}

	q.turn = questionTurn
	return nil
}

// CheckIsOpenQueryResponse holds the assistant's reply: whether the
// restaurant is open at the asked day and hour, or a clarification when
// either entity is missing or unusable.
type CheckIsOpenQueryResponse struct {
	Messages []string
}
