package commands

import (
	"errors"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/pkg/guard"
)

var ErrPlaceAdditionalRequestOrderCommandIsNotConstructed = errors.New(
	"PlaceAdditionalRequestOrderCommand must be created via NewPlaceAdditionalRequestOrderCommand constructor",
)

// PlaceAdditionalRequestOrderCommand represents an ordering turn that
// carries modifier and ingredient entities ("Burger no pickles"): the
// session it belongs to and the utterance with its extracted entities.
type PlaceAdditionalRequestOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	turn      turn.Turn

	guard guard.ConstructorGuard
}

// NewPlaceAdditionalRequestOrderCommand creates a command to process an
// ordering turn with additional requests.
// Validates that the session ID and the turn are fully constructed.
// Returns an error if any validation fails.
func NewPlaceAdditionalRequestOrderCommand(
	sessionID kernel.UUID, orderTurn turn.Turn,
) (PlaceAdditionalRequestOrderCommand, error) {
	placeCommand := PlaceAdditionalRequestOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setSessionID(sessionID),
		placeCommand.setTurn(orderTurn),
	); err != nil {
		return PlaceAdditionalRequestOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceAdditionalRequestOrderCommandIsNotConstructed if validation fails.
func (c PlaceAdditionalRequestOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceAdditionalRequestOrderCommandIsNotConstructed)
}

// SessionID returns the conversation session identifier.
func (c PlaceAdditionalRequestOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Turn returns the utterance with its extracted entities.
func (c PlaceAdditionalRequestOrderCommand) Turn() turn.Turn {
	return c.turn
}

func (c *PlaceAdditionalRequestOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *PlaceAdditionalRequestOrderCommand) setTurn(orderTurn turn.Turn) error {
	if err := orderTurn.Validate(); err != nil {
		return err
	}

	c.turn = orderTurn
	return nil
}
