package commands

import (
	"errors"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents one ordering turn of a conversation: the
// session it belongs to and the utterance with its extracted entities.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(sessionID, userTurn)
//	if err != nil {
//	    return fmt.Errorf("invalid ordering turn: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, resolver)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Println(strings.Join(result.Messages, "\n"))
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	turn      turn.Turn

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to process an ordering turn.
// Validates that the session ID and the turn are fully constructed.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(sessionID kernel.UUID, orderTurn turn.Turn) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setSessionID(sessionID),
		placeCommand.setTurn(orderTurn),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// SessionID returns the conversation session identifier.
func (c PlaceOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Turn returns the utterance with its extracted entities.
func (c PlaceOrderCommand) Turn() turn.Turn {
	return c.turn
}

func (c *PlaceOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *PlaceOrderCommand) setTurn(orderTurn turn.Turn) error {
	if err := orderTurn.Validate(); err != nil {
		return err
	}

	c.turn = orderTurn
	return nil
}
