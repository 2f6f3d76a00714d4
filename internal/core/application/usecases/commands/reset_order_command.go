package commands

import (
	"errors"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/pkg/guard"
)

var ErrResetOrderCommandIsNotConstructed = errors.New(
	"ResetOrderCommand must be created via NewResetOrderCommand constructor",
)

// ResetOrderCommand represents a reset of a session's order slot, issued
// when the conversation went stale without a confirmation.
type ResetOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetOrderCommand creates a command to reset a session's order.
// Validates that the session ID is fully constructed.
func NewResetOrderCommand(sessionID kernel.UUID) (ResetOrderCommand, error) {
	resetCommand := ResetOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resetCommand.setSessionID(sessionID); err != nil {
		return ResetOrderCommand{}, err
	}

	return resetCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetOrderCommandIsNotConstructed if validation fails.
func (c ResetOrderCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderCommandIsNotConstructed)
}

// SessionID returns the conversation session identifier.
func (c ResetOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *ResetOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
