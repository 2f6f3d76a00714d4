package commands

import (
	"errors"
	"time"

	"waiterbot/internal/pkg/guard"
)

var (
	ErrResetAbandonedOrdersCommandIsNotConstructed = errors.New(
		"ResetAbandonedOrdersCommand must be created via NewResetAbandonedOrdersCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// ResetAbandonedOrdersCommand represents a sweep of order slots whose
// sessions went silent: every slot untouched for longer than olderThan is
// dropped.
type ResetAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewResetAbandonedOrdersCommand creates a command to sweep abandoned order
// slots. Validates that olderThan is positive.
func NewResetAbandonedOrdersCommand(olderThan time.Duration) (ResetAbandonedOrdersCommand, error) {
	sweepCommand := ResetAbandonedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setOlderThan(olderThan); err != nil {
		return ResetAbandonedOrdersCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetAbandonedOrdersCommandIsNotConstructed if validation fails.
func (c ResetAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrResetAbandonedOrdersCommandIsNotConstructed)
}

// OlderThan returns the inactivity threshold past which a slot counts as
// abandoned.
func (c ResetAbandonedOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *ResetAbandonedOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
