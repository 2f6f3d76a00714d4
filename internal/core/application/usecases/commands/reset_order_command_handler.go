package commands

import (
	"context"

	"waiterbot/internal/core/domain/services"
)

// ResetOrderResult holds the assistant's reset notice.
type ResetOrderResult struct {
	Messages []string
}

// ResetOrderCommandHandler handles session resets: the order slot is
// dropped and the user is told to order again.
type ResetOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.ResponseComposer
}

// NewResetOrderCommandHandler creates a handler for session resets.
// Requires an OrderUoWFactory for transactional persistence.
func NewResetOrderCommandHandler(uowFactory OrderUoWFactory) ResetOrderCommandHandler {
	return ResetOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewResponseComposer(),
	}
}

// Handle processes the reset command. Deleting an absent slot is not an
// error; the user gets the reset notice either way.
func (h *ResetOrderCommandHandler) Handle(ctx context.Context, cmd ResetOrderCommand) (ResetOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResetOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResetOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.SessionID()); err != nil {
		return ResetOrderResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ResetOrderResult{}, err
	}

	return ResetOrderResult{Messages: h.composer.ComposeReset()}, nil
}
