package commands

import (
	"context"
	"errors"

	"waiterbot/internal/core/domain/model/order"
	"waiterbot/internal/core/domain/services"
	"waiterbot/internal/pkg/errs"
)

// ConfirmOrderResult holds the assistant's reply to a confirmation turn:
// the order summary and correctness question, or the farewell when nothing
// was ordered.
type ConfirmOrderResult struct {
	Messages []string
}

// ConfirmOrderCommandHandler handles the confirmation step. Reads the
// session's order back to the user and clears the slot unconditionally,
// before the user has answered the correctness question; a "no" answer
// starts a fresh order rather than editing the old one.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.ResponseComposer
}

// NewConfirmOrderCommandHandler creates a handler for confirmation turns.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewResponseComposer(),
	}
}

// Handle processes the confirmation command.
// A session with no stored slot is treated as an empty order and gets the
// farewell. The slot is deleted in the same transaction that read it.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (ConfirmOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	var lines []order.Line
	aggregate, err := orderRepo.Get(ctx, cmd.SessionID())
	switch {
	case err == nil:
		lines = aggregate.Lines()
	case errors.Is(err, errs.ErrObjectNotFound):
	default:
		return ConfirmOrderResult{}, err
	}

	if err = orderRepo.Delete(ctx, cmd.SessionID()); err != nil {
		return ConfirmOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmOrderResult{}, err
	}

	return ConfirmOrderResult{Messages: h.composer.ComposeConfirmation(lines)}, nil
}
