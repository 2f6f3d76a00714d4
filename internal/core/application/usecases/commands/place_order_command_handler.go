package commands

import (
	"context"
	"errors"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/order"
	"waiterbot/internal/core/domain/services"
	"waiterbot/internal/pkg/errs"
)

// OrderTurnResult is the outcome of one ordering turn: the resolution
// classification plus the messages to send back to the user, in order.
type OrderTurnResult struct {
	Outcome  order.Outcome
	Messages []string
}

// PlaceOrderCommandHandler handles plain ordering turns (no modifiers or
// ingredients). Resolves the turn against the menu, appends the accepted
// lines to the session's order slot, and composes the reply.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, resolver)
//	cmd, _ := NewPlaceOrderCommand(sessionID, userTurn)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("ordering turn failed: %w", err)
//	}
//	// result.Messages holds the assistant's reply
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.OrderResolver
	composer   services.ResponseComposer
}

// NewPlaceOrderCommandHandler creates a handler for plain ordering turns.
// Requires an OrderUoWFactory for transactional persistence and the
// resolver bound to the menu catalog.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory, resolver services.OrderResolver,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		composer:   services.NewResponseComposer(),
	}
}

// Handle processes the ordering turn.
// Resolves the turn first; only outcomes that accepted at least one item
// touch storage. Uses a transaction so the slot is updated atomically or
// left untouched on error.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (OrderTurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderTurnResult{}, err
	}

	res, err := h.resolver.ResolveOrder(cmd.Turn())
	if err != nil {
		return OrderTurnResult{}, err
	}

	if res.Outcome.MutatesOrder() {
		if err = appendToOrderSlot(ctx, h.uowFactory, cmd.SessionID(), res.Lines); err != nil {
			return OrderTurnResult{}, err
		}
	}

	return OrderTurnResult{
		Outcome:  res.Outcome,
		Messages: h.composer.Compose(res),
	}, nil
}

// appendToOrderSlot loads the session's order slot (creating an empty one
// for a first-time session), appends the lines, and saves it back, all
// within one transaction.
func appendToOrderSlot(
	ctx context.Context, uowFactory OrderUoWFactory, sessionID kernel.UUID, lines []order.Line,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if aggregate, err = order.NewOrder(sessionID); err != nil {
			return err
		}
	}

	if err = aggregate.Append(lines); err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
