package commands

import (
	"context"

	"waiterbot/internal/core/domain/services"
)

// PlaceAdditionalRequestOrderCommandHandler handles ordering turns with
// modifier and ingredient entities. Resolves the turn through the stricter
// additional-request path, appends the composite lines on success, and
// composes the reply.
type PlaceAdditionalRequestOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.OrderResolver
	composer   services.ResponseComposer
}

// NewPlaceAdditionalRequestOrderCommandHandler creates a handler for
// ordering turns with additional requests.
// Requires an OrderUoWFactory for transactional persistence and the
// resolver bound to the menu catalog.
func NewPlaceAdditionalRequestOrderCommandHandler(
	uowFactory OrderUoWFactory, resolver services.OrderResolver,
) PlaceAdditionalRequestOrderCommandHandler {
	return PlaceAdditionalRequestOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		composer:   services.NewResponseComposer(),
	}
}

// Handle processes the ordering turn.
// Resolves the turn first; only a fully successful resolution touches
// storage. Uses a transaction so the slot is updated atomically or left
// untouched on error.
func (h *PlaceAdditionalRequestOrderCommandHandler) Handle(
	ctx context.Context, cmd PlaceAdditionalRequestOrderCommand,
) (OrderTurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderTurnResult{}, err
	}

	res, err := h.resolver.ResolveAdditionalRequest(cmd.Turn())
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
