package commands

import (
	"context"
	"time"
)

// ResetAbandonedOrdersCommandHandler drops the order slots of sessions that
// stopped responding. Runs from the background sweep job rather than from a
// conversation turn, so it produces no user messages.
type ResetAbandonedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewResetAbandonedOrdersCommandHandler creates a handler for the
// abandoned-slot sweep. Requires an OrderUoWFactory for transactional
// persistence.
func NewResetAbandonedOrdersCommandHandler(uowFactory OrderUoWFactory) ResetAbandonedOrdersCommandHandler {
	return ResetAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the sweep command.
// Removes every slot whose last activity is older than now minus the
// command's threshold and returns the number of slots removed.
func (h *ResetAbandonedOrdersCommandHandler) Handle(ctx context.Context, cmd ResetAbandonedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.now().Add(-cmd.OlderThan())
	removed, err := uow.OrderRepository().DeleteAbandonedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
