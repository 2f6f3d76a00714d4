package ports

import (
	"context"
	"time"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for per-session order
// slots. Each conversation session owns at most one slot; saving replaces
// the stored lines wholesale.
type OrderRepository interface {
	// Get retrieves the order slot of a session.
	// Returns errs.ObjectNotFoundError when the session has no stored slot;
	// callers treat that as an empty order.
	Get(ctx context.Context, sessionID kernel.UUID) (*order.Order, error)

	// Save persists the order slot, inserting or replacing the stored lines.
	// Saving also refreshes the slot's last-activity timestamp.
	Save(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order slot of a session.
	// Deleting an absent slot is not an error.
	Delete(ctx context.Context, sessionID kernel.UUID) error

	// DeleteAbandonedBefore removes every slot whose last activity is older
	// than the cutoff. Returns the number of slots removed.
	DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
