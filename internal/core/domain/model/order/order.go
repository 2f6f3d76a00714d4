package order

import (
	"errors"
	"strings"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// Order is the in-progress order of one conversation session: the aggregate
// root holding the session's accumulated order lines.
//
// Order follows these invariants:
//   - It is owned by exactly one session, identified by a valid UUID
//   - The line sequence is append-only until cleared; insertion order is
//     preserved and significant
//   - Every line's item component was valid against the menu catalog at the
//     moment it was appended (checked by the resolver, not re-validated here)
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate is not safe for concurrent mutation; the host dialogue
// runtime guarantees at most one in-flight resolution per session.
type Order struct {
	// sessionID identifies the owning conversation session
	sessionID kernel.UUID

	// lines is the accumulated order, in insertion order
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an empty order slot for the given session. This is the
// state every conversation starts in.
func NewOrder(sessionID kernel.UUID) (*Order, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		sessionID:     sessionID,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence with its accumulated
// lines. Every line must have been built via a Line constructor.
func RestoreOrder(sessionID kernel.UUID, lines []Line) (*Order, error) {
	o, err := NewOrder(sessionID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if lineErr := line.Validate(); lineErr != nil {
			return nil, lineErr
		}
	}
	o.lines = append([]Line(nil), lines...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// SessionID returns the identifier of the owning session.
func (o *Order) SessionID() kernel.UUID {
	return o.sessionID
}

// Lines returns the accumulated order lines in insertion order.
// The returned slice is a copy.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// IsEmpty reports whether nothing has been ordered yet (or the slot was
// cleared).
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Append extends the order with the given lines, preserving both the prior
// order and the order of the new lines. The line list must be non-empty;
// resolutions that accepted nothing must not call Append.
func (o *Order) Append(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = append(o.lines, lines...)
	return nil
}

// Clear empties the order slot. Called on confirm (unconditionally, before
// the user has answered the correctness question) and on reset.
func (o *Order) Clear() {
	o.lines = nil
}

// Summary returns the full order joined by commas, as read back to the user
// in the confirmation message.
func (o *Order) Summary() string {
	values := make([]string, len(o.lines))
	for i, line := range o.lines {
		values[i] = line.Value()
	}
	return strings.Join(values, ", ")
}
