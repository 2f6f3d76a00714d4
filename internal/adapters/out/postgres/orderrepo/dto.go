// Package orderrepo provides data transfer objects and mapping functions for
// order-slot persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order slots.
// One row per conversation session; the accumulated lines are stored as a
// text array, and UpdatedAt carries the last-activity timestamp the
// abandoned-slot sweep filters on.
type OrderDTO struct {
	SessionID uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Lines     pq.StringArray `gorm:"type:text[]"`
	UpdatedAt time.Time      `gorm:"index"`
}

// TableName specifies the database table name for order slots.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// UpdatedAt is left zero; GORM fills it on every save.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	values := make(pq.StringArray, len(lines))
	for i, line := range lines {
		values[i] = line.Value()
	}

	return OrderDTO{
		SessionID: aggregate.SessionID().Bytes(),
		Lines:     values,
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete slot with its accumulated lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	sessionID, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, value := range dto.Lines {
		line, lineErr := order.NewLine(value)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(sessionID, lines)
}
