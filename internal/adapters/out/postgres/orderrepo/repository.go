package orderrepo

import (
	"context"
	"errors"
	"time"

	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/order"
	"waiterbot/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves the order slot of a session.
func (r *GormOrderRepository) Get(ctx context.Context, sessionID kernel.UUID) (*order.Order, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "session_id = ?", sessionID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", sessionID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the order slot, inserting the row or replacing the stored
// lines. Also refreshes the last-activity timestamp.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// Delete removes the order slot of a session. Deleting an absent slot is
// not an error.
func (r *GormOrderRepository) Delete(ctx context.Context, sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&OrderDTO{}, "session_id = ?", sessionID.Bytes()).Error
}

// DeleteAbandonedBefore removes every slot whose last activity is older
// than the cutoff and returns the number of slots removed.
func (r *GormOrderRepository) DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&OrderDTO{})

	return result.RowsAffected, result.Error
}
