package queries

import (
	"errors"
	"time"

	"waiterbot/internal/core/domain/model/schedule"
	"waiterbot/internal/core/domain/services"
	"waiterbot/internal/pkg/errs"
)

// CheckCurrentlyOpenQueryHandler answers current-time is-open questions
// from the immutable weekly schedule and the server clock.
type CheckCurrentlyOpenQueryHandler struct {
	week     schedule.Week
	composer services.ResponseComposer
	now      func() time.Time
}

// NewCheckCurrentlyOpenQueryHandler creates a handler for current-time
// is-open queries bound to the given weekly schedule.
func NewCheckCurrentlyOpenQueryHandler(week schedule.Week) (CheckCurrentlyOpenQueryHandler, error) {
	if err := week.Validate(); err != nil {
		return CheckCurrentlyOpenQueryHandler{}, err
	}

	return CheckCurrentlyOpenQueryHandler{
		week:     week,
		composer: services.NewResponseComposer(),
		now:      time.Now,
	}, nil
}

// Handle executes the query against the current server time.
// Stays silent when the schedule has no entry for the current weekday; the
// dialogue runtime supplies the fallback reply.
func (h CheckCurrentlyOpenQueryHandler) Handle(query CheckCurrentlyOpenQuery) (CheckCurrentlyOpenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckCurrentlyOpenQueryResponse{}, err
	}

	current := h.now()
	hours, err := h.week.HoursFor(current.Weekday().String())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CheckCurrentlyOpenQueryResponse{}, nil
		}
		return CheckCurrentlyOpenQueryResponse{}, err
	}

	return CheckCurrentlyOpenQueryResponse{
		Messages: h.composer.ComposeCurrentlyOpen(hours.IsOpenAt(current.Hour())),
	}, nil
}
