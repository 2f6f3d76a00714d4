package queries

import (
	"errors"

	"waiterbot/internal/core/domain/model/schedule"
	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/core/domain/services"
	"waiterbot/internal/pkg/errs"
)

// GetOpeningHoursQueryHandler answers opening-hours questions from the
// immutable weekly schedule.
type GetOpeningHoursQueryHandler struct {
	week     schedule.Week
	composer services.ResponseComposer
}

// NewGetOpeningHoursQueryHandler creates a handler for opening-hours
// queries bound to the given weekly schedule.
func NewGetOpeningHoursQueryHandler(week schedule.Week) (GetOpeningHoursQueryHandler, error) {
	if err := week.Validate(); err != nil {
		return GetOpeningHoursQueryHandler{}, err
	}

	return GetOpeningHoursQueryHandler{
		week:     week,
		composer: services.NewResponseComposer(),
	}, nil
}

// Handle executes the query.
// A turn without a day entity gets a clarification; a day the schedule has
// no entry for gets the unknown-day message.
func (h GetOpeningHoursQueryHandler) Handle(query GetOpeningHoursQuery) (GetOpeningHoursQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOpeningHoursQueryResponse{}, err
	}

	day, ok := query.Turn().First(turn.Day)
	if !ok {
		return GetOpeningHoursQueryResponse{Messages: h.composer.ComposeMissingDay()}, nil
	}

	hours, err := h.week.HoursFor(day)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return GetOpeningHoursQueryResponse{Messages: h.composer.ComposeUnknownDay()}, nil
		}
		return GetOpeningHoursQueryResponse{}, err
	}

	return GetOpeningHoursQueryResponse{
		Messages: h.composer.ComposeOpeningHours(day, hours.Open(), hours.Close()),
	}, nil
}
