package queries

import (
	"errors"
	"strconv"

	"waiterbot/internal/core/domain/model/schedule"
	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/core/domain/services"
	"waiterbot/internal/pkg/errs"
)

// CheckIsOpenQueryHandler answers is-open questions from the immutable
// weekly schedule.
type CheckIsOpenQueryHandler struct {
	week     schedule.Week
	composer services.ResponseComposer
}

// NewCheckIsOpenQueryHandler creates a handler for is-open queries bound to
// the given weekly schedule.
func NewCheckIsOpenQueryHandler(week schedule.Week) (CheckIsOpenQueryHandler, error) {
	if err := week.Validate(); err != nil {
		return CheckIsOpenQueryHandler{}, err
	}

	return CheckIsOpenQueryHandler{
		week:     week,
		composer: services.NewResponseComposer(),
	}, nil
}

// Handle executes the query.
// A turn missing the day or the time entity, or carrying a time that is not
// a number, gets a clarification. A day the schedule has no entry for gets
// the unknown-day message.
func (h CheckIsOpenQueryHandler) Handle(query CheckIsOpenQuery) (CheckIsOpenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckIsOpenQueryResponse{}, err
	}

	day, dayOK := query.Turn().First(turn.Day)
	timeValue, timeOK := query.Turn().First(turn.Time)
	if !dayOK || !timeOK {
		return CheckIsOpenQueryResponse{Messages: h.composer.ComposeMissingDayAndTime()}, nil
	}

	hour, err := strconv.Atoi(timeValue)
	if err != nil {
		return CheckIsOpenQueryResponse{Messages: h.composer.ComposeMissingDayAndTime()}, nil
	}

	hours, err := h.week.HoursFor(day)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CheckIsOpenQueryResponse{Messages: h.composer.ComposeUnknownDay()}, nil
		}
		return CheckIsOpenQueryResponse{}, err
	}

	return CheckIsOpenQueryResponse{
		Messages: h.composer.ComposeIsOpen(day, hour, hours.IsOpenAt(hour)),
	}, nil
}
