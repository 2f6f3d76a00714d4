package schedule_test

import (
	"testing"

	"waiterbot/internal/core/domain/model/schedule"
	"waiterbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayHours(t *testing.T) {
	t.Run("should create valid hours", func(t *testing.T) {
		hours, err := schedule.NewDayHours(10, 16)

		require.NoError(t, err)
		require.NoError(t, hours.Validate())
		assert.Equal(t, 10, hours.Open())
		assert.Equal(t, 16, hours.Close())
	})

	t.Run("should allow closing at midnight", func(t *testing.T) {
		hours, err := schedule.NewDayHours(18, 24)

		require.NoError(t, err)
		assert.True(t, hours.IsOpenAt(23))
	})

	t.Run("should reject out-of-range bounds", func(t *testing.T) {
		_, err := schedule.NewDayHours(-1, 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject open at or after close", func(t *testing.T) {
		_, err := schedule.NewDayHours(16, 10)
		require.Error(t, err)

		_, err = schedule.NewDayHours(10, 10)
		require.Error(t, err)
	})
}

func TestDayHours_IsOpenAt(t *testing.T) {
	hours, err := schedule.NewDayHours(10, 16)
	require.NoError(t, err)

	t.Run("interval is half-open", func(t *testing.T) {
		assert.True(t, hours.IsOpenAt(10), "opening hour is open")
		assert.True(t, hours.IsOpenAt(15))
		assert.False(t, hours.IsOpenAt(16), "closing hour is closed")
		assert.False(t, hours.IsOpenAt(9))
	})
}

func TestNewWeek(t *testing.T) {
	t.Run("should create a week from valid days", func(t *testing.T) {
		wednesday, err := schedule.NewDayHours(10, 16)
		require.NoError(t, err)

		week, err := schedule.NewWeek(map[string]schedule.DayHours{
			"Wednesday": wednesday,
		})

		require.NoError(t, err)
		require.NoError(t, week.Validate())
	})

	t.Run("should reject unconstructed day hours", func(t *testing.T) {
		_, err := schedule.NewWeek(map[string]schedule.DayHours{
			"Monday": {}, // zero value
		})

		require.Error(t, err)
		assert.Equal(t, schedule.ErrDayHoursAreNotConstructed, err)
	})

	t.Run("should allow an empty week", func(t *testing.T) {
		week, err := schedule.NewWeek(nil)

		require.NoError(t, err)
		_, hoursErr := week.HoursFor("Monday")
		require.ErrorIs(t, hoursErr, errs.ErrObjectNotFound)
	})
}

func TestWeek_HoursFor(t *testing.T) {
	wednesday, err := schedule.NewDayHours(10, 16)
	require.NoError(t, err)
	week, err := schedule.NewWeek(map[string]schedule.DayHours{
		"Wednesday": wednesday,
	})
	require.NoError(t, err)

	t.Run("known day returns its hours", func(t *testing.T) {
		hours, hoursErr := week.HoursFor("Wednesday")

		require.NoError(t, hoursErr)
		assert.True(t, hours.IsOpenAt(11))
	})

	t.Run("unknown day returns ObjectNotFound", func(t *testing.T) {
		_, hoursErr := week.HoursFor("Sunday")

		require.Error(t, hoursErr)
		require.ErrorIs(t, hoursErr, errs.ErrObjectNotFound)
	})
}
