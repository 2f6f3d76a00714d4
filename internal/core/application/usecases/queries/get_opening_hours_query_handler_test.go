package queries_test

import (
	"testing"

	"waiterbot/internal/core/application/usecases/queries"
	"waiterbot/internal/core/domain/model/schedule"
	"waiterbot/internal/core/domain/model/turn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeek(t *testing.T) schedule.Week {
	t.Helper()

	weekday, err := schedule.NewDayHours(10, 16)
	require.NoError(t, err)
	saturday, err := schedule.NewDayHours(12, 22)
	require.NoError(t, err)

	week, err := schedule.NewWeek(map[string]schedule.DayHours{
		"Monday":   weekday,
		"Friday":   weekday,
		"Saturday": saturday,
	})
	require.NoError(t, err)
	return week
}

func questionTurn(t *testing.T, text string, entities ...turn.Entity) turn.Turn {
	t.Helper()

	result, err := turn.NewTurn(text, entities)
	require.NoError(t, err)
	return result
}

func scheduleEntity(t *testing.T, kind turn.Kind, value string) turn.Entity {
	t.Helper()

	result, err := turn.NewEntity(kind, value)
	require.NoError(t, err)
	return result
}

func TestGetOpeningHoursQueryHandler_Handle(t *testing.T) {
	handler, err := queries.NewGetOpeningHoursQueryHandler(testWeek(t))
	require.NoError(t, err)

	t.Run("answers with the day's hours", func(t *testing.T) {
		query, err := queries.NewGetOpeningHoursQuery(questionTurn(t,
			"When are you open on Friday?",
			scheduleEntity(t, turn.Day, "Friday"),
		))
		require.NoError(t, err)

		response, err := handler.Handle(query)

		require.NoError(t, err)
		assert.Equal(t,
			[]string{"On Friday the restaurant is open from 10 to 16."},
			response.Messages)
	})

	t.Run("asks for the day when the entity is missing", func(t *testing.T) {
		query, err := queries.NewGetOpeningHoursQuery(questionTurn(t, "When are you open?"))
		require.NoError(t, err)

		response, err := handler.Handle(query)

		require.NoError(t, err)
		assert.Equal(t,
			[]string{"Sorry, I didn't understand which day you're asking about."},
			response.Messages)
	})

	t.Run("reports an unknown day", func(t *testing.T) {
		query, err := queries.NewGetOpeningHoursQuery(questionTurn(t,
			"When are you open on Doomsday?",
			scheduleEntity(t, turn.Day, "Doomsday"),
		))
		require.NoError(t, err)

		response, err := handler.Handle(query)

		require.NoError(t, err)
		assert.Equal(t,
			[]string{"Sorry, I don't have information for that day."},
			response.Messages)
	})

	t.Run("rejects a query created via the default constructor", func(t *testing.T) {
		_, err := handler.Handle(queries.GetOpeningHoursQuery{})

		assert.ErrorIs(t, err, queries.ErrGetOpeningHoursQueryIsNotConstructed)
	})
}
