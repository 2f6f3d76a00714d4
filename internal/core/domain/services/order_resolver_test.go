package services_test

import (
	"testing"

	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/core/domain/model/order"
	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTurn(t *testing.T, text string, entities ...turn.Entity) turn.Turn {
	t.Helper()

	result, err := turn.NewTurn(text, entities)
	require.NoError(t, err)
	return result
}

func entity(t *testing.T, kind turn.Kind, value string) turn.Entity {
	t.Helper()

	result, err := turn.NewEntity(kind, value)
	require.NoError(t, err)
	return result
}

func lineValues(lines []order.Line) []string {
	values := make([]string, len(lines))
	for i, line := range lines {
		values[i] = line.Value()
	}
	return values
}

func TestOrderResolver_ResolveOrder(t *testing.T) {
	resolver, err := services.NewOrderResolver(testCatalog(t))
	require.NoError(t, err)

	t.Run("single available item is a full success", func(t *testing.T) {
		res, err := resolver.ResolveOrder(mustTurn(t,
			"I want a Pizza",
			entity(t, turn.Food, "Pizza"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.FullSuccess, res.Outcome)
		assert.Equal(t, []string{"Pizza"}, lineValues(res.Lines))
		assert.Zero(t, res.Remaining())
	})

	t.Run("all extracted items available is a full success", func(t *testing.T) {
		res, err := resolver.ResolveOrder(mustTurn(t,
			"I'd like to order the Pizza and the Burger",
			entity(t, turn.Food, "Pizza"),
			entity(t, turn.Food, "Burger"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.FullSuccess, res.Outcome)
		assert.Equal(t, []string{"Pizza", "Burger"}, lineValues(res.Lines))
		assert.Equal(t, 2, res.Requested)
		assert.Equal(t, 2, res.Extracted)
	})

	t.Run("one of three items off the menu is a partial success", func(t *testing.T) {
		res, err := resolver.ResolveOrder(mustTurn(t,
			"Give me a Pizza, Taco, Burger",
			entity(t, turn.Food, "Pizza"),
			entity(t, turn.Food, "Taco"),
			entity(t, turn.Food, "Burger"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.PartialSuccess, res.Outcome)
		assert.Equal(t, []string{"Pizza", "Burger"}, lineValues(res.Lines))
		assert.Equal(t, []string{"Taco"}, res.Unavailable)
		assert.Equal(t, 1, res.Remaining())
	})

	t.Run("nothing available is a total failure", func(t *testing.T) {
		res, err := resolver.ResolveOrder(mustTurn(t,
			"Sushi and Ramen please",
			entity(t, turn.Food, "Sushi"),
			entity(t, turn.Food, "Ramen"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.TotalFailure, res.Outcome)
		assert.Empty(t, res.Lines)
		assert.Equal(t, []string{"Sushi", "Ramen"}, res.Unavailable)
	})

	t.Run("incomplete extraction with items left over is a partial success", func(t *testing.T) {
		// Three items named, two extracted, both available: the third one
		// never made it past extraction.
		res, err := resolver.ResolveOrder(mustTurn(t,
			"Pizza, Burger and Taco",
			entity(t, turn.Food, "Pizza"),
			entity(t, turn.Food, "Burger"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.PartialSuccess, res.Outcome)
		assert.Equal(t, []string{"Pizza", "Burger"}, lineValues(res.Lines))
		assert.Equal(t, 3, res.Requested)
		assert.Equal(t, 2, res.Extracted)
		assert.Equal(t, 1, res.Remaining())
	})

	t.Run("over-extraction covering the estimate is a full success", func(t *testing.T) {
		// The estimate undercounts ("Pizza Burger" has no delimiter) but
		// everything extracted is available.
		res, err := resolver.ResolveOrder(mustTurn(t,
			"Pizza Burger",
			entity(t, turn.Food, "Pizza"),
			entity(t, turn.Food, "Burger"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.FullSuccess, res.Outcome)
		assert.Equal(t, []string{"Pizza", "Burger"}, lineValues(res.Lines))
		assert.Equal(t, 1, res.Requested)
		assert.Equal(t, 2, res.Extracted)
	})

	t.Run("no food entities at all is a total failure", func(t *testing.T) {
		res, err := resolver.ResolveOrder(mustTurn(t, "I am hungry"))

		require.NoError(t, err)
		assert.Equal(t, order.TotalFailure, res.Outcome)
		assert.Empty(t, res.Lines)
	})

	t.Run("returns an error for a turn created via the default constructor", func(t *testing.T) {
		_, err := resolver.ResolveOrder(turn.Turn{})

		assert.ErrorIs(t, err, turn.ErrTurnIsNotConstructed)
	})
}

func TestOrderResolver_ResolveAdditionalRequest(t *testing.T) {
	resolver, err := services.NewOrderResolver(testCatalog(t))
	require.NoError(t, err)

	t.Run("item with allowed modification is a full success", func(t *testing.T) {
		res, err := resolver.ResolveAdditionalRequest(mustTurn(t,
			"I want a Burger but no pickles",
			entity(t, turn.Food, "Burger"),
			entity(t, turn.Modifier, "no"),
			entity(t, turn.Ingredient, "pickles"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.FullSuccess, res.Outcome)
		assert.Equal(t, []string{"Burger no pickles"}, lineValues(res.Lines))
	})

	t.Run("two modified items are paired positionally", func(t *testing.T) {
		res, err := resolver.ResolveAdditionalRequest(mustTurn(t,
			"Burger no pickles and Pizza with cheese",
			entity(t, turn.Food, "Burger"),
			entity(t, turn.Food, "Pizza"),
			entity(t, turn.Modifier, "no"),
			entity(t, turn.Modifier, "with"),
			entity(t, turn.Ingredient, "pickles"),
			entity(t, turn.Ingredient, "cheese"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.FullSuccess, res.Outcome)
		assert.Equal(t, []string{"Burger no pickles", "Pizza with cheese"}, lineValues(res.Lines))
	})

	t.Run("incomplete extraction makes the order over-complex", func(t *testing.T) {
		// Two items named, one extracted.
		res, err := resolver.ResolveAdditionalRequest(mustTurn(t,
			"Burger and Pizza no pickles",
			entity(t, turn.Food, "Burger"),
			entity(t, turn.Modifier, "no"),
			entity(t, turn.Ingredient, "pickles"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.OverComplex, res.Outcome)
		assert.Empty(t, res.Lines)
	})

	t.Run("unavailable item makes the order over-complex", func(t *testing.T) {
		res, err := resolver.ResolveAdditionalRequest(mustTurn(t,
			"Taco no onions",
			entity(t, turn.Food, "Taco"),
			entity(t, turn.Modifier, "no"),
			entity(t, turn.Ingredient, "onions"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.OverComplex, res.Outcome)
		assert.Empty(t, res.Lines)
	})

	t.Run("off-whitelist ingredient makes the request unfulfillable", func(t *testing.T) {
		res, err := resolver.ResolveAdditionalRequest(mustTurn(t,
			"Burger no caviar",
			entity(t, turn.Food, "Burger"),
			entity(t, turn.Modifier, "no"),
			entity(t, turn.Ingredient, "caviar"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.RequestUnfulfillable, res.Outcome)
		assert.Empty(t, res.Lines)
		assert.Equal(t, 1, res.Extracted)
	})

	t.Run("missing modifier makes the request unfulfillable", func(t *testing.T) {
		res, err := resolver.ResolveAdditionalRequest(mustTurn(t,
			"Burger pickles",
			entity(t, turn.Food, "Burger"),
			entity(t, turn.Ingredient, "pickles"),
		))

		require.NoError(t, err)
		assert.Equal(t, order.RequestUnfulfillable, res.Outcome)
		assert.Empty(t, res.Lines)
	})

	t.Run("returns an error for a turn created via the default constructor", func(t *testing.T) {
		_, err := resolver.ResolveAdditionalRequest(turn.Turn{})

		assert.ErrorIs(t, err, turn.ErrTurnIsNotConstructed)
	})
}

func TestNewOrderResolver_RejectsUnconstructedCatalog(t *testing.T) {
	_, err := services.NewOrderResolver(menu.Catalog{})

	assert.ErrorIs(t, err, menu.ErrCatalogIsNotConstructed)
}
