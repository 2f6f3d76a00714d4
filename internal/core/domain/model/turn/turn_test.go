package turn_test

import (
	"testing"

	"waiterbot/internal/core/domain/model/turn"
	"waiterbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntity(t *testing.T, kind turn.Kind, value string) turn.Entity {
	t.Helper()
	e, err := turn.NewEntity(kind, value)
	require.NoError(t, err)
	return e
}

func TestNewEntity(t *testing.T) {
	t.Run("should create valid entity", func(t *testing.T) {
		e, err := turn.NewEntity(turn.Food, "Pizza")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, turn.Food, e.Kind())
		assert.Equal(t, "Pizza", e.Value())
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := turn.NewEntity(turn.UnknownKind, "Pizza")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := turn.NewEntity(turn.Food, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestKind(t *testing.T) {
	t.Run("String returns wire names", func(t *testing.T) {
		assert.Equal(t, "food", turn.Food.String())
		assert.Equal(t, "ingredient", turn.Ingredient.String())
		assert.Equal(t, "modifier", turn.Modifier.String())
		assert.Equal(t, "day", turn.Day.String())
		assert.Equal(t, "time", turn.Time.String())
		assert.Equal(t, "unknown", turn.UnknownKind.String())
		assert.Equal(t, "unknown", turn.Kind(99).String())
	})

	t.Run("KindFromString parses wire names", func(t *testing.T) {
		for _, name := range []string{"food", "ingredient", "modifier", "day", "time"} {
			kind, err := turn.KindFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, kind.String())
		}
	})

	t.Run("KindFromString rejects unknown names", func(t *testing.T) {
		_, err := turn.KindFromString("emotion")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("Validate rejects UnknownKind", func(t *testing.T) {
		require.Error(t, turn.UnknownKind.Validate())
		require.NoError(t, turn.Food.Validate())
	})
}

func TestNewTurn(t *testing.T) {
	t.Run("should create turn with entities", func(t *testing.T) {
		entities := []turn.Entity{
			mustEntity(t, turn.Food, "Pizza"),
			mustEntity(t, turn.Food, "Burger"),
		}

		tn, err := turn.NewTurn("the Pizza and the Burger", entities)

		require.NoError(t, err)
		require.NoError(t, tn.Validate())
		assert.Equal(t, "the Pizza and the Burger", tn.Text())
		assert.Len(t, tn.Entities(), 2)
	})

	t.Run("should allow a turn without entities", func(t *testing.T) {
		tn, err := turn.NewTurn("is it open on Sunday?", nil)

		require.NoError(t, err)
		assert.Empty(t, tn.Entities())
	})

	t.Run("should reject empty text", func(t *testing.T) {
		_, err := turn.NewTurn("", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed entities", func(t *testing.T) {
		_, err := turn.NewTurn("a Pizza", []turn.Entity{{}})

		require.Error(t, err)
		assert.Equal(t, turn.ErrEntityIsNotConstructed, err)
	})
}

func TestTurn_Values(t *testing.T) {
	tn, err := turn.NewTurn("Burger no pickles and Pizza extra cheese", []turn.Entity{
		mustEntity(t, turn.Food, "Burger"),
		mustEntity(t, turn.Modifier, "no"),
		mustEntity(t, turn.Ingredient, "pickles"),
		mustEntity(t, turn.Food, "Pizza"),
		mustEntity(t, turn.Modifier, "extra"),
		mustEntity(t, turn.Ingredient, "cheese"),
	})
	require.NoError(t, err)

	t.Run("preserves order of appearance per kind", func(t *testing.T) {
		assert.Equal(t, []string{"Burger", "Pizza"}, tn.Values(turn.Food))
		assert.Equal(t, []string{"no", "extra"}, tn.Values(turn.Modifier))
		assert.Equal(t, []string{"pickles", "cheese"}, tn.Values(turn.Ingredient))
	})

	t.Run("absent kind yields empty slice", func(t *testing.T) {
		assert.Empty(t, tn.Values(turn.Day))
	})
}

func TestTurn_First(t *testing.T) {
	tn, err := turn.NewTurn("are you open on Wednesday at 11?", []turn.Entity{
		mustEntity(t, turn.Day, "Wednesday"),
		mustEntity(t, turn.Time, "11"),
	})
	require.NoError(t, err)

	t.Run("returns first value of the kind", func(t *testing.T) {
		day, ok := tn.First(turn.Day)
		assert.True(t, ok)
		assert.Equal(t, "Wednesday", day)
	})

	t.Run("reports absence", func(t *testing.T) {
		_, ok := tn.First(turn.Food)
		assert.False(t, ok)
	})
}
