package menu_test

import (
	"testing"

	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name, price, prep string) menu.Item {
	t.Helper()
	item, err := menu.NewItem(name, price, prep)
	require.NoError(t, err)
	return item
}

func TestNewCatalog(t *testing.T) {
	t.Run("should create catalog from valid items", func(t *testing.T) {
		items := []menu.Item{
			mustItem(t, "Pizza", "10.50", "20 min"),
			mustItem(t, "Burger", "7.00", "10 min"),
		}

		catalog, err := menu.NewCatalog(items)

		require.NoError(t, err)
		require.NoError(t, catalog.Validate())
		assert.Len(t, catalog.Items(), 2)
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		_, err := menu.NewCatalog(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		items := []menu.Item{
			mustItem(t, "Pizza", "10.50", "20 min"),
			{}, // zero value
		}

		_, err := menu.NewCatalog(items)

		require.Error(t, err)
		assert.Equal(t, menu.ErrItemIsNotConstructed, err)
	})
}

func TestCatalog_Contains(t *testing.T) {
	catalog, err := menu.NewCatalog([]menu.Item{
		mustItem(t, "Pizza", "10.50", "20 min"),
		mustItem(t, "Burger", "7.00", "10 min"),
	})
	require.NoError(t, err)

	t.Run("should match exact name", func(t *testing.T) {
		assert.True(t, catalog.Contains("Pizza"))
	})

	t.Run("should match case-insensitively", func(t *testing.T) {
		assert.True(t, catalog.Contains("pIzZa"))
		assert.True(t, catalog.Contains("BURGER"))
	})

	t.Run("should not match unknown dishes", func(t *testing.T) {
		assert.False(t, catalog.Contains("Taco"))
	})
}

func TestCatalog_Find(t *testing.T) {
	catalog, err := menu.NewCatalog([]menu.Item{
		mustItem(t, "Pizza", "10.50", "20 min"),
	})
	require.NoError(t, err)

	t.Run("should return the item for a known name", func(t *testing.T) {
		item, findErr := catalog.Find("pizza")

		require.NoError(t, findErr)
		assert.Equal(t, "Pizza", item.Name())
		assert.Equal(t, "10.50", item.Price())
	})

	t.Run("should return ObjectNotFound for an unknown name", func(t *testing.T) {
		_, findErr := catalog.Find("Taco")

		require.Error(t, findErr)
		require.ErrorIs(t, findErr, errs.ErrObjectNotFound)
	})
}

func TestCatalog_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var catalog menu.Catalog

		err := catalog.Validate()

		require.Error(t, err)
		assert.Equal(t, menu.ErrCatalogIsNotConstructed, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should require every attribute", func(t *testing.T) {
		_, err := menu.NewItem("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "preparationTime")
	})

	t.Run("should expose attributes through getters", func(t *testing.T) {
		item := mustItem(t, "Pizza", "10.50", "20 min")

		assert.Equal(t, "Pizza", item.Name())
		assert.Equal(t, "10.50", item.Price())
		assert.Equal(t, "20 min", item.PreparationTime())
	})
}

func TestIngredientAllowed(t *testing.T) {
	t.Run("whitelisted ingredients are accepted case-insensitively", func(t *testing.T) {
		for _, name := range []string{"tomatoes", "meat", "mustard", "pickles", "ketchup", "onions", "cheese"} {
			assert.True(t, menu.IngredientAllowed(name), name)
		}
		assert.True(t, menu.IngredientAllowed("Pickles"))
		assert.True(t, menu.IngredientAllowed("CHEESE"))
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		assert.False(t, menu.IngredientAllowed("anchovies"))
		assert.False(t, menu.IngredientAllowed(""))
	})
}
