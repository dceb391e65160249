package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melabook/melabook/internal/core/cascade"
	"github.com/melabook/melabook/internal/core/taxonomy"
)

func newTestEngine() *cascade.Engine {
	index := taxonomy.NewIndex([]taxonomy.Entry{
		{Category: "Handloom", Product: "Saree"},
		{Category: "Handloom", Product: "Dress Material"},
		{Category: "Food Products", Product: "Pickles"},
	})
	return cascade.NewEngine(index)
}

func TestEngine_SetCategoryClearsProduct(t *testing.T) {
	engine := newTestEngine()

	row := engine.SetCategory(cascade.Row{}, "Handloom")
	row, ok := engine.SetProduct(row, "Saree")
	assert.True(t, ok)
	assert.True(t, row.Complete())

	// Switching category drops the product
	row = engine.SetCategory(row, "Food Products")
	assert.Equal(t, "Food Products", row.Category)
	assert.Empty(t, row.Product)
}

func TestEngine_ReselectingSameCategoryClearsProduct(t *testing.T) {
	engine := newTestEngine()

	row := engine.SetCategory(cascade.Row{}, "Handloom")
	row, _ = engine.SetProduct(row, "Saree")

	// Re-selecting the current category still resets the product
	row = engine.SetCategory(row, "Handloom")
	assert.Empty(t, row.Product)
}

func TestEngine_SetProductRejectsUnlistedOption(t *testing.T) {
	engine := newTestEngine()

	row := engine.SetCategory(cascade.Row{}, "Handloom")
	row, _ = engine.SetProduct(row, "Saree")

	// A product from another category is rejected; prior selection survives
	updated, ok := engine.SetProduct(row, "Pickles")
	assert.False(t, ok)
	assert.Equal(t, "Saree", updated.Product)
}

func TestEngine_SetProductWithoutCategory(t *testing.T) {
	engine := newTestEngine()

	_, ok := engine.SetProduct(cascade.Row{}, "Saree")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	assert.Equal(t, cascade.Row{}, cascade.Clear())
	assert.False(t, cascade.Clear().Complete())
}

func TestEngine_ProductOptions(t *testing.T) {
	engine := newTestEngine()

	row := engine.SetCategory(cascade.Row{}, "Handloom")
	assert.Equal(t, []string{"Saree", "Dress Material"}, engine.ProductOptions(row))

	// No category selected means no options
	assert.Empty(t, engine.ProductOptions(cascade.Row{}))
}

func TestRowSet_RowsAreIndependent(t *testing.T) {
	engine := newTestEngine()
	set := cascade.NewRowSet(engine)

	set.SetCategory("row-1", "Handloom")
	set.SetProduct("row-1", "Saree")
	set.SetCategory("row-2", "Food Products")
	set.SetProduct("row-2", "Pickles")

	// Changing row-1's category must not touch row-2
	set.SetCategory("row-1", "Food Products")

	assert.Empty(t, set.Row("row-1").Product)
	assert.Equal(t, "Pickles", set.Row("row-2").Product)
}

func TestRowSet_RejectedProductKeepsPriorState(t *testing.T) {
	engine := newTestEngine()
	set := cascade.NewRowSet(engine)

	set.SetCategory("row-1", "Handloom")
	set.SetProduct("row-1", "Saree")

	row, ok := set.SetProduct("row-1", "Pickles")
	assert.False(t, ok)
	assert.Equal(t, "Saree", row.Product)
}
