package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melabook/melabook/internal/core/taxonomy"
)

// Key names in the reference export genuinely carry trailing spaces.
const referenceJSON = `{
	"Products": [
		{"Product Category ": "Handloom", "Product Sub Category ": "Saree "},
		{"Product Category ": "Handloom", "Product Sub Category ": "Dress Material"},
		{"Product Category ": "Handicraft ", "Product Sub Category ": "Dokra Figurine"},
		{"Product Category ": "Food Products", "Product Sub Category ": "Pickles"},
		{"Product Category ": "Handloom", "Product Sub Category ": "Saree"}
	]
}`

func newTestIndex(t *testing.T) *taxonomy.Index {
	t.Helper()
	index, err := taxonomy.Parse([]byte(referenceJSON))
	require.NoError(t, err)
	return index
}

func TestIndex_Categories(t *testing.T) {
	index := newTestIndex(t)

	// Sorted, deduplicated, whitespace trimmed
	assert.Equal(t, []string{"Food Products", "Handicraft", "Handloom"}, index.Categories())
}

func TestIndex_ProductsOf(t *testing.T) {
	index := newTestIndex(t)

	// Source order, with "Saree " and "Saree" collapsed to one entry after trimming
	assert.Equal(t, []string{"Saree", "Dress Material"}, index.ProductsOf("Handloom"))

	// Trailing whitespace in the query is tolerated
	assert.Equal(t, []string{"Dokra Figurine"}, index.ProductsOf("Handicraft "))

	assert.Empty(t, index.ProductsOf("Electronics"))
}

func TestIndex_ProductsOf_PreservesSourceOrder(t *testing.T) {
	// Deliberately non-alphabetical source order: the dropdowns present
	// products in the grouping the reference file uses, never sorted.
	index := taxonomy.NewIndex([]taxonomy.Entry{
		{Category: "Handloom", Product: "Sambalpuri Saree"},
		{Category: "Handloom", Product: "Bomkai Saree"},
		{Category: "Handloom", Product: "Dress Material"},
		{Category: "Handloom", Product: "Bomkai Saree"},
	})

	assert.Equal(t,
		[]string{"Sambalpuri Saree", "Bomkai Saree", "Dress Material"},
		index.ProductsOf("Handloom"))
}

func TestIndex_Has(t *testing.T) {
	index := newTestIndex(t)

	assert.True(t, index.Has("Handloom", "Saree"))
	assert.True(t, index.Has(" Handloom", "Saree "))
	assert.False(t, index.Has("Handloom", "Pickles"))
	assert.False(t, index.Has("Food Products", "Saree"))
}

func TestIndex_HasCategory(t *testing.T) {
	index := newTestIndex(t)

	assert.True(t, index.HasCategory("Food Products"))
	assert.False(t, index.HasCategory("Electronics"))
}

func TestNewIndex_ScopedSubset(t *testing.T) {
	global := newTestIndex(t)

	// A stall registers a subset of the global taxonomy; a scoped index over
	// that inventory must answer only from the subset.
	scoped := taxonomy.NewIndex([]taxonomy.Entry{
		{Category: "Handloom", Product: "Saree"},
	})

	assert.Equal(t, []string{"Handloom"}, scoped.Categories())
	assert.True(t, scoped.Has("Handloom", "Saree"))
	assert.False(t, scoped.Has("Handloom", "Dress Material"))

	// Everything the scope answers positively, the global index must too
	for _, entry := range scoped.Entries() {
		assert.True(t, global.Has(entry.Category, entry.Product))
	}
}

func TestParse_EmptyData(t *testing.T) {
	_, err := taxonomy.Parse([]byte(`{"Products": []}`))
	require.Error(t, err)
}
