// Package cascade models the dependent category → product selection used by
// the registration and sales entry forms.
//
// Each form row carries its own selection state: changing the category of one
// row never disturbs another. Product options are recomputed synchronously on
// every category change, so a row can never hold a product that its current
// category does not offer.
package cascade

import "github.com/melabook/melabook/internal/core/taxonomy"

// Row is the selection state of a single form row. It is a value type:
// transitions return a new Row rather than mutating in place.
type Row struct {
	Category string `json:"category"`
	Product  string `json:"product"`
}

// Complete reports whether both levels of the row are selected.
func (row Row) Complete() bool {
	return row.Category != "" && row.Product != ""
}

// Engine applies selection transitions against a taxonomy index.
//
// The index may be the global taxonomy (registration) or a stall-scoped one
// (sales entry); the transition rules are identical.
type Engine struct {
	options *taxonomy.Index
}

// NewEngine creates an engine over the given option source.
func NewEngine(options *taxonomy.Index) *Engine {
	return &Engine{options: options}
}

// SetCategory selects a category and clears the product selection.
//
// The product is cleared unconditionally, including when the same category is
// re-selected. A stale product must never survive a category interaction.
func (engine *Engine) SetCategory(row Row, category string) Row {
	row.Category = category
	row.Product = ""
	return row
}

// SetProduct selects a product. The selection is accepted only if the
// product is among the current category's options; otherwise the prior row
// is returned unchanged and ok is false.
func (engine *Engine) SetProduct(row Row, product string) (updated Row, ok bool) {
	if row.Category == "" || !engine.options.Has(row.Category, product) {
		return row, false
	}
	row.Product = product
	return row, true
}

// ProductOptions returns the valid products for the row's current category.
// A row with no category has no options.
func (engine *Engine) ProductOptions(row Row) []string {
	if row.Category == "" {
		return []string{}
	}
	return engine.options.ProductsOf(row.Category)
}

// Clear returns a row reset to its empty state. Clearing needs no option
// source, so it is a plain function rather than an Engine method.
func Clear() Row {
	return Row{}
}

// Valid reports whether the row's pair exists in the option source.
// Used by services to validate submitted rows wholesale.
func (engine *Engine) Valid(row Row) bool {
	return engine.options.Has(row.Category, row.Product)
}

// RowSet tracks the independent selection state of many form rows, keyed by
// a caller-chosen row identifier.
type RowSet struct {
	engine *Engine
	rows   map[string]Row
}

// NewRowSet creates an empty row set bound to an engine.
func NewRowSet(engine *Engine) *RowSet {
	return &RowSet{
		engine: engine,
		rows:   make(map[string]Row),
	}
}

// Row returns the current state of a row. Unknown IDs yield an empty row.
func (set *RowSet) Row(id string) Row {
	return set.rows[id]
}

// SetCategory applies a category selection to one row.
func (set *RowSet) SetCategory(id, category string) Row {
	updated := set.engine.SetCategory(set.rows[id], category)
	set.rows[id] = updated
	return updated
}

// SetProduct applies a product selection to one row. On rejection the row
// keeps its prior state.
func (set *RowSet) SetProduct(id, product string) (Row, bool) {
	updated, ok := set.engine.SetProduct(set.rows[id], product)
	if ok {
		set.rows[id] = updated
	}
	return set.rows[id], ok
}

// Remove drops a row from the set.
func (set *RowSet) Remove(id string) {
	delete(set.rows, id)
}
