// Package taxonomy resolves the two-level product classification used across
// registration and sales: Product Category → Product.
//
// The global taxonomy is loaded once at startup from a reference JSON file.
// A scoped index over a single stall's inventory uses the same type, so the
// sales ledger validates against the stall's own catalogue with the exact
// lookup semantics the registration form uses against the global list.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one (category, product) pair of the classification.
type Entry struct {
	Category string
	Product  string
}

// file mirrors the on-disk reference document shape. The hand-maintained
// export carries trailing spaces inside the key names themselves.
type file struct {
	Products []struct {
		Category string `json:"Product Category "`
		Product  string `json:"Product Sub Category "`
	} `json:"Products"`
}

// Index answers category and product lookups over a set of entries.
//
// All comparisons ignore stray whitespace: the reference data and years of
// stored registrations both contain values with trailing spaces.
type Index struct {
	entries []Entry
}

// Load reads and parses the taxonomy reference file from disk.
func Load(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: reading %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse builds an Index from raw reference JSON.
func Parse(raw []byte) (*Index, error) {
	var doc file
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy: parsing reference data: %w", err)
	}

	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("taxonomy: reference data contains no products")
	}

	entries := make([]Entry, 0, len(doc.Products))
	for _, row := range doc.Products {
		entries = append(entries, Entry{
			Category: strings.TrimSpace(row.Category),
			Product:  strings.TrimSpace(row.Product),
		})
	}

	return NewIndex(entries), nil
}

// NewIndex builds an Index over arbitrary entries. Used to scope lookups to
// a single stall's registered inventory.
func NewIndex(entries []Entry) *Index {
	cleaned := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		cleaned = append(cleaned, Entry{
			Category: strings.TrimSpace(entry.Category),
			Product:  strings.TrimSpace(entry.Product),
		})
	}
	return &Index{entries: cleaned}
}

// Categories returns the distinct category names, sorted alphabetically.
func (index *Index) Categories() []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range index.entries {
		if entry.Category == "" || seen[entry.Category] {
			continue
		}
		seen[entry.Category] = true
		names = append(names, entry.Category)
	}
	sort.Strings(names)
	return names
}

// ProductsOf returns the distinct products of a category, in the order they
// first appear in the source data. The reference file groups related products
// deliberately, so the dropdowns keep that grouping instead of sorting.
// Unknown categories yield an empty list.
func (index *Index) ProductsOf(category string) []string {
	category = strings.TrimSpace(category)
	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range index.entries {
		if entry.Category != category || entry.Product == "" || seen[entry.Product] {
			continue
		}
		seen[entry.Product] = true
		names = append(names, entry.Product)
	}
	return names
}

// HasCategory reports whether the category exists in the index.
func (index *Index) HasCategory(category string) bool {
	category = strings.TrimSpace(category)
	for _, entry := range index.entries {
		if entry.Category == category {
			return true
		}
	}
	return false
}

// Has reports whether the (category, product) pair exists in the index.
func (index *Index) Has(category, product string) bool {
	category = strings.TrimSpace(category)
	product = strings.TrimSpace(product)
	for _, entry := range index.entries {
		if entry.Category == category && entry.Product == product {
			return true
		}
	}
	return false
}

// Entries returns a copy of the underlying pairs.
func (index *Index) Entries() []Entry {
	out := make([]Entry, len(index.entries))
	copy(out, index.entries)
	return out
}
