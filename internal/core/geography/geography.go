// Package geography resolves the administrative-division hierarchy used by
// stall registration: State → District → Block → Gram Panchayat.
//
// The hierarchy is loaded once at startup from a reference JSON file and is
// immutable afterwards, so lookups are lock-free.
package geography

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// State is one top-level administrative division with its nested subdivisions.
type State struct {
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

// District is a second-level division inside a state.
type District struct {
	Name   string  `json:"name"`
	Blocks []Block `json:"blocks"`
}

// Block is a third-level division inside a district.
type Block struct {
	Name           string   `json:"name"`
	GramPanchayats []string `json:"gramPanchayats"`
}

// file mirrors the on-disk reference document shape.
type file struct {
	Data struct {
		States []State `json:"states"`
	} `json:"data"`
}

// Resolver answers cascading lookups against the loaded hierarchy.
//
// All lookups are fail-soft: an unknown name at any level yields an empty
// slice, never an error. The registration form renders an empty dropdown
// rather than failing the whole page.
type Resolver struct {
	states []State
}

// Load reads and parses the geography reference file from disk.
func Load(path string) (*Resolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geography: reading %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse builds a Resolver from raw reference JSON.
func Parse(raw []byte) (*Resolver, error) {
	var doc file
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("geography: parsing reference data: %w", err)
	}

	if len(doc.Data.States) == 0 {
		return nil, fmt.Errorf("geography: reference data contains no states")
	}

	return &Resolver{states: doc.Data.States}, nil
}

// States returns the names of all known states, in file order.
func (resolver *Resolver) States() []string {
	names := make([]string, 0, len(resolver.states))
	for _, state := range resolver.states {
		names = append(names, state.Name)
	}
	return names
}

// DistrictsOf returns the district names of a state, or empty if unknown.
func (resolver *Resolver) DistrictsOf(state string) []string {
	names := []string{}
	for _, s := range resolver.states {
		if !nameEquals(s.Name, state) {
			continue
		}
		for _, district := range s.Districts {
			names = append(names, district.Name)
		}
	}
	return names
}

// BlocksOf returns the block names of a district, or empty if unknown.
func (resolver *Resolver) BlocksOf(state, district string) []string {
	names := []string{}
	for _, d := range resolver.districtsIn(state) {
		if !nameEquals(d.Name, district) {
			continue
		}
		for _, block := range d.Blocks {
			names = append(names, block.Name)
		}
	}
	return names
}

// GramPanchayatsOf returns the gram panchayat names of a block, or empty if unknown.
func (resolver *Resolver) GramPanchayatsOf(state, district, block string) []string {
	names := []string{}
	for _, d := range resolver.districtsIn(state) {
		if !nameEquals(d.Name, district) {
			continue
		}
		for _, b := range d.Blocks {
			if nameEquals(b.Name, block) {
				names = append(names, b.GramPanchayats...)
			}
		}
	}
	return names
}

// HasDistrict reports whether the district exists under the state.
func (resolver *Resolver) HasDistrict(state, district string) bool {
	for _, d := range resolver.districtsIn(state) {
		if nameEquals(d.Name, district) {
			return true
		}
	}
	return false
}

// HasBlock reports whether the block exists under the state and district.
func (resolver *Resolver) HasBlock(state, district, block string) bool {
	for _, name := range resolver.BlocksOf(state, district) {
		if nameEquals(name, block) {
			return true
		}
	}
	return false
}

// HasGramPanchayat reports whether the gram panchayat exists under the exact
// state, district and block path.
func (resolver *Resolver) HasGramPanchayat(state, district, block, gramPanchayat string) bool {
	for _, name := range resolver.GramPanchayatsOf(state, district, block) {
		if nameEquals(name, gramPanchayat) {
			return true
		}
	}
	return false
}

func (resolver *Resolver) districtsIn(state string) []District {
	for _, s := range resolver.states {
		if nameEquals(s.Name, state) {
			return s.Districts
		}
	}
	return nil
}

// nameEquals compares division names ignoring stray whitespace.
// The hand-maintained reference file has entries with trailing spaces.
func nameEquals(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
