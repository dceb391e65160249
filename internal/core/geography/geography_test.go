package geography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melabook/melabook/internal/core/geography"
)

const referenceJSON = `{
	"data": {
		"states": [
			{
				"name": "Odisha",
				"districts": [
					{
						"name": "Khordha",
						"blocks": [
							{"name": "Bhubaneswar", "gramPanchayats": ["Andharua", "Daruthenga"]},
							{"name": "Balianta", "gramPanchayats": ["Bentapur"]}
						]
					},
					{
						"name": "Cuttack",
						"blocks": [
							{"name": "Banki", "gramPanchayats": ["Baideswar"]}
						]
					}
				]
			}
		]
	}
}`

func newTestResolver(t *testing.T) *geography.Resolver {
	t.Helper()
	resolver, err := geography.Parse([]byte(referenceJSON))
	require.NoError(t, err)
	return resolver
}

func TestResolver_States(t *testing.T) {
	resolver := newTestResolver(t)
	assert.Equal(t, []string{"Odisha"}, resolver.States())
}

func TestResolver_DistrictsOf(t *testing.T) {
	resolver := newTestResolver(t)

	assert.Equal(t, []string{"Khordha", "Cuttack"}, resolver.DistrictsOf("Odisha"))

	// Unknown state yields an empty list, never an error
	assert.Empty(t, resolver.DistrictsOf("Atlantis"))
}

func TestResolver_BlocksOf(t *testing.T) {
	resolver := newTestResolver(t)

	assert.Equal(t, []string{"Bhubaneswar", "Balianta"}, resolver.BlocksOf("Odisha", "Khordha"))
	assert.Empty(t, resolver.BlocksOf("Odisha", "Puri"))
	assert.Empty(t, resolver.BlocksOf("Atlantis", "Khordha"))
}

func TestResolver_GramPanchayatsOf(t *testing.T) {
	resolver := newTestResolver(t)

	assert.Equal(t, []string{"Andharua", "Daruthenga"},
		resolver.GramPanchayatsOf("Odisha", "Khordha", "Bhubaneswar"))
	assert.Empty(t, resolver.GramPanchayatsOf("Odisha", "Khordha", "Nimapara"))
}

func TestResolver_WhitespaceTolerance(t *testing.T) {
	resolver := newTestResolver(t)

	// Hand-maintained reference data carries stray spaces; lookups must tolerate them
	assert.Equal(t, []string{"Khordha", "Cuttack"}, resolver.DistrictsOf("  Odisha "))
	assert.True(t, resolver.HasDistrict("Odisha", "Khordha "))
}

func TestResolver_HasBlock(t *testing.T) {
	resolver := newTestResolver(t)

	assert.True(t, resolver.HasBlock("Odisha", "Cuttack", "Banki"))
	assert.False(t, resolver.HasBlock("Odisha", "Cuttack", "Bhubaneswar"))
}

func TestResolver_HasGramPanchayat(t *testing.T) {
	resolver := newTestResolver(t)

	assert.True(t, resolver.HasGramPanchayat("Odisha", "Khordha", "Bhubaneswar", "Andharua"))

	// A gram panchayat only resolves through its own block path
	assert.False(t, resolver.HasGramPanchayat("Odisha", "Khordha", "Balianta", "Andharua"))
	assert.False(t, resolver.HasGramPanchayat("Odisha", "Khordha", "Bhubaneswar", "Bentapur"))
}

func TestResolver_CaseSensitiveNames(t *testing.T) {
	resolver := newTestResolver(t)

	// Whitespace is forgiven, case is not: division names match exactly
	assert.Empty(t, resolver.DistrictsOf("odisha"))
	assert.False(t, resolver.HasDistrict("Odisha", "khordha"))
	assert.False(t, resolver.HasBlock("Odisha", "Khordha", "BALIANTA"))
	assert.False(t, resolver.HasGramPanchayat("Odisha", "Khordha", "Bhubaneswar", "andharua"))
}

func TestParse_EmptyData(t *testing.T) {
	_, err := geography.Parse([]byte(`{"data": {"states": []}}`))
	require.Error(t, err)
}
