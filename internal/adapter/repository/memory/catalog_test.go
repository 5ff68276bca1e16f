package memory_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvrtourism/booking/internal/adapter/repository/memory"
)

func TestCatalogHoldsTheFullDataSet(t *testing.T) {
	catalog := memory.NewCatalog()

	assert.Len(t, catalog.All(), 17)
	assert.Len(t, catalog.ByCountry("Bahrain"), 5)
	assert.Len(t, catalog.ByCountry("UAE"), 4)
	assert.Empty(t, catalog.ByCountry("Nowhere"))
}

func TestRateForDefaultsToOne(t *testing.T) {
	catalog := memory.NewCatalog()

	assert.Equal(t, 0.377, catalog.RateFor("Bahrain"))
	assert.Equal(t, 3.67, catalog.RateFor("UAE"))
	assert.Equal(t, 1.0, catalog.RateFor("Nowhere"))
}

func TestDestinationsAreDistinctAndSorted(t *testing.T) {
	catalog := memory.NewCatalog()

	destinations := catalog.Destinations()
	require.Len(t, destinations, 8)
	assert.True(t, sort.StringsAreSorted(destinations))

	seen := make(map[string]bool)
	for _, d := range destinations {
		assert.False(t, seen[d], "duplicate destination %s", d)
		seen[d] = true
	}
	assert.Contains(t, destinations, "Bahrain")
	assert.Contains(t, destinations, "Turkey")
}

func TestCountriesSuggestionList(t *testing.T) {
	catalog := memory.NewCatalog()

	countries := catalog.Countries()
	assert.Greater(t, len(countries), 150)
	assert.Contains(t, countries, "Bahrain")
	assert.Contains(t, countries, "Ireland")
}

func TestAllReturnsACopy(t *testing.T) {
	catalog := memory.NewCatalog()

	first := catalog.All()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", catalog.All()[0].Name)
}
