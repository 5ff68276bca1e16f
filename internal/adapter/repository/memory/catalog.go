package memory

import (
	"sort"

	"github.com/arvrtourism/booking/internal/core/domain"
)

// Catalog is the static in-memory attraction catalog. It is never mutated
// after construction, so reads need no locking.
type Catalog struct {
	attractions []domain.Attraction
	rates       map[string]float64
	countries   []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		attractions: attractions,
		rates:       exchangeRates,
		countries:   allCountries,
	}
}

func (c *Catalog) All() []domain.Attraction {
	out := make([]domain.Attraction, len(c.attractions))
	copy(out, c.attractions)
	return out
}

func (c *Catalog) ByCountry(country string) []domain.Attraction {
	var out []domain.Attraction
	for _, a := range c.attractions {
		if a.Country == country {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) RateFor(country string) float64 {
	if rate, ok := c.rates[country]; ok {
		return rate
	}
	return 1
}

func (c *Catalog) Destinations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range c.attractions {
		if !seen[a.Country] {
			seen[a.Country] = true
			out = append(out, a.Country)
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Countries() []string {
	out := make([]string, len(c.countries))
	copy(out, c.countries)
	return out
}
