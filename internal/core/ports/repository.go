package ports

import (
	"github.com/arvrtourism/booking/internal/core/domain"
)

// AttractionCatalog is the read-only static catalog the recommendation
// engine ranks against.
type AttractionCatalog interface {
	All() []domain.Attraction
	ByCountry(country string) []domain.Attraction
	// RateFor returns the local-currency units per USD. Unknown countries
	// fall back to a 1:1 rate, never an error.
	RateFor(country string) float64
	// Destinations lists the distinct catalog countries, sorted.
	Destinations() []string
	// Countries is the static nationality-suggestion list for sign-up.
	Countries() []string
}

// HistoryRepository holds completed bookings for the current session,
// most-recent-first. Records are never removed or rewritten; AttachTour is
// the single permitted mutation. Reset exists only for sign-out.
type HistoryRepository interface {
	Prepend(record domain.BookingRecord)
	List() []domain.BookingRecord
	Len() int
	AttachTour(ticketID string, tour *domain.Tour) error
	Reset()
}
