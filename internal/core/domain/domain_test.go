package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arvrtourism/booking/internal/core/domain"
)

func TestTicketExpirationIsTripEndPlusFourteenDays(t *testing.T) {
	pref := domain.Preference{
		Dates: domain.DateRange{
			Start: time.Date(2025, 5, 29, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), pref.TicketExpiration())
}

func TestTourModeFor(t *testing.T) {
	assert.Equal(t, domain.ModeVRHeadset, domain.TourModeFor("Free-Roam VR Arena"))
	assert.Equal(t, domain.ModeVRHeadset, domain.TourModeFor("VR / AI / Interactive"))
	assert.Equal(t, domain.ModeMobileAR, domain.TourModeFor("AR Experience / Heritage"))
	assert.Equal(t, domain.ModeMobileAR, domain.TourModeFor("Immersive Digital Art"))
}

func TestNewIDCarriesPrefix(t *testing.T) {
	id := domain.NewID("TKT")
	assert.True(t, strings.HasPrefix(id, "TKT-"))
	assert.Len(t, id, len("TKT-")+8)

	assert.NotEqual(t, id, domain.NewID("TKT"))
}
