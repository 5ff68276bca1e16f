package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvrtourism/booking/internal/adapter/repository/memory"
	"github.com/arvrtourism/booking/internal/core/domain"
	"github.com/arvrtourism/booking/internal/core/services"
	"github.com/arvrtourism/booking/pkg/logger"
)

func tourFixtures() (domain.Ticket, domain.Attraction) {
	ticket := domain.Ticket{
		ID:             "TKT-1",
		Price:          42.50,
		ExpiresAt:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		AttractionName: "EVA Virtual Reality",
	}
	attraction := domain.Attraction{
		ID:       "9",
		Name:     "EVA Virtual Reality",
		Country:  "Bahrain",
		Activity: "Free-Roam VR Arena",
	}
	return ticket, attraction
}

func TestActivate_PicksModeFromActivity(t *testing.T) {
	history := memory.NewHistoryRepository()
	clk := newFakeClock(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	svc := services.NewTourService(history, clk, logger.NewNop())

	ticket, vrAttraction := tourFixtures()
	tour, err := svc.Activate(ticket, vrAttraction)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeVRHeadset, tour.Mode)
	assert.Equal(t, domain.TourActive, tour.Status)
	assert.Equal(t, clk.now, tour.StartTime)
	assert.True(t, tour.EndTime.IsZero())

	arTicket := domain.Ticket{ID: "TKT-2", AttractionName: "Qal'at Al Bahrain Site Museum"}
	arAttraction := domain.Attraction{ID: "12", Name: "Qal'at Al Bahrain Site Museum", Activity: "AR Experience / Heritage"}
	arTour, err := svc.Activate(arTicket, arAttraction)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeMobileAR, arTour.Mode)
}

func TestActivate_OneActiveTourPerTicket(t *testing.T) {
	history := memory.NewHistoryRepository()
	clk := newFakeClock(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	svc := services.NewTourService(history, clk, logger.NewNop())

	ticket, attraction := tourFixtures()

	_, err := svc.Activate(ticket, attraction)
	require.NoError(t, err)

	_, err = svc.Activate(ticket, attraction)
	assert.ErrorIs(t, err, services.ErrTourActive)

	// Completing frees the ticket for a later activation from history.
	completed, err := svc.Complete(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TourCompleted, completed.Status)
	assert.Equal(t, clk.now, completed.EndTime)

	_, err = svc.Activate(ticket, attraction)
	assert.NoError(t, err)
}

func TestComplete_NoActiveTour(t *testing.T) {
	svc := services.NewTourService(memory.NewHistoryRepository(), newFakeClock(time.Now()), logger.NewNop())

	_, err := svc.Complete("TKT-unknown")
	assert.ErrorIs(t, err, services.ErrNoTour)
}

func TestActivate_AttachesTourToHistory(t *testing.T) {
	history := memory.NewHistoryRepository()
	clk := newFakeClock(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	svc := services.NewTourService(history, clk, logger.NewNop())

	ticket, attraction := tourFixtures()
	history.Prepend(domain.BookingRecord{
		Ticket:     ticket,
		Order:      domain.Order{ID: "ORD-1", Status: domain.OrderConfirmed},
		Attraction: attraction,
	})

	tour, err := svc.Activate(ticket, attraction)
	require.NoError(t, err)

	records := history.List()
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Tour)
	assert.Equal(t, tour.ID, records[0].Tour.ID)
	assert.Equal(t, domain.TourActive, records[0].Tour.Status)
}
