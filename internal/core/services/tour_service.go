package services

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/arvrtourism/booking/internal/core/domain"
	"github.com/arvrtourism/booking/internal/core/ports"
)

var (
	ErrTourActive = errors.New("ticket already has an active tour")
	ErrNoTour     = errors.New("no active tour for ticket")
)

// TourService starts and ends AR/VR experience sessions. A ticket carries at
// most one active tour at a time.
type TourService struct {
	history ports.HistoryRepository
	clock   ports.Clock
	log     *zap.SugaredLogger

	mu     sync.Mutex
	active map[string]*domain.Tour // ticket ID -> active tour
}

func NewTourService(history ports.HistoryRepository, clock ports.Clock, log *zap.SugaredLogger) *TourService {
	return &TourService{
		history: history,
		clock:   clock,
		log:     log,
		active:  make(map[string]*domain.Tour),
	}
}

func (s *TourService) Activate(ticket domain.Ticket, attraction domain.Attraction) (*domain.Tour, error) {
	if ticket.ID == "" {
		return nil, errors.New("ticket is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[ticket.ID]; ok {
		return nil, ErrTourActive
	}

	tour := &domain.Tour{
		ID:        domain.NewID("EXP"),
		StartTime: s.clock.Now(),
		Mode:      domain.TourModeFor(attraction.Activity),
		Status:    domain.TourActive,
	}
	s.active[ticket.ID] = tour

	// History may not hold the ticket when activation precedes settlement
	// bookkeeping; the session view still carries the tour.
	if err := s.history.AttachTour(ticket.ID, tour); err != nil {
		s.log.Warnw("tour not attached to history", "ticket", ticket.ID, "err", err)
	}

	s.log.Infow("tour activated",
		"experience", tour.ID,
		"ticket", ticket.ID,
		"mode", tour.Mode,
		"attraction", attraction.Name,
	)
	return tour, nil
}

// Complete ends the active tour for the ticket, freeing it for a later
// activation from history.
func (s *TourService) Complete(ticketID string) (*domain.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tour, ok := s.active[ticketID]
	if !ok {
		return nil, ErrNoTour
	}

	tour.Status = domain.TourCompleted
	tour.EndTime = s.clock.Now()
	delete(s.active, ticketID)

	s.log.Infow("tour completed", "experience", tour.ID, "ticket", ticketID)
	return tour, nil
}
