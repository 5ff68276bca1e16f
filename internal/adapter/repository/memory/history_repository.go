package memory

import (
	"fmt"
	"sync"

	"github.com/arvrtourism/booking/internal/core/domain"
)

// HistoryRepository is the append-only session booking history. The payment
// task settles on its own goroutine, so access is mutex-guarded.
type HistoryRepository struct {
	mu      sync.Mutex
	records []domain.BookingRecord
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Prepend(record domain.BookingRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]domain.BookingRecord{record}, r.records...)
}

// List returns a copy; callers cannot reorder or rewrite history through it.
func (r *HistoryRepository) List() []domain.BookingRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.BookingRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *HistoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

func (r *HistoryRepository) AttachTour(ticketID string, tour *domain.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].Ticket.ID == ticketID {
			r.records[i].Tour = tour
			return nil
		}
	}
	return fmt.Errorf("no booking record for ticket %s", ticketID)
}

// Reset drops the whole history. Sign-out only.
func (r *HistoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
}
