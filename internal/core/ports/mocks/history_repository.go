package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/arvrtourism/booking/internal/core/domain"
)

type HistoryRepository struct {
	mock.Mock
}

func NewHistoryRepository(t *testing.T) *HistoryRepository {
	m := &HistoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HistoryRepository) Prepend(record domain.BookingRecord) {
	m.Called(record)
}

func (m *HistoryRepository) List() []domain.BookingRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.BookingRecord)
}

func (m *HistoryRepository) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *HistoryRepository) AttachTour(ticketID string, tour *domain.Tour) error {
	args := m.Called(ticketID, tour)
	return args.Error(0)
}

func (m *HistoryRepository) Reset() {
	m.Called()
}
