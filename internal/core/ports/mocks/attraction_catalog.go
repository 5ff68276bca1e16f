package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/arvrtourism/booking/internal/core/domain"
)

type AttractionCatalog struct {
	mock.Mock
}

func NewAttractionCatalog(t *testing.T) *AttractionCatalog {
	m := &AttractionCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AttractionCatalog) All() []domain.Attraction {
	args := m.Called()
	return args.Get(0).([]domain.Attraction)
}

func (m *AttractionCatalog) ByCountry(country string) []domain.Attraction {
	args := m.Called(country)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Attraction)
}

func (m *AttractionCatalog) RateFor(country string) float64 {
	args := m.Called(country)
	return args.Get(0).(float64)
}

func (m *AttractionCatalog) Destinations() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *AttractionCatalog) Countries() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
