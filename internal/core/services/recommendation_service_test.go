package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvrtourism/booking/internal/adapter/repository/memory"
	"github.com/arvrtourism/booking/internal/core/domain"
	"github.com/arvrtourism/booking/internal/core/ports/mocks"
	"github.com/arvrtourism/booking/internal/core/services"
	"github.com/arvrtourism/booking/pkg/logger"
)

func TestRecommend_BahrainScenario(t *testing.T) {
	catalog := memory.NewCatalog()
	svc := services.NewRecommendationService(catalog, logger.NewNop())

	pref := domain.Preference{
		ID:                 "PREF-1",
		DestinationCountry: "Bahrain",
		BudgetUSD:          50,
		Travelers:          2,
	}

	recs, err := svc.Recommend(context.Background(), pref)

	require.NoError(t, err)
	require.Len(t, recs, 5)

	for _, rec := range recs {
		assert.Equal(t, "Bahrain", rec.Attraction.Country)
		assert.InDelta(t, rec.Attraction.ExpectedPrice*2/0.377, rec.CostUSD, 1e-9)
		assert.GreaterOrEqual(t, rec.MatchScore, 60)
		assert.LessOrEqual(t, rec.MatchScore, 99)
		assert.Equal(t, "2 Adult Ticket(s)", rec.TicketDetails)
	}

	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i].MatchScore, recs[i-1].MatchScore,
			"recommendations must be sorted non-increasing by score")
	}

	// Both within-budget picks clamp at 99, so the tie keeps catalog order.
	assert.Equal(t, "Another World VR", recs[0].Attraction.Name)
	assert.Equal(t, 99, recs[0].MatchScore)
	assert.Equal(t, "Qal'at Al Bahrain Site Museum", recs[1].Attraction.Name)
	assert.Equal(t, 99, recs[1].MatchScore)
}

func TestRecommend_UnknownDestinationIsEmptyNotError(t *testing.T) {
	catalog := memory.NewCatalog()
	svc := services.NewRecommendationService(catalog, logger.NewNop())

	recs, err := svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "Nowhere",
		BudgetUSD:          1000,
		Travelers:          1,
	})

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommend_BudgetAdjustsScore(t *testing.T) {
	catalog := memory.NewCatalog()
	svc := services.NewRecommendationService(catalog, logger.NewNop())

	// Hagia Sophia: rating 4.0, 25 EUR at rate 0.92 = $27.17 per traveler.
	within, err := svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "Turkey",
		BudgetUSD:          100,
		Travelers:          1,
	})
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, 85, within[0].MatchScore)

	over, err := svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "Turkey",
		BudgetUSD:          10,
		Travelers:          1,
	})
	require.NoError(t, err)
	require.Len(t, over, 1)
	assert.Equal(t, 70, over[0].MatchScore)
}

func TestRecommend_UsesCatalogRate(t *testing.T) {
	catalog := mocks.NewAttractionCatalog(t)
	attraction := domain.Attraction{
		ID:            "x1",
		Name:          "Test Dome",
		Country:       "Testland",
		ExpectedPrice: 40,
		AverageRating: 4.5,
		Activity:      "VR",
	}
	catalog.On("ByCountry", "Testland").Return([]domain.Attraction{attraction})
	catalog.On("RateFor", "Testland").Return(2.0)

	svc := services.NewRecommendationService(catalog, logger.NewNop())

	recs, err := svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "Testland",
		BudgetUSD:          100,
		Travelers:          3,
	})

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.InDelta(t, 60.0, recs[0].CostUSD, 1e-9)
	assert.Equal(t, 95, recs[0].MatchScore)
	assert.Equal(t, "3 Adult Ticket(s)", recs[0].TicketDetails)
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	catalog := mocks.NewAttractionCatalog(t)
	first := domain.Attraction{ID: "1", Name: "First", Country: "T", ExpectedPrice: 10, AverageRating: 4.5}
	second := domain.Attraction{ID: "2", Name: "Second", Country: "T", ExpectedPrice: 10, AverageRating: 4.5}
	catalog.On("ByCountry", "T").Return([]domain.Attraction{first, second})
	catalog.On("RateFor", "T").Return(1.0)

	svc := services.NewRecommendationService(catalog, logger.NewNop())

	recs, err := svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "T",
		BudgetUSD:          100,
		Travelers:          1,
	})

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, recs[0].MatchScore, recs[1].MatchScore)
	assert.Equal(t, "First", recs[0].Attraction.Name)
	assert.Equal(t, "Second", recs[1].Attraction.Name)
}

func TestRecommend_Validation(t *testing.T) {
	svc := services.NewRecommendationService(memory.NewCatalog(), logger.NewNop())

	_, err := svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "",
		Travelers:          1,
	})
	assert.Error(t, err)

	_, err = svc.Recommend(context.Background(), domain.Preference{
		DestinationCountry: "Bahrain",
		Travelers:          0,
	})
	assert.Error(t, err)
}
