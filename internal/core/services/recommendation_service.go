package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/arvrtourism/booking/internal/core/domain"
	"github.com/arvrtourism/booking/internal/core/ports"
)

// Fixed ranking fixture: rating scaled to 100, nudged by budget fit, clamped.
// The constants are part of the demo's contract, not tunables.
const (
	scorePerRatingPoint = 20.0
	withinBudgetBonus   = 5.0
	overBudgetPenalty   = 10.0
	scoreFloor          = 60.0
	scoreCeil           = 99.0
)

type RecommendationService struct {
	catalog ports.AttractionCatalog
	log     *zap.SugaredLogger
}

func NewRecommendationService(catalog ports.AttractionCatalog, log *zap.SugaredLogger) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		log:     log,
	}
}

// Recommend ranks the catalog attractions in the preference's destination
// country. An empty slice is a valid "no matches" outcome, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, pref domain.Preference) ([]domain.Recommendation, error) {
	if pref.DestinationCountry == "" {
		return nil, errors.New("destination country is required")
	}
	if pref.Travelers < 1 {
		return nil, errors.New("travelers must be at least 1")
	}

	matches := s.catalog.ByCountry(pref.DestinationCountry)

	recs := make([]domain.Recommendation, 0, len(matches))
	for _, attraction := range matches {
		cost := s.costUSD(attraction, pref.Travelers)

		score := attraction.AverageRating * scorePerRatingPoint
		if cost <= pref.BudgetUSD {
			score += withinBudgetBonus
		} else {
			score -= overBudgetPenalty
		}
		// Clamp before flooring so 99.x still reads as 99.
		score = math.Min(scoreCeil, math.Max(scoreFloor, score))

		recs = append(recs, domain.Recommendation{
			ID:            domain.NewID("REC"),
			MatchScore:    int(math.Floor(score)),
			Attraction:    attraction,
			CostUSD:       cost,
			TicketDetails: fmt.Sprintf("%d Adult Ticket(s)", pref.Travelers),
		})
	}

	// Stable: equal scores keep catalog order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	s.log.Infow("recommendations generated",
		"destination", pref.DestinationCountry,
		"budget_usd", pref.BudgetUSD,
		"count", len(recs),
	)

	return recs, nil
}

func (s *RecommendationService) costUSD(attraction domain.Attraction, travelers int) float64 {
	rate := s.catalog.RateFor(attraction.Country)
	return attraction.ExpectedPrice * float64(travelers) / rate
}
