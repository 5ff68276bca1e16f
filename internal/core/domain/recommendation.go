package domain

// Recommendation is derived from the catalog for one Preference and is
// recomputed whenever the Preference changes.
type Recommendation struct {
	ID            string
	MatchScore    int
	Attraction    Attraction
	CostUSD       float64
	TicketDetails string
}
