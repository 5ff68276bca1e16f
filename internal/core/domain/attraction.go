package domain

// Attraction is a static catalog entry. ExpectedPrice is quoted in the
// attraction's local currency; conversion to USD happens at recommendation
// time.
type Attraction struct {
	ID            string
	Name          string
	City          string
	Country       string
	Description   string
	ExpectedPrice float64
	AverageRating float64
	Activity      string
	Address       string
	OpeningHours  string
}
