package domain

import "time"

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Preference captures one itinerary request. A new request supersedes the
// previous Preference wholesale; fields are never edited in place.
type Preference struct {
	ID                 string
	DestinationCountry string
	BudgetUSD          float64
	Dates              DateRange
	Travelers          int
}

// Tickets stay valid for two weeks after the trip ends, regardless of when
// they were purchased.
const ticketValidityAfterTrip = 14

func (p Preference) TicketExpiration() time.Time {
	return p.Dates.End.AddDate(0, 0, ticketValidityAfterTrip)
}
