package domain

// BookingRecord is the history entry for one completed purchase. Attaching a
// Tour is the only mutation a record ever sees.
type BookingRecord struct {
	Ticket     Ticket
	Order      Order
	Attraction Attraction
	Tour       *Tour
}
