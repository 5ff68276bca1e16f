package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/arvrtourism/booking/internal/core/domain"
)

func renderLanding(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== AR/VR Tourism ===")
	fmt.Fprintln(w, "Seamlessly connecting travelers with immersive digital experiences.")
	fmt.Fprintln(w, "Sign up to build your itinerary and activate your virtual tour.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[1] Get Started")
	fmt.Fprintln(w, "[2] Quit")
}

func renderRecommendations(w io.Writer, pref domain.Preference, recs []domain.Recommendation) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- Recommended Attractions --")
	fmt.Fprintf(w, "Based on your preference for %s with a budget of $%.0f.\n\n",
		pref.DestinationCountry, pref.BudgetUSD)

	if len(recs) == 0 {
		fmt.Fprintln(w, "No matches found. Try increasing your budget.")
		return
	}

	for i, rec := range recs {
		fmt.Fprintf(w, "[%d] %s, %s | Match %d%%\n",
			i+1, rec.Attraction.Name, rec.Attraction.City, rec.MatchScore)
		fmt.Fprintf(w, "    Rating %.1f | %s\n", rec.Attraction.AverageRating, rec.Attraction.Activity)
		fmt.Fprintf(w, "    %s\n", rec.Attraction.Description)
		fmt.Fprintf(w, "    %s | Open %s\n", rec.Attraction.Address, rec.Attraction.OpeningHours)
		fmt.Fprintf(w, "    Total Est. Price (%s): $%.2f\n\n", rec.TicketDetails, rec.CostUSD)
	}
}

func renderOrderSummary(w io.Writer, user domain.User, rec domain.Recommendation) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- Secure Payment --")
	fmt.Fprintf(w, "User:       %s (%s)\n", user.Name, user.Nationality)
	fmt.Fprintf(w, "Attraction: %s\n", rec.Attraction.Name)
	fmt.Fprintf(w, "Details:    %s\n", rec.TicketDetails)
	fmt.Fprintf(w, "Total:      $%.2f\n", rec.CostUSD)
}

func renderTicket(w io.Writer, ticket domain.Ticket) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Payment Confirmed! Your ticket has been issued.")
	fmt.Fprintf(w, "TICKET ID: %s\n", ticket.ID)
	fmt.Fprintf(w, "Attraction: %s\n", ticket.AttractionName)
	fmt.Fprintf(w, "Expires:    %s\n", ticket.ExpiresAt.Format(dateLayout))
}

func renderTour(w io.Writer, tour *domain.Tour, attraction domain.Attraction) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- Tour Active --")
	fmt.Fprintf(w, "Experience ID: %s\n", tour.ID)
	fmt.Fprintf(w, "Status:        %s\n", tour.Status)
	fmt.Fprintf(w, "Mode:          %s\n", tour.Mode)
	fmt.Fprintf(w, "Start Time:    %s\n", tour.StartTime.Format("15:04:05"))
	fmt.Fprintf(w, "Enjoy your immersive experience at %s!\n", attraction.Name)
}

func renderHistory(w io.Writer, records []domain.BookingRecord) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- My Bookings --")

	if len(records) == 0 {
		fmt.Fprintln(w, "No subscriptions found yet.")
		return
	}

	for i, record := range records {
		fmt.Fprintf(w, "[%d] %s (%s, %s) | %s | ordered %s\n",
			i+1,
			record.Attraction.Name,
			record.Attraction.City,
			record.Attraction.Country,
			record.Order.Status,
			record.Order.CreatedAt.Format(dateLayout),
		)
		fmt.Fprintf(w, "    Ticket %s | expires %s\n",
			record.Ticket.ID, record.Ticket.ExpiresAt.Format(dateLayout))
		if record.Tour != nil {
			fmt.Fprintf(w, "    Tour %s | %s\n", record.Tour.ID, record.Tour.Status)
		}
	}
}

func renderCountries(w io.Writer, countries []string) {
	for i := 0; i < len(countries); i += 4 {
		end := i + 4
		if end > len(countries) {
			end = len(countries)
		}
		fmt.Fprintln(w, "  "+strings.Join(countries[i:end], ", "))
	}
}
