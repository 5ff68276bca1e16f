package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/arvrtourism/booking/internal/core/domain"
	"github.com/arvrtourism/booking/internal/core/flow"
	"github.com/arvrtourism/booking/internal/core/ports"
	"github.com/arvrtourism/booking/internal/core/services"
)

var errQuit = errors.New("quit")

// Wizard runs the interactive booking flow on a terminal. It renders the
// current view, prompts, and pushes every user action through the flow
// reducer before touching any service.
type Wizard struct {
	prompter *Prompter
	out      io.Writer

	recommendations *services.RecommendationService
	bookings        *services.BookingService
	tours           *services.TourService
	history         ports.HistoryRepository
	catalog         ports.AttractionCatalog
	clock           ports.Clock
	log             *zap.SugaredLogger

	state flow.State
}

type WizardDeps struct {
	In              io.Reader
	Out             io.Writer
	Recommendations *services.RecommendationService
	Bookings        *services.BookingService
	Tours           *services.TourService
	History         ports.HistoryRepository
	Catalog         ports.AttractionCatalog
	Clock           ports.Clock
	Log             *zap.SugaredLogger
}

func NewWizard(deps WizardDeps) *Wizard {
	return &Wizard{
		prompter:        NewPrompter(deps.In, deps.Out),
		out:             deps.Out,
		recommendations: deps.Recommendations,
		bookings:        deps.Bookings,
		tours:           deps.Tours,
		history:         deps.History,
		catalog:         deps.Catalog,
		clock:           deps.Clock,
		log:             deps.Log,
		state:           flow.Initial(),
	}
}

func (w *Wizard) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		switch w.state.View {
		case flow.ViewLanding:
			err = w.landing()
		case flow.ViewSignUp:
			err = w.signUp()
		case flow.ViewPreferences:
			err = w.preferences()
		case flow.ViewRecommendations:
			err = w.recommendationList(ctx)
		case flow.ViewPayment:
			err = w.payment(ctx)
		case flow.ViewActivation:
			err = w.activation()
		case flow.ViewSubscriptions:
			err = w.subscriptions()
		default:
			err = fmt.Errorf("unknown view %s", w.state.View)
		}

		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			fmt.Fprintln(w.out, "Goodbye.")
			return nil
		case errors.Is(err, flow.ErrGuard):
			// Guard failures render nothing; the view simply re-runs.
			w.log.Debugw("action guarded", "err", err)
		default:
			return err
		}
	}
}

func (w *Wizard) dispatch(action flow.Action) error {
	next, err := flow.Reduce(w.state, action)
	if err != nil {
		return err
	}
	w.log.Debugw("state transition",
		"action", action.Name(),
		"from", w.state.View,
		"to", next.View,
	)
	w.state = next
	return nil
}

func (w *Wizard) landing() error {
	renderLanding(w.out)
	choice, err := w.prompter.Choice("Select", 1, 2)
	if err != nil {
		return err
	}
	if choice == 2 {
		return errQuit
	}
	return w.dispatch(flow.Start{})
}

func (w *Wizard) signUp() error {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "-- Create Your Account --")

	name, err := w.prompter.Line("Full Name (or 'back')")
	if err != nil {
		return err
	}
	if name == "back" {
		return w.dispatch(flow.Back{})
	}

	email, err := w.prompter.Line("Email")
	if err != nil {
		return err
	}

	var nationality string
	for {
		nationality, err = w.prompter.Line("Nationality ('?' lists countries)")
		if err != nil {
			return err
		}
		if nationality != "?" {
			break
		}
		renderCountries(w.out, w.catalog.Countries())
	}

	user := domain.User{
		ID:          domain.NewID("USR"),
		Name:        name,
		Email:       email,
		Nationality: nationality,
	}
	return w.dispatch(flow.SubmitSignUp{User: user})
}

func (w *Wizard) preferences() error {
	fmt.Fprintln(w.out)
	fmt.Fprintf(w.out, "Signed in as %s.\n", w.state.User.Name)
	fmt.Fprintln(w.out, "[1] Plan a trip")
	fmt.Fprintln(w.out, "[2] My Bookings")
	fmt.Fprintln(w.out, "[3] Sign Out")
	fmt.Fprintln(w.out, "[4] Quit")

	choice, err := w.prompter.Choice("Select", 1, 4)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		return w.dispatch(flow.OpenSubscriptions{})
	case 3:
		return w.signOut()
	case 4:
		return errQuit
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "-- Itinerary Preferences --")

	destinations := w.catalog.Destinations()
	for i, d := range destinations {
		fmt.Fprintf(w.out, "[%d] %s\n", i+1, d)
	}
	idx, err := w.prompter.Choice("Destination", 1, len(destinations))
	if err != nil {
		return err
	}

	budget, err := w.prompter.Float("Budget (USD)", 1)
	if err != nil {
		return err
	}

	today, _ := time.Parse(dateLayout, w.clock.Now().Format(dateLayout))
	start, err := w.prompter.Date("Start Date", today)
	if err != nil {
		return err
	}
	end, err := w.prompter.Date("End Date", start)
	if err != nil {
		return err
	}

	travelers, err := w.prompter.Int("Travelers", 1)
	if err != nil {
		return err
	}

	pref := domain.Preference{
		ID:                 domain.NewID("PREF"),
		DestinationCountry: destinations[idx-1],
		BudgetUSD:          budget,
		Dates:              domain.DateRange{Start: start, End: end},
		Travelers:          travelers,
	}
	return w.dispatch(flow.SubmitPreferences{Preference: pref})
}

func (w *Wizard) recommendationList(ctx context.Context) error {
	recs, err := w.recommendations.Recommend(ctx, *w.state.Preference)
	if err != nil {
		return err
	}

	renderRecommendations(w.out, *w.state.Preference, recs)

	if len(recs) == 0 {
		return w.dispatch(flow.Back{})
	}

	choice, err := w.prompter.Choice("Select an attraction (0 to go back)", 0, len(recs))
	if err != nil {
		return err
	}
	if choice == 0 {
		return w.dispatch(flow.Back{})
	}
	return w.dispatch(flow.SelectRecommendation{Recommendation: recs[choice-1]})
}

func (w *Wizard) payment(ctx context.Context) error {
	renderOrderSummary(w.out, *w.state.User, *w.state.Selected)

	promo, err := w.prompter.Optional("Promo Code")
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, "[1] Confirm Transaction")
	fmt.Fprintln(w.out, "[2] Back")
	choice, err := w.prompter.Choice("Select", 1, 2)
	if err != nil {
		return err
	}
	if choice == 2 {
		return w.dispatch(flow.Back{})
	}

	if err := w.dispatch(flow.BeginPayment{}); err != nil {
		return err
	}

	task, err := w.bookings.Purchase(ctx, services.PurchaseRequest{
		User:           *w.state.User,
		Preference:     *w.state.Preference,
		Recommendation: *w.state.Selected,
		PromoCode:      promo,
	})
	if err != nil {
		return err
	}

	// No input is read while the payment is pending.
	fmt.Fprintln(w.out, "Verifying Payment...")
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-task.Done():
	}

	result, err := task.Result()
	if err != nil {
		return err
	}
	return w.dispatch(flow.PaymentSettled{Ticket: result.Ticket})
}

func (w *Wizard) activation() error {
	ticket := *w.state.Ticket
	attraction := w.state.Selected.Attraction

	renderTicket(w.out, ticket)

	for {
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, "[1] Activate AR/VR Tour")
		fmt.Fprintln(w.out, "[2] End Active Tour")
		fmt.Fprintln(w.out, "[3] Start New Booking")
		fmt.Fprintln(w.out, "[4] My Bookings")
		fmt.Fprintln(w.out, "[5] Sign Out")

		choice, err := w.prompter.Choice("Select", 1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			tour, err := w.tours.Activate(ticket, attraction)
			if errors.Is(err, services.ErrTourActive) {
				fmt.Fprintln(w.out, "A tour is already active for this ticket.")
				continue
			}
			if err != nil {
				return err
			}
			renderTour(w.out, tour, attraction)
		case 2:
			tour, err := w.tours.Complete(ticket.ID)
			if errors.Is(err, services.ErrNoTour) {
				fmt.Fprintln(w.out, "No active tour for this ticket.")
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w.out, "Tour %s completed at %s.\n",
				tour.ID, tour.EndTime.Format("15:04:05"))
		case 3:
			return w.dispatch(flow.NewBooking{})
		case 4:
			return w.dispatch(flow.OpenSubscriptions{})
		case 5:
			return w.signOut()
		}
	}
}

func (w *Wizard) subscriptions() error {
	records := w.history.List()
	renderHistory(w.out, records)

	if len(records) == 0 {
		return w.dispatch(flow.Back{})
	}

	choice, err := w.prompter.Choice("Activate a booking (0 to go back)", 0, len(records))
	if err != nil {
		return err
	}
	if choice == 0 {
		return w.dispatch(flow.Back{})
	}
	return w.dispatch(flow.ActivateFromHistory{Record: records[choice-1]})
}

// signOut resets the machine and, on success, clears the session history.
func (w *Wizard) signOut() error {
	if err := w.dispatch(flow.SignOut{}); err != nil {
		return err
	}
	w.history.Reset()
	fmt.Fprintln(w.out, "Signed out.")
	return nil
}
