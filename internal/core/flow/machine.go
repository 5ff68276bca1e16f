// Package flow models the booking wizard as a pure reducer over an explicit
// state value, so every transition and guard can be unit tested without a
// rendering layer.
package flow

import (
	"errors"
	"fmt"

	"github.com/arvrtourism/booking/internal/core/domain"
)

type View string

const (
	ViewLanding         View = "LANDING"
	ViewSignUp          View = "SIGNUP"
	ViewPreferences     View = "PREFERENCES"
	ViewRecommendations View = "RECOMMENDATIONS"
	ViewPayment         View = "PAYMENT"
	ViewActivation      View = "ACTIVATION"
	ViewSubscriptions   View = "SUBSCRIPTIONS"
)

// ErrGuard marks an action rejected by the current state. The console
// adapter renders nothing for these; they never crash the wizard.
var ErrGuard = errors.New("action not allowed in current state")

// State is the full accumulated wizard state. It is a value: Reduce copies
// it, mutates the copy and returns it, leaving the input untouched.
type State struct {
	View           View
	User           *domain.User
	Preference     *domain.Preference
	Selected       *domain.Recommendation
	Ticket         *domain.Ticket
	PaymentPending bool
}

func Initial() State {
	return State{View: ViewLanding}
}

type Action interface {
	Name() string
}

type Start struct{}

type SubmitSignUp struct{ User domain.User }

type SubmitPreferences struct{ Preference domain.Preference }

type SelectRecommendation struct{ Recommendation domain.Recommendation }

type BeginPayment struct{}

type PaymentSettled struct{ Ticket domain.Ticket }

type OpenSubscriptions struct{}

type ActivateFromHistory struct{ Record domain.BookingRecord }

type NewBooking struct{}

type SignOut struct{}

type Back struct{}

func (Start) Name() string                { return "start" }
func (SubmitSignUp) Name() string         { return "submit_sign_up" }
func (SubmitPreferences) Name() string    { return "submit_preferences" }
func (SelectRecommendation) Name() string { return "select_recommendation" }
func (BeginPayment) Name() string         { return "begin_payment" }
func (PaymentSettled) Name() string       { return "payment_settled" }
func (OpenSubscriptions) Name() string    { return "open_subscriptions" }
func (ActivateFromHistory) Name() string  { return "activate_from_history" }
func (NewBooking) Name() string           { return "new_booking" }
func (SignOut) Name() string              { return "sign_out" }
func (Back) Name() string                 { return "back" }

func guard(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGuard, fmt.Sprintf(format, args...))
}

// Reduce applies one action. On a guard failure the input state is returned
// unchanged alongside the error.
func Reduce(s State, a Action) (State, error) {
	switch act := a.(type) {
	case Start:
		if s.View != ViewLanding {
			return s, guard("start only applies on the landing view, not %s", s.View)
		}
		s.View = ViewSignUp

	case SubmitSignUp:
		if s.View != ViewSignUp {
			return s, guard("sign-up form is not open on %s", s.View)
		}
		u := act.User
		s.User = &u
		s.View = ViewPreferences

	case SubmitPreferences:
		if s.View != ViewPreferences {
			return s, guard("preference form is not open on %s", s.View)
		}
		if s.User == nil {
			return s, guard("no signed-in user")
		}
		p := act.Preference
		s.Preference = &p
		// A fresh preference invalidates any earlier selection.
		s.Selected = nil
		s.View = ViewRecommendations

	case SelectRecommendation:
		if s.View != ViewRecommendations {
			return s, guard("no recommendation list on %s", s.View)
		}
		if s.Preference == nil {
			return s, guard("no preference set")
		}
		r := act.Recommendation
		s.Selected = &r
		s.View = ViewPayment

	case BeginPayment:
		if s.View != ViewPayment {
			return s, guard("no payment form on %s", s.View)
		}
		if s.PaymentPending {
			return s, guard("payment already in progress")
		}
		if s.User == nil || s.Preference == nil || s.Selected == nil {
			return s, guard("payment requires a user, preference and selection")
		}
		s.PaymentPending = true

	case PaymentSettled:
		if !s.PaymentPending {
			return s, guard("no pending payment")
		}
		t := act.Ticket
		s.Ticket = &t
		s.PaymentPending = false
		s.View = ViewActivation

	case OpenSubscriptions:
		if s.User == nil {
			return s, guard("no signed-in user")
		}
		if s.PaymentPending {
			return s, guard("payment in progress")
		}
		s.View = ViewSubscriptions

	case ActivateFromHistory:
		if s.View != ViewSubscriptions {
			return s, guard("history is not open on %s", s.View)
		}
		t := act.Record.Ticket
		s.Ticket = &t
		// Transient stand-in so the activation view can render the
		// attraction without re-running the engine.
		s.Selected = &domain.Recommendation{
			ID:            "HISTORY",
			MatchScore:    0,
			Attraction:    act.Record.Attraction,
			CostUSD:       act.Record.Order.TotalPrice,
			TicketDetails: "From History",
		}
		s.View = ViewActivation

	case NewBooking:
		if s.User == nil {
			return s, guard("no signed-in user")
		}
		if s.PaymentPending {
			return s, guard("payment in progress")
		}
		s.Preference = nil
		s.Selected = nil
		s.Ticket = nil
		s.View = ViewPreferences

	case SignOut:
		if s.PaymentPending {
			return s, guard("payment in progress")
		}
		return Initial(), nil

	case Back:
		if s.PaymentPending {
			return s, guard("payment in progress")
		}
		switch s.View {
		case ViewSignUp:
			s.View = ViewLanding
		case ViewPreferences:
			s.View = ViewSignUp
		case ViewRecommendations:
			s.View = ViewPreferences
		case ViewPayment:
			s.View = ViewRecommendations
		case ViewSubscriptions:
			s.View = ViewPreferences
		default:
			return s, guard("nowhere to go back from %s", s.View)
		}

	default:
		return s, fmt.Errorf("unknown action %T", a)
	}

	return s, nil
}
