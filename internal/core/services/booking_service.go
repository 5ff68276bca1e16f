package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/arvrtourism/booking/internal/core/domain"
	"github.com/arvrtourism/booking/internal/core/ports"
)

type PurchaseRequest struct {
	User           domain.User
	Preference     domain.Preference
	Recommendation domain.Recommendation
	PromoCode      string
}

type PurchaseResult struct {
	Order  domain.Order
	Ticket domain.Ticket
	Record domain.BookingRecord
}

// PaymentTask is the observable pending/settled handle for one simulated
// gateway round-trip. It settles exactly once; Result blocks until then.
type PaymentTask struct {
	done   chan struct{}
	result *PurchaseResult
	err    error
}

func (t *PaymentTask) Done() <-chan struct{} {
	return t.done
}

func (t *PaymentTask) Settled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *PaymentTask) Result() (*PurchaseResult, error) {
	<-t.done
	return t.result, t.err
}

// BookingService fabricates an Order and Ticket from a selected
// recommendation after a simulated gateway delay. There is no payment
// failure path: every settled purchase is Confirmed.
type BookingService struct {
	history ports.HistoryRepository
	clock   ports.Clock
	delay   time.Duration
	log     *zap.SugaredLogger
}

func NewBookingService(history ports.HistoryRepository, clock ports.Clock, gatewayDelay time.Duration, log *zap.SugaredLogger) *BookingService {
	return &BookingService{
		history: history,
		clock:   clock,
		delay:   gatewayDelay,
		log:     log,
	}
}

// Purchase starts the simulated payment and returns immediately with a
// pending task. On settlement the booking record is prepended to history.
// Cancelling ctx before the delay elapses settles the task with ctx.Err()
// and writes nothing.
func (s *BookingService) Purchase(ctx context.Context, req PurchaseRequest) (*PaymentTask, error) {
	if req.Recommendation.Attraction.ID == "" {
		return nil, errors.New("no recommendation selected")
	}
	if req.User.ID == "" {
		return nil, errors.New("no signed-in user")
	}
	if req.Preference.Dates.End.IsZero() {
		return nil, errors.New("preference dates are required")
	}

	task := &PaymentTask{done: make(chan struct{})}
	go s.settle(ctx, req, task)
	return task, nil
}

func (s *BookingService) settle(ctx context.Context, req PurchaseRequest, task *PaymentTask) {
	defer close(task.done)

	select {
	case <-ctx.Done():
		task.err = ctx.Err()
		s.log.Warnw("payment abandoned before settlement",
			"attraction", req.Recommendation.Attraction.Name,
			"err", ctx.Err(),
		)
		return
	case <-s.clock.After(s.delay):
	}

	now := s.clock.Now()

	order := domain.Order{
		ID:         domain.NewID("ORD"),
		CreatedAt:  now,
		Status:     domain.OrderConfirmed,
		TotalPrice: req.Recommendation.CostUSD,
		PromoCode:  req.PromoCode,
	}

	ticket := domain.Ticket{
		ID:             domain.NewID("TKT"),
		PurchaseTime:   now,
		Price:          req.Recommendation.CostUSD,
		ExpiresAt:      req.Preference.TicketExpiration(),
		AttractionName: req.Recommendation.Attraction.Name,
	}

	record := domain.BookingRecord{
		Ticket:     ticket,
		Order:      order,
		Attraction: req.Recommendation.Attraction,
	}
	s.history.Prepend(record)

	task.result = &PurchaseResult{
		Order:  order,
		Ticket: ticket,
		Record: record,
	}

	s.log.Infow("payment confirmed",
		"order", order.ID,
		"ticket", ticket.ID,
		"attraction", ticket.AttractionName,
		"total_usd", order.TotalPrice,
	)
}
