package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/notify"
)

// DefaultDelay is the simulated processing time of an order.
const DefaultDelay = 1500 * time.Millisecond

type cartStore interface {
	Cart() domain.Cart
	RemoveOrdered(ctx context.Context, ordered []domain.CartLine) (domain.Cart, error)
}

type orderRepo interface {
	Save(ctx context.Context, o domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
}

// Service places simulated orders. Nothing is charged. PlaceOrder calls
// run one at a time.
type Service struct {
	placing  chan struct{}
	cart     cartStore
	orders   orderRepo
	notifier notify.Notifier
	logger   *log.Logger
	delay    time.Duration
	wait     func(ctx context.Context, d time.Duration) error
	now      func() time.Time
	number   func() string
}

type Option func(*Service)

func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(cart cartStore, orders orderRepo, opts ...Option) *Service {
	s := &Service{
		placing:  make(chan struct{}, 1),
		cart:     cart,
		orders:   orders,
		notifier: notify.Discard,
		logger:   log.New(io.Discard, "", 0),
		delay:    DefaultDelay,
		wait:     sleep,
		now:      func() time.Time { return time.Now().UTC() },
		number:   orderNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary returns the amounts for the current cart.
func (s *Service) Summary() domain.OrderSummary {
	return Summarize(s.cart.Cart())
}

// PlaceOrder validates the form, waits the simulated processing delay,
// records the order and removes the ordered lines from the cart. Lines
// added while the order is processed stay in the cart.
func (s *Service) PlaceOrder(ctx context.Context, form Form) (*domain.Order, error) {
	select {
	case s.placing <- struct{}{}:
		defer func() { <-s.placing }()
	case <-ctx.Done():
		return nil, s.fail(ctx, fmt.Errorf("process order: %w", ctx.Err()))
	}

	c := s.cart.Cart()
	if c.IsEmpty() {
		notify.Emit(ctx, s.notifier, notify.Error("Your cart is empty"))
		return nil, domain.ErrEmptyCart
	}
	if err := form.validate(); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error("Please fill in all required fields"))
		return nil, err
	}

	if s.delay > 0 {
		if err := s.wait(ctx, s.delay); err != nil {
			return nil, s.fail(ctx, fmt.Errorf("process order: %w", err))
		}
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		Number:        s.number(),
		Lines:         c.Lines,
		Summary:       Summarize(c),
		Shipping:      form.Shipping,
		PaymentMethod: form.PaymentMethod,
		Notes:         form.Notes,
		PlacedAt:      s.now(),
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, s.fail(ctx, fmt.Errorf("save order: %w", err))
	}
	notify.Emit(ctx, s.notifier, notify.Success("Order placed successfully!"))
	s.logger.Printf("checkout: placed order id=%s number=%s items=%d total_cents=%d", order.ID, order.Number, order.Summary.ItemCount, order.Summary.TotalCents)

	if _, err := s.cart.RemoveOrdered(ctx, order.Lines); err != nil {
		// The order is already recorded.
		s.logger.Printf("checkout: remove ordered lines id=%s error=%v", order.ID, err)
	}
	return &order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

func (s *Service) fail(ctx context.Context, err error) error {
	notify.Emit(ctx, s.notifier, notify.Error("Failed to process your order. Please try again."))
	s.logger.Printf("checkout: place order error=%v", err)
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func orderNumber() string {
	return fmt.Sprintf("ORD-%06d", rand.Intn(1_000_000))
}
