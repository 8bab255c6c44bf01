package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/notify"
)

// DefaultStorageKey is the key the cart snapshot is written under.
const DefaultStorageKey = "cart"

// Outcome tells the caller whether AddItem appended a line or merged into one.
type Outcome int

const (
	OutcomeAdded Outcome = iota + 1
	OutcomeMerged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeMerged:
		return "merged"
	default:
		return "unknown"
	}
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the cart lines for one session. Every mutation recomputes the
// aggregates and writes the full snapshot before returning; a failed write
// leaves the previous lines in place.
type Store struct {
	mu       sync.Mutex
	kv       kvStore
	key      string
	notifier notify.Notifier
	logger   *log.Logger
	lines    []domain.CartLine
}

type Option func(*Store)

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a Store and loads any snapshot kept in kv. Loading is best
// effort: a missing key, a read error or undecodable data yields an empty cart.
func New(ctx context.Context, kv kvStore, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		key:      DefaultStorageKey,
		notifier: notify.Discard,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lines = s.load(ctx)
	return s
}

// Cart returns the current lines and aggregates.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewCart(s.lines)
}

// AddItem adds quantity of the (product, size, color) variant. An existing
// line with the same variant key has its quantity increased instead.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int, size, color string) (Outcome, domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateAdd(product, quantity, size, color); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error(userMessage(err)))
		return 0, domain.NewCart(s.lines), err
	}

	key := domain.VariantKey{ProductID: product.ID, Size: size, Color: color}
	next := slices.Clone(s.lines)
	outcome := OutcomeAdded
	if i := slices.IndexFunc(next, func(l domain.CartLine) bool { return l.Key() == key }); i >= 0 {
		next[i].Quantity += quantity
		outcome = OutcomeMerged
	} else {
		next = append(next, domain.CartLine{
			ProductID: product.ID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
			Product:   product,
		})
	}

	if err := s.commit(ctx, next); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error("Could not add item to cart"))
		return 0, domain.NewCart(s.lines), err
	}
	if outcome == OutcomeMerged {
		notify.Emit(ctx, s.notifier, notify.Success(fmt.Sprintf("Updated %s quantity in cart", product.Name)))
	} else {
		notify.Emit(ctx, s.notifier, notify.Success(fmt.Sprintf("Added %s to cart", product.Name)))
	}
	s.logger.Printf("cart store: add product_id=%s size=%s color=%s qty=%d outcome=%s", product.ID, size, color, quantity, outcome)
	return outcome, domain.NewCart(s.lines), nil
}

// RemoveItem drops every line of productID, whatever its size or color.
// Removing a product that is not in the cart changes nothing.
func (s *Store) RemoveItem(ctx context.Context, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.lines), func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
	if len(next) == len(s.lines) {
		return domain.NewCart(s.lines), nil
	}
	if err := s.commit(ctx, next); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error("Could not remove item from cart"))
		return domain.NewCart(s.lines), err
	}
	notify.Emit(ctx, s.notifier, notify.Info("Item removed from cart"))
	s.logger.Printf("cart store: remove product_id=%s", productID)
	return domain.NewCart(s.lines), nil
}

// UpdateQuantity sets the quantity of every line of productID. Quantities
// below 1 are raised to 1.
//
// Lines are matched by product id alone, so two variants of one product
// always end up with the same quantity. This mirrors the storefront's
// existing behaviour and is kept until the product owner decides otherwise.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity = max(quantity, 1)
	next := slices.Clone(s.lines)
	changed := false
	for i := range next {
		if next[i].ProductID == productID && next[i].Quantity != quantity {
			next[i].Quantity = quantity
			changed = true
		}
	}
	if !changed {
		return domain.NewCart(s.lines), nil
	}
	if err := s.commit(ctx, next); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error("Could not update cart"))
		return domain.NewCart(s.lines), err
	}
	s.logger.Printf("cart store: update product_id=%s qty=%d", productID, quantity)
	return domain.NewCart(s.lines), nil
}

// Clear empties the cart and persists the empty snapshot.
func (s *Store) Clear(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, []domain.CartLine{}); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error("Could not clear cart"))
		return domain.NewCart(s.lines), err
	}
	notify.Emit(ctx, s.notifier, notify.Info("Cart cleared"))
	s.logger.Printf("cart store: cleared")
	return domain.NewCart(s.lines), nil
}

// RemoveOrdered takes the quantities of ordered out of the cart, matching
// lines by variant key. Lines added or increased after ordered was read
// keep whatever was not ordered; lines that reach zero are dropped.
func (s *Store) RemoveOrdered(ctx context.Context, ordered []domain.CartLine) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[domain.VariantKey]int, len(ordered))
	for _, l := range ordered {
		taken[l.Key()] += l.Quantity
	}
	next := make([]domain.CartLine, 0, len(s.lines))
	changed := false
	for _, l := range s.lines {
		if q, ok := taken[l.Key()]; ok {
			changed = true
			l.Quantity -= q
			if l.Quantity < 1 {
				continue
			}
		}
		next = append(next, l)
	}
	if !changed {
		return domain.NewCart(s.lines), nil
	}
	if err := s.commit(ctx, next); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error("Could not update cart"))
		return domain.NewCart(s.lines), err
	}
	if len(next) == 0 {
		notify.Emit(ctx, s.notifier, notify.Info("Cart cleared"))
	}
	s.logger.Printf("cart store: removed ordered lines=%d remaining=%d", len(ordered), len(next))
	return domain.NewCart(s.lines), nil
}

func (s *Store) commit(ctx context.Context, next []domain.CartLine) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		s.logger.Printf("cart store: persist key=%s error=%v", s.key, err)
		return fmt.Errorf("persist cart: %w", err)
	}
	s.lines = next
	return nil
}

func (s *Store) load(ctx context.Context) []domain.CartLine {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Printf("cart store: load key=%s error=%v", s.key, err)
		return []domain.CartLine{}
	}
	if !ok || raw == "" {
		return []domain.CartLine{}
	}

	var stored []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Printf("cart store: decode key=%s error=%v", s.key, err)
		return []domain.CartLine{}
	}

	lines := make([]domain.CartLine, 0, len(stored))
	for _, line := range stored {
		if line.ProductID == "" || line.Quantity < 1 {
			s.logger.Printf("cart store: dropping invalid stored line product_id=%q qty=%d", line.ProductID, line.Quantity)
			continue
		}
		if line.Product.ID == "" {
			line.Product.ID = line.ProductID
		}
		if i := slices.IndexFunc(lines, func(l domain.CartLine) bool { return l.Key() == line.Key() }); i >= 0 {
			lines[i].Quantity += line.Quantity
			continue
		}
		lines = append(lines, line)
	}
	s.logger.Printf("cart store: loaded key=%s lines=%d", s.key, len(lines))
	return lines
}
