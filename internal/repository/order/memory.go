// Package order keeps placed orders in memory. Orders are simulated and are
// lost on restart.
package order

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

type Memory struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemory() *Memory {
	return &Memory{orders: make(map[string]domain.Order)}
}

func (m *Memory) Save(_ context.Context, o domain.Order) error {
	m.mu.Lock()
	m.orders[o.ID] = o
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	o, ok := m.orders[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}
