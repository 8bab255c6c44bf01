package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/notify"
	"storefront/internal/repository/kv"
)

type stubKV struct {
	value  string
	ok     bool
	getErr error
	setErr error
	sets   int
}

func (s *stubKV) Get(_ context.Context, _ string) (string, bool, error) {
	return s.value, s.ok, s.getErr
}

func (s *stubKV) Set(_ context.Context, _ string, value string) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.value = value
	s.ok = true
	return nil
}

var (
	productA = domain.Product{ID: "a", Name: "Product A", PriceCents: 1000, Sizes: []string{"S", "M"}, Colors: []string{"Red", "Blue"}}
	productB = domain.Product{ID: "b", Name: "Product B", PriceCents: 2550, Sizes: []string{"M", "L"}, Colors: []string{"Black"}}
)

func TestStore_Scenario(t *testing.T) {
	ctx := context.Background()
	store := New(ctx, kv.NewMemory())

	outcome, c, err := store.AddItem(ctx, productA, 2, "M", "Red")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, outcome)
	assert.Equal(t, 2, c.TotalItems)
	assert.Equal(t, int64(2000), c.TotalCents)

	outcome, c, err = store.AddItem(ctx, productA, 1, "M", "Red")
	require.NoError(t, err)
	assert.Equal(t, OutcomeMerged, outcome)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, int64(3000), c.TotalCents)

	c, err = store.UpdateQuantity(ctx, productA.ID, 0)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, int64(1000), c.TotalCents)

	c, err = store.RemoveItem(ctx, productA.ID)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.TotalItems)
	assert.Zero(t, c.TotalCents)
}

func TestStore_AddDistinctVariantsKeepsSeparateLines(t *testing.T) {
	ctx := context.Background()
	store := New(ctx, kv.NewMemory())

	_, _, err := store.AddItem(ctx, productA, 1, "S", "Red")
	require.NoError(t, err)
	_, _, err = store.AddItem(ctx, productA, 1, "M", "Red")
	require.NoError(t, err)
	_, c, err := store.AddItem(ctx, productA, 1, "M", "Blue")
	require.NoError(t, err)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, "S", c.Lines[0].Size)
	assert.Equal(t, "Blue", c.Lines[2].Color)
}

func TestStore_AddRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	backing := &stubKV{}
	var notices notify.Buffer
	store := New(ctx, backing, WithNotifier(&notices))

	cases := []struct {
		name  string
		qty   int
		size  string
		color string
		want  error
	}{
		{"zero quantity", 0, "M", "Red", ErrInvalidQuantity},
		{"negative quantity", -3, "M", "Red", ErrInvalidQuantity},
		{"unknown size", 1, "XXL", "Red", ErrInvalidSize},
		{"unknown color", 1, "M", "Green", ErrInvalidColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c, err := store.AddItem(ctx, productA, tc.qty, tc.size, tc.color)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, c.Lines)
		})
	}

	assert.Zero(t, backing.sets)
	got := notices.Drain()
	require.Len(t, got, len(cases))
	assert.Equal(t, notify.LevelError, got[0].Level)
	assert.Equal(t, "Please select a size", got[2].Message)
}

func TestStore_RemoveIsIdempotentAndRemovesAllVariants(t *testing.T) {
	ctx := context.Background()
	backing := &stubKV{}
	store := New(ctx, backing)

	_, _, err := store.AddItem(ctx, productA, 1, "S", "Red")
	require.NoError(t, err)
	_, _, err = store.AddItem(ctx, productA, 2, "M", "Blue")
	require.NoError(t, err)
	_, _, err = store.AddItem(ctx, productB, 1, "L", "Black")
	require.NoError(t, err)

	c, err := store.RemoveItem(ctx, productA.ID)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, productB.ID, c.Lines[0].ProductID)
	sets := backing.sets

	again, err := store.RemoveItem(ctx, productA.ID)
	require.NoError(t, err)
	assert.Equal(t, c, again)
	assert.Equal(t, sets, backing.sets)

	_, err = store.RemoveItem(ctx, "missing")
	require.NoError(t, err)
}

func TestStore_UpdateQuantityAppliesToEveryVariant(t *testing.T) {
	ctx := context.Background()
	store := New(ctx, kv.NewMemory())

	_, _, err := store.AddItem(ctx, productA, 1, "S", "Red")
	require.NoError(t, err)
	_, _, err = store.AddItem(ctx, productA, 4, "M", "Blue")
	require.NoError(t, err)
	_, _, err = store.AddItem(ctx, productB, 1, "M", "Black")
	require.NoError(t, err)

	c, err := store.UpdateQuantity(ctx, productA.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Lines[0].Quantity)
	assert.Equal(t, 5, c.Lines[1].Quantity)
	assert.Equal(t, 1, c.Lines[2].Quantity)
	assert.Equal(t, 11, c.TotalItems)

	c, err = store.UpdateQuantity(ctx, "missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 11, c.TotalItems)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemory()
	var notices notify.Buffer
	store := New(ctx, backing, WithNotifier(&notices))

	_, _, err := store.AddItem(ctx, productB, 2, "M", "Black")
	require.NoError(t, err)

	c, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.TotalCents)

	raw, ok, err := backing.Get(ctx, DefaultStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, raw)

	got := notices.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, notify.Success("Added Product B to cart"), got[0])
	assert.Equal(t, notify.Info("Cart cleared"), got[1])
}

func TestStore_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemory()

	first := New(ctx, backing, WithStorageKey("cart:test"))
	_, _, err := first.AddItem(ctx, productA, 2, "M", "Red")
	require.NoError(t, err)
	_, _, err = first.AddItem(ctx, productB, 1, "L", "Black")
	require.NoError(t, err)

	raw, ok, err := backing.Get(ctx, "cart:test")
	require.NoError(t, err)
	require.True(t, ok)
	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "a", stored[0]["productId"])
	assert.Equal(t, "M", stored[0]["size"])
	assert.Contains(t, stored[0], "product")

	second := New(ctx, backing, WithStorageKey("cart:test"))
	assert.Equal(t, first.Cart(), second.Cart())
	assert.Equal(t, int64(4550), second.Cart().TotalCents)
}

func TestStore_LoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	cases := map[string]*stubKV{
		"missing":    {},
		"read error": {getErr: errors.New("disk gone")},
		"corrupt":    {value: "{not json", ok: true},
		"wrong type": {value: `{"productId":"a"}`, ok: true},
	}
	for name, backing := range cases {
		t.Run(name, func(t *testing.T) {
			var logs bytes.Buffer
			store := New(ctx, backing, WithLogger(log.New(&logs, "", 0)))
			c := store.Cart()
			assert.Empty(t, c.Lines)
			assert.Zero(t, c.TotalItems)
		})
	}
}

func TestStore_LoadSanitizesStoredLines(t *testing.T) {
	ctx := context.Background()
	backing := &stubKV{ok: true, value: `[
		{"productId":"a","quantity":2,"size":"M","color":"Red","product":{"id":"a","priceCents":1000}},
		{"productId":"a","quantity":1,"size":"M","color":"Red","product":{"id":"a","priceCents":1000}},
		{"productId":"b","quantity":0,"size":"M","color":"Black","product":{"id":"b","priceCents":2550}},
		{"productId":"","quantity":4}
	]`}

	c := New(ctx, backing).Cart()
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, int64(3000), c.TotalCents)
}

func TestStore_FailedPersistLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	backing := &stubKV{}
	var notices notify.Buffer
	store := New(ctx, backing, WithNotifier(&notices))

	_, _, err := store.AddItem(ctx, productA, 1, "M", "Red")
	require.NoError(t, err)
	notices.Drain()

	backing.setErr = errors.New("quota exceeded")
	_, c, err := store.AddItem(ctx, productA, 5, "M", "Red")
	require.Error(t, err)
	assert.Equal(t, 1, c.TotalItems)

	_, err = store.UpdateQuantity(ctx, productA.ID, 4)
	require.Error(t, err)

	_, err = store.RemoveItem(ctx, productA.ID)
	require.Error(t, err)

	c, err = store.Clear(ctx)
	require.Error(t, err)
	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 1, store.Cart().TotalItems)

	assert.Equal(t, []notify.Notice{
		notify.Error("Could not add item to cart"),
		notify.Error("Could not update cart"),
		notify.Error("Could not remove item from cart"),
		notify.Error("Could not clear cart"),
	}, notices.Drain())
}

func TestStore_RemoveOrderedTakesOnlyOrderedQuantities(t *testing.T) {
	ctx := context.Background()
	store := New(ctx, kv.NewMemory())

	_, ordered, err := store.AddItem(ctx, productA, 2, "M", "Red")
	require.NoError(t, err)

	_, _, err = store.AddItem(ctx, productA, 3, "M", "Red")
	require.NoError(t, err)
	_, _, err = store.AddItem(ctx, productB, 1, "L", "Black")
	require.NoError(t, err)

	c, err := store.RemoveOrdered(ctx, ordered.Lines)
	require.NoError(t, err)
	require.Len(t, c.Lines, 2)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, productB.ID, c.Lines[1].ProductID)
	assert.Equal(t, 4, c.TotalItems)

	c, err = store.RemoveOrdered(ctx, c.Lines)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	c, err = store.RemoveOrdered(ctx, ordered.Lines)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestStore_AggregatesHoldForRandomOperations(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	products := []domain.Product{productA, productB}
	store := New(ctx, kv.NewMemory())

	for i := 0; i < 500; i++ {
		p := products[rng.Intn(len(products))]
		var (
			c   domain.Cart
			err error
		)
		switch rng.Intn(5) {
		case 0, 1:
			_, c, err = store.AddItem(ctx, p, rng.Intn(4), p.Sizes[rng.Intn(len(p.Sizes))], p.Colors[rng.Intn(len(p.Colors))])
			if err != nil {
				require.ErrorIs(t, err, ErrInvalidQuantity)
			}
		case 2:
			c, err = store.RemoveItem(ctx, p.ID)
			require.NoError(t, err)
		case 3:
			c, err = store.UpdateQuantity(ctx, p.ID, rng.Intn(6)-2)
			require.NoError(t, err)
		case 4:
			if rng.Intn(10) == 0 {
				c, err = store.Clear(ctx)
				require.NoError(t, err)
			} else {
				c = store.Cart()
			}
		}

		var items int
		var cents int64
		seen := map[domain.VariantKey]bool{}
		for _, line := range c.Lines {
			require.GreaterOrEqual(t, line.Quantity, 1)
			require.False(t, seen[line.Key()], "duplicate variant line %+v", line.Key())
			seen[line.Key()] = true
			items += line.Quantity
			cents += line.Product.PriceCents * int64(line.Quantity)
		}
		require.Equal(t, items, c.TotalItems)
		require.Equal(t, cents, c.TotalCents)
	}
}

func TestStore_NoticesReachCallScopedNotifier(t *testing.T) {
	var base, scoped notify.Buffer
	store := New(context.Background(), kv.NewMemory(), WithNotifier(&base))
	ctx := notify.NewContext(context.Background(), &scoped)

	_, _, err := store.AddItem(ctx, productA, 1, "S", "Red")
	require.NoError(t, err)
	_, _, err = store.AddItem(context.Background(), productB, 1, "M", "Black")
	require.NoError(t, err)

	assert.Len(t, base.Drain(), 2)
	assert.Equal(t, []notify.Notice{notify.Success("Added Product A to cart")}, scoped.Drain())
}
