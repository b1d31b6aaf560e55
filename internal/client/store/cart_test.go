package store

import (
	"context"
	"errors"
	"testing"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/stretchr/testify/require"
)

func cartLines() []models.CartLine {
	return []models.CartLine{
		{ID: "a", ProductID: "p1", Name: "Moby Dick", Price: 10, Quantity: 2},
		{ID: "b", ProductID: "p2", Name: "Dune", Price: 5, Quantity: 1},
	}
}

func TestCartTotal(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.Equal(t, 25.0, s.Total())
}

func TestCartFetch_Failure_KeepsPreviousLines(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	fc.cartLinesErr = errors.New("service unavailable")
	require.Error(t, s.Fetch(context.Background()))

	require.Len(t, s.Items(), 2)
	require.Equal(t, "service unavailable", s.Err())
}

func TestCartAdd_TriggersRefetch(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())

	require.NoError(t, s.Add(context.Background(), "p3", 1))
	require.Equal(t, 1, fc.cartLinesCalls)
	require.Len(t, s.Items(), 2)
}

func TestCartDecrement_QuantityOne_ProducesRemove(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.NoError(t, s.Decrement(context.Background(), "b"))

	require.Equal(t, []string{"b"}, fc.removeCartIDs)
	require.Empty(t, fc.updateCartCalls, "quantity one must remove the line, never update to zero")
}

func TestCartDecrement_QuantityAboveOne_ProducesUpdate(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.NoError(t, s.Decrement(context.Background(), "a"))

	require.Empty(t, fc.removeCartIDs)
	require.Len(t, fc.updateCartCalls, 1)
	require.Equal(t, "a", fc.updateCartCalls[0].ID)
	require.Equal(t, 1, fc.updateCartCalls[0].Quantity)
}

func TestCartIncrement(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.NoError(t, s.Increment(context.Background(), "b"))

	require.Len(t, fc.updateCartCalls, 1)
	require.Equal(t, 2, fc.updateCartCalls[0].Quantity)
}

func TestCartDecrement_UnknownLine(t *testing.T) {
	fc := &fakeClient{cartLines: cartLines()}
	s := NewCartStore(fc, testLogger())
	require.NoError(t, s.Fetch(context.Background()))

	require.Error(t, s.Decrement(context.Background(), "nope"))
	require.Empty(t, fc.removeCartIDs)
	require.Empty(t, fc.updateCartCalls)
}
