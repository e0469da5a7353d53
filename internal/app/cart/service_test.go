package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
)

type memoryStore struct {
	snapshots map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: make(map[string][]byte)}
}

func (s *memoryStore) Load(ctx context.Context, cartID string) ([]byte, error) {
	return s.snapshots[cartID], nil
}

func (s *memoryStore) Save(ctx context.Context, cartID string, data []byte) error {
	s.snapshots[cartID] = data
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, cartID string) error {
	delete(s.snapshots, cartID)
	return nil
}

func newTestService() (*Service, *memoryStore) {
	store := newMemoryStore()
	return NewService(store, logger.New("test")), store
}

func TestServiceRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	biryani := domain.CartLine{ItemID: 1, Name: "Chicken Biryani", UnitPrice: 10.00, Quantity: 1}
	naan := domain.CartLine{ItemID: 2, Name: "Naan", UnitPrice: 5.00, Quantity: 1}

	_, err := svc.AddItem(ctx, "c1", biryani)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", biryani)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", naan)
	require.NoError(t, err)

	// A fresh Get must see the persisted snapshot, not in-memory state.
	cart, err := svc.Get(ctx, "c1")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.InDelta(t, 25.00, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Count())
}

func TestServiceCartsAreIsolated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", domain.CartLine{ItemID: 1, Name: "Karahi", UnitPrice: 15.00, Quantity: 1})
	require.NoError(t, err)

	other, err := svc.Get(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestServiceUpdateQuantityRemovesAtZero(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", domain.CartLine{ItemID: 1, Name: "Karahi", UnitPrice: 15.00, Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "c1", 1, -1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Persisted state agrees.
	cart, err = svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestServiceClear(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", domain.CartLine{ItemID: 1, Name: "Karahi", UnitPrice: 15.00, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "c1"))
	assert.NotContains(t, store.snapshots, "c1")
}

func TestServiceCorruptSnapshotBecomesEmptyCart(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	store.snapshots["c1"] = []byte("{not json")

	cart, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// The cart is usable again after the bad snapshot is discarded.
	cart, err = svc.AddItem(ctx, "c1", domain.CartLine{ItemID: 1, Name: "Lassi", UnitPrice: 3.50, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count())
}
