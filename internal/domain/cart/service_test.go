package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/gearshop-backend/internal/domain/catalog"
)

func testProduct(id, name string, price int64, stock int) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: "Hiking",
		Stock:    stock,
	}
}

func TestGetReturnsEmptyCartForNewSession(t *testing.T) {
	m := NewManager(newMemoryStore(), &captureNotifier{})

	c, err := m.Get(context.Background(), "session-1")
	require.NoError(t, err)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "session-1", c.SessionID)
	assert.Equal(t, int64(0), c.Subtotal())
}

func TestAddItemNewLine(t *testing.T) {
	store := newMemoryStore()
	notifier := &captureNotifier{}
	m := NewManager(store, notifier)

	c, err := m.AddItem(context.Background(), "session-1", testProduct("1", "Trail Backpack", 12999, 10))
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, int64(12999), c.Subtotal())
	assert.Equal(t, []string{"Trail Backpack added to cart"}, notifier.messages)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	notifier := &captureNotifier{}
	m := NewManager(newMemoryStore(), notifier)
	ctx := context.Background()
	p := testProduct("1", "Trail Backpack", 12999, 10)

	_, err := m.AddItem(ctx, "session-1", p)
	require.NoError(t, err)
	c, err := m.AddItem(ctx, "session-1", p)
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, int64(25998), c.Subtotal())
	assert.Equal(t, "Added another Trail Backpack to cart", notifier.messages[1])
}

func TestAddItemRespectsStock(t *testing.T) {
	m := NewManager(newMemoryStore(), &captureNotifier{})
	ctx := context.Background()
	p := testProduct("1", "Trail Backpack", 12999, 2)

	_, err := m.AddItem(ctx, "session-1", p)
	require.NoError(t, err)
	_, err = m.AddItem(ctx, "session-1", p)
	require.NoError(t, err)

	_, err = m.AddItem(ctx, "session-1", p)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	c, err := m.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddItemOutOfStockProduct(t *testing.T) {
	m := NewManager(newMemoryStore(), &captureNotifier{})

	_, err := m.AddItem(context.Background(), "session-1", testProduct("1", "Trail Backpack", 12999, 0))
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestRemoveItem(t *testing.T) {
	notifier := &captureNotifier{}
	m := NewManager(newMemoryStore(), notifier)
	ctx := context.Background()

	_, err := m.AddItem(ctx, "session-1", testProduct("1", "Trail Backpack", 12999, 10))
	require.NoError(t, err)
	_, err = m.AddItem(ctx, "session-1", testProduct("2", "Camp Stove", 5999, 10))
	require.NoError(t, err)

	c, err := m.RemoveItem(ctx, "session-1", "1")
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "2", c.Lines[0].ProductID)
	assert.Contains(t, notifier.messages, "Trail Backpack removed from cart")
}

func TestRemoveItemUnknownProductFallsBackToGenericName(t *testing.T) {
	notifier := &captureNotifier{}
	m := NewManager(newMemoryStore(), notifier)

	c, err := m.RemoveItem(context.Background(), "session-1", "missing")
	require.NoError(t, err)

	assert.True(t, c.IsEmpty())
	assert.Contains(t, notifier.messages, "Item removed from cart")
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantLines    int
		wantQuantity int
		wantErr      error
	}{
		{name: "updates existing line", quantity: 5, wantLines: 1, wantQuantity: 5},
		{name: "zero removes the line", quantity: 0, wantLines: 0},
		{name: "negative removes the line", quantity: -5, wantLines: 0},
		{name: "beyond stock is rejected", quantity: 11, wantErr: ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(newMemoryStore(), &captureNotifier{})
			ctx := context.Background()

			_, err := m.AddItem(ctx, "session-1", testProduct("1", "Trail Backpack", 12999, 10))
			require.NoError(t, err)

			c, err := m.SetQuantity(ctx, "session-1", "1", tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Len(t, c.Lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQuantity, c.Lines[0].Quantity)
			}
		})
	}
}

func TestSetQuantityUnknownProductIsNoOp(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, &captureNotifier{})
	ctx := context.Background()

	_, err := m.AddItem(ctx, "session-1", testProduct("1", "Trail Backpack", 12999, 10))
	require.NoError(t, err)

	c, err := m.SetQuantity(ctx, "session-1", "missing", 3)
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestClearLeavesEmptyCartBehind(t *testing.T) {
	m := NewManager(newMemoryStore(), &captureNotifier{})
	ctx := context.Background()

	_, err := m.AddItem(ctx, "session-1", testProduct("1", "Trail Backpack", 12999, 10))
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx, "session-1"))

	c, err := m.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestEveryMutationIsPersisted(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, &captureNotifier{})
	ctx := context.Background()

	_, err := m.AddItem(ctx, "session-1", testProduct("1", "Trail Backpack", 12999, 10))
	require.NoError(t, err)
	_, err = m.SetQuantity(ctx, "session-1", "1", 4)
	require.NoError(t, err)
	_, err = m.RemoveItem(ctx, "session-1", "1")
	require.NoError(t, err)

	assert.Equal(t, 3, store.saveCalls)
}

func TestPersistedCartMirrorsMemory(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, &captureNotifier{})
	ctx := context.Background()

	_, err := m.AddItem(ctx, "session-1", testProduct("1", "Trail Backpack", 12999, 10))
	require.NoError(t, err)
	_, err = m.AddItem(ctx, "session-1", testProduct("2", "Camp Stove", 5999, 10))
	require.NoError(t, err)
	want, err := m.SetQuantity(ctx, "session-1", "2", 3)
	require.NoError(t, err)

	// A second manager on the same store sees exactly the same cart,
	// as a fresh browser session would.
	restored, err := NewManager(store, &captureNotifier{}).Get(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, want.Subtotal(), restored.Subtotal())
	assert.Equal(t, want.TotalQuantity(), restored.TotalQuantity())
	require.Len(t, restored.Lines, 2)
	assert.Equal(t, 3, restored.Lines[1].Quantity)
}

func TestSubtotalSumsPriceTimesQuantity(t *testing.T) {
	m := NewManager(newMemoryStore(), &captureNotifier{})
	ctx := context.Background()

	products := []catalog.Product{
		testProduct("1", "Trail Backpack", 12999, 10),
		testProduct("2", "Camp Stove", 5999, 10),
		testProduct("3", "Water Filter", 3999, 10),
	}
	quantities := []int{2, 1, 4}

	var want int64
	for i, p := range products {
		_, err := m.AddItem(ctx, "session-1", p)
		require.NoError(t, err)
		_, err = m.SetQuantity(ctx, "session-1", p.ID, quantities[i])
		require.NoError(t, err)
		want += p.Price * int64(quantities[i])
	}

	c, err := m.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, want, c.Subtotal())
	assert.Equal(t, 7, c.TotalQuantity())

	totals := c.CalculateTotals()
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, want, totals.SubTotal)
}
