package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
)

func newTestManager(t *testing.T) (*Manager, *catalog.Catalog) {
	st := store.NewMemoryStore()
	bus := notify.NewBus()
	cat := catalog.New(st, bus)
	_, err := cat.Items() // seed
	require.NoError(t, err)
	return NewManager(st, bus, cat), cat
}

func TestGetEmptyCart(t *testing.T) {
	m, _ := newTestManager(t)

	items, err := m.Get("5")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItemCreatesAndIncrementsLine(t *testing.T) {
	m, _ := newTestManager(t)
	now := time.Now()

	line, err := m.AddItem("5", "1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 320.0, line.Price)

	line, err = m.AddItem("5", "1", now)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	items, err := m.Get("5")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

// harga di-capture dari pricing engine saat add, bukan saat submit
func TestAddItemCapturesEffectivePrice(t *testing.T) {
	m, cat := newTestManager(t)

	require.NoError(t, cat.SetDiscount(models.DiscountRule{
		ItemID: "1", DiscountPercent: 10,
		Days: []int{0, 1, 2, 3, 4, 5, 6}, StartMinute: 0, EndMinute: 1439, IsActive: true,
	}))

	line, err := m.AddItem("5", "1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 288.0, line.Price) // 320 - 10%
}

func TestAddItemRejectsDisabled(t *testing.T) {
	m, cat := newTestManager(t)
	_, err := cat.ToggleAvailability("1")
	require.NoError(t, err)

	_, err = m.AddItem("5", "1", time.Now())
	assert.ErrorIs(t, err, ErrItemUnavailable)

	items, err := m.Get("5")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItemUnknown(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.AddItem("5", "nope", time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetQuantity(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.AddItem("5", "1", time.Now())
	require.NoError(t, err)

	require.NoError(t, m.SetQuantity("5", "1", 4))
	items, err := m.Get("5")
	require.NoError(t, err)
	assert.Equal(t, 4, items[0].Quantity)

	// quantity <= 0 menghapus baris
	require.NoError(t, m.SetQuantity("5", "1", 0))
	items, err = m.Get("5")
	require.NoError(t, err)
	assert.Empty(t, items)

	// baris sudah hilang + target 0 -> no-op, bukan error
	require.NoError(t, m.SetQuantity("5", "1", 0))

	// baris hilang + target positif -> not found
	assert.ErrorIs(t, m.SetQuantity("5", "1", 2), store.ErrNotFound)
}

func TestClear(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.AddItem("5", "1", time.Now())
	require.NoError(t, err)

	require.NoError(t, m.Clear("5"))
	items, err := m.Get("5")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReorderMergesAndSkips(t *testing.T) {
	m, cat := newTestManager(t)
	now := time.Now()

	// keranjang sudah punya 1x item "1"
	_, err := m.AddItem("5", "1", now)
	require.NoError(t, err)

	// item "3" sedang habis
	_, err = cat.ToggleAvailability("3")
	require.NoError(t, err)

	old := models.Order{
		ID:      "ord-1",
		TableID: "5",
		Items: []models.CartItem{
			{MenuItem: models.MenuItem{ID: "1", Name: "Adana Kebap", Price: 320}, Quantity: 2},
			{MenuItem: models.MenuItem{ID: "3", Name: "Cheeseburger", Price: 280}, Quantity: 1},
		},
	}

	merged, skipped, err := m.Reorder("5", old)
	require.NoError(t, err)
	assert.Equal(t, 1, merged)
	assert.Equal(t, 1, skipped)

	items, err := m.Get("5")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity) // 1 existing + 2 dari order lama
}

// semua baris ter-skip: keranjang tidak disentuh dan operasi gagal
func TestReorderAllSkipped(t *testing.T) {
	m, cat := newTestManager(t)
	_, err := cat.ToggleAvailability("1")
	require.NoError(t, err)

	old := models.Order{
		ID: "ord-1", TableID: "5",
		Items: []models.CartItem{
			{MenuItem: models.MenuItem{ID: "1", Price: 320}, Quantity: 2},
		},
	}

	merged, skipped, err := m.Reorder("5", old)
	assert.ErrorIs(t, err, ErrNothingToReorder)
	assert.Equal(t, 0, merged)
	assert.Equal(t, 1, skipped)

	items, err := m.Get("5")
	require.NoError(t, err)
	assert.Empty(t, items)
}
