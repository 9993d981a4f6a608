package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
)

func newTestCatalog() (*Catalog, store.Store) {
	st := store.NewMemoryStore()
	return New(st, notify.NewBus()), st
}

func TestItemsSeedsDefaultMenu(t *testing.T) {
	cat, st := newTestCatalog()

	items, err := cat.Items()
	require.NoError(t, err)
	assert.Len(t, items, len(models.DefaultMenu))

	// seed benar-benar tertulis ke store, bukan cuma dikembalikan
	var stored []models.MenuItem
	require.NoError(t, st.Get(store.KeyMenu, &stored))
	assert.Len(t, stored, len(models.DefaultMenu))
}

func TestSaveItemValidation(t *testing.T) {
	cat, _ := newTestCatalog()

	err := cat.SaveItem(models.MenuItem{Name: "No ID", Price: 10, Category: models.CategoryKebab})
	assert.ErrorIs(t, err, ErrValidation)

	err = cat.SaveItem(models.MenuItem{ID: "9", Name: "Negatif", Price: -1, Category: models.CategoryKebab})
	assert.ErrorIs(t, err, ErrValidation)

	err = cat.SaveItem(models.MenuItem{ID: "9", Name: "Kategori", Price: 10, Category: "Bilinmeyen"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveItemReplacesByID(t *testing.T) {
	cat, _ := newTestCatalog()
	_, err := cat.Items()
	require.NoError(t, err)

	updated := models.DefaultMenu[0]
	updated.Price = 999
	require.NoError(t, cat.SaveItem(updated))

	items, err := cat.Items()
	require.NoError(t, err)
	assert.Len(t, items, len(models.DefaultMenu))

	got, err := cat.ItemByID(updated.ID)
	require.NoError(t, err)
	assert.Equal(t, 999.0, got.Price)
}

// menghapus item ikut mencabut override, diskon, dan status disabled-nya
func TestDeleteItemCascades(t *testing.T) {
	cat, _ := newTestCatalog()
	_, err := cat.Items()
	require.NoError(t, err)

	require.NoError(t, cat.SetPriceOverride("1", 350))
	require.NoError(t, cat.SetDiscount(models.DiscountRule{
		ItemID: "1", DiscountPercent: 10, Days: []int{1}, StartMinute: 0, EndMinute: 1439, IsActive: true,
	}))
	_, err = cat.ToggleAvailability("1")
	require.NoError(t, err)

	require.NoError(t, cat.DeleteItem("1"))

	_, err = cat.ItemByID("1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	overrides, err := cat.PriceOverrides()
	require.NoError(t, err)
	assert.NotContains(t, overrides, "1")

	rules, err := cat.Discounts()
	require.NoError(t, err)
	assert.NotContains(t, rules, "1")

	disabled, err := cat.DisabledItems()
	require.NoError(t, err)
	assert.False(t, disabled["1"])
}

func TestDeleteItemUnknown(t *testing.T) {
	cat, _ := newTestCatalog()
	assert.ErrorIs(t, cat.DeleteItem("nope"), store.ErrNotFound)
}

func TestToggleAvailability(t *testing.T) {
	cat, _ := newTestCatalog()

	disabled, err := cat.ToggleAvailability("1")
	require.NoError(t, err)
	assert.True(t, disabled)

	set, err := cat.DisabledItems()
	require.NoError(t, err)
	assert.True(t, set["1"])

	disabled, err = cat.ToggleAvailability("1")
	require.NoError(t, err)
	assert.False(t, disabled)

	set, err = cat.DisabledItems()
	require.NoError(t, err)
	assert.False(t, set["1"])
}

func TestSetDiscountValidation(t *testing.T) {
	cat, _ := newTestCatalog()

	err := cat.SetDiscount(models.DiscountRule{ItemID: "1", DiscountPercent: 120})
	assert.ErrorIs(t, err, ErrValidation)

	err = cat.SetDiscount(models.DiscountRule{ItemID: "1", DiscountPercent: 10, StartMinute: -5})
	assert.ErrorIs(t, err, ErrValidation)

	err = cat.SetDiscount(models.DiscountRule{ItemID: "1", DiscountPercent: 10, Days: []int{7}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEffectivePriceReadsOverrideAndDiscount(t *testing.T) {
	cat, _ := newTestCatalog()
	item, err := cat.ItemByID("1") // Adana Kebap 320
	require.NoError(t, err)

	require.NoError(t, cat.SetPriceOverride("1", 400))
	require.NoError(t, cat.SetDiscount(models.DiscountRule{
		ItemID: "1", DiscountPercent: 10,
		Days: []int{0, 1, 2, 3, 4, 5, 6}, StartMinute: 0, EndMinute: 1439, IsActive: true,
	}))

	price, err := cat.EffectivePrice(item, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 360.0, price)
}

// record diskon legacy (angka polos) hasil migrasi tetap terbaca
func TestDiscountsNormalizesLegacyRecords(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Put(store.KeyDiscounts, map[string]any{"2": 50}))

	cat := New(st, notify.NewBus())
	rules, err := cat.Discounts()
	require.NoError(t, err)

	rule, ok := rules["2"]
	require.True(t, ok)
	assert.Equal(t, "2", rule.ItemID) // di-backfill dari key map
	assert.Equal(t, 50.0, rule.DiscountPercent)
	assert.True(t, rule.IsActive)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, rule.Days)
}
