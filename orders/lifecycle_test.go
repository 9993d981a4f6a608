package orders

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
	"github.com/yeremiapane/lezzetkare/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func newTestController(t *testing.T, noter KitchenNoter) (*Controller, *cart.Manager, *catalog.Catalog) {
	st := store.NewMemoryStore()
	bus := notify.NewBus()
	cat := catalog.New(st, bus)
	_, err := cat.Items()
	require.NoError(t, err)
	carts := cart.NewManager(st, bus, cat)
	return NewController(st, bus, carts, noter), carts, cat
}

func fillCart(t *testing.T, carts *cart.Manager, tableID string, itemIDs ...string) {
	for _, id := range itemIDs {
		_, err := carts.AddItem(tableID, id, time.Now())
		require.NoError(t, err)
	}
}

// 2x Adana Kebap (320) + 1x Yayık Ayran (45) = 685
func TestSubmitComputesTotalAndClearsCart(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)
	fillCart(t, carts, "5", "1", "1", "4")

	order, err := ctl.Submit("5")
	require.NoError(t, err)

	assert.Equal(t, "5", order.TableID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 685.0, order.TotalAmount)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	items, err := carts.Get("5")
	require.NoError(t, err)
	assert.Empty(t, items)

	all, err := ctl.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitEmptyCart(t *testing.T) {
	ctl, _, _ := newTestController(t, nil)

	_, err := ctl.Submit("5")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

// total order adalah snapshot: perubahan harga setelah submit tidak berpengaruh
func TestOrderSnapshotImmutable(t *testing.T) {
	ctl, carts, cat := newTestController(t, nil)
	fillCart(t, carts, "5", "1")

	order, err := ctl.Submit("5")
	require.NoError(t, err)
	assert.Equal(t, 320.0, order.TotalAmount)

	require.NoError(t, cat.SetPriceOverride("1", 999))

	got, err := ctl.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 320.0, got.TotalAmount)
	assert.Equal(t, 320.0, got.Items[0].Price)
}

func TestAdvanceLegalPath(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)
	fillCart(t, carts, "5", "1")
	order, err := ctl.Submit("5")
	require.NoError(t, err)

	order, err = ctl.Advance(order.ID, models.OrderReady)
	require.NoError(t, err)
	assert.Equal(t, models.OrderReady, order.Status)

	order, err = ctl.Advance(order.ID, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, order.Status)
}

func TestAdvanceIllegalTransitions(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)
	fillCart(t, carts, "5", "1")
	order, err := ctl.Submit("5")
	require.NoError(t, err)

	// PENDING -> COMPLETED melompati READY
	_, err = ctl.Advance(order.ID, models.OrderCompleted)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// status tidak dikenal
	_, err = ctl.Advance(order.ID, "BURNED")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// terminal state tidak bisa digerakkan lagi
	_, err = ctl.Advance(order.ID, models.OrderReady)
	require.NoError(t, err)
	_, err = ctl.Advance(order.ID, models.OrderCompleted)
	require.NoError(t, err)
	_, err = ctl.Advance(order.ID, models.OrderReady)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// order tidak ada
	_, err = ctl.Advance("nope", models.OrderReady)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCancelOnlyWhilePending(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)
	fillCart(t, carts, "5", "1")
	order, err := ctl.Submit("5")
	require.NoError(t, err)

	cancelled, err := ctl.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)
}

// staff keburu menggeser ke READY: pembatalan telat ditolak, bukan menimpa
func TestCancelAfterStaffAdvanceRejected(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)
	fillCart(t, carts, "5", "1")
	order, err := ctl.Submit("5")
	require.NoError(t, err)

	_, err = ctl.Advance(order.ID, models.OrderReady)
	require.NoError(t, err)

	_, err = ctl.Cancel(order.ID)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	got, err := ctl.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderReady, got.Status)
}

func TestByTableNewestFirst(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)

	fillCart(t, carts, "5", "1")
	first, err := ctl.Submit("5")
	require.NoError(t, err)

	fillCart(t, carts, "5", "4")
	second, err := ctl.Submit("5")
	require.NoError(t, err)

	fillCart(t, carts, "7", "3")
	_, err = ctl.Submit("7")
	require.NoError(t, err)

	list, err := ctl.ByTable("5")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

type stubNoter struct{ note string }

func (s stubNoter) SummarizeForKitchen(ctx context.Context, items []models.CartItem) string {
	return s.note
}

// catatan dapur menempel async setelah submit, tanpa memblokir
func TestSubmitAttachesKitchenNoteAsync(t *testing.T) {
	ctl, carts, _ := newTestController(t, stubNoter{note: "Acısız olsun şef"})
	fillCart(t, carts, "5", "1")

	order, err := ctl.Submit("5")
	require.NoError(t, err)
	assert.Empty(t, order.AiNote) // belum menempel saat submit kembali

	assert.Eventually(t, func() bool {
		got, err := ctl.Get(order.ID)
		return err == nil && got.AiNote == "Acısız olsun şef"
	}, 2*time.Second, 10*time.Millisecond)
}

// noter gagal (string kosong): order tetap sehat tanpa catatan
func TestSubmitWithFailingNoter(t *testing.T) {
	ctl, carts, _ := newTestController(t, stubNoter{note: ""})
	fillCart(t, carts, "5", "1")

	order, err := ctl.Submit("5")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	got, err := ctl.Get(order.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AiNote)
	assert.Equal(t, models.OrderPending, got.Status)
}

func TestAddFeedback(t *testing.T) {
	ctl, carts, _ := newTestController(t, nil)
	fillCart(t, carts, "5", "1")
	order, err := ctl.Submit("5")
	require.NoError(t, err)

	// order belum COMPLETED
	err = ctl.AddFeedback(models.Feedback{OrderID: order.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	_, err = ctl.Advance(order.ID, models.OrderReady)
	require.NoError(t, err)
	_, err = ctl.Advance(order.ID, models.OrderCompleted)
	require.NoError(t, err)

	// rating di luar 1-5
	err = ctl.AddFeedback(models.Feedback{OrderID: order.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	require.NoError(t, ctl.AddFeedback(models.Feedback{
		OrderID: order.ID, Rating: 5, Tags: []string{"lezzetli"}, Comment: "Harika",
	}))

	// satu entry per order
	err = ctl.AddFeedback(models.Feedback{OrderID: order.ID, Rating: 4})
	assert.ErrorIs(t, err, ErrFeedbackExists)

	entries, err := ctl.Feedback()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "5", entries[0].TableID) // di-backfill dari order
	assert.False(t, entries[0].CreatedAt.IsZero())
}
