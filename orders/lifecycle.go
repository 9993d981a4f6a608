// Package orders menegakkan state machine order:
//
//	PENDING -> READY -> COMPLETED
//	PENDING -> CANCELLED
//
// READY, COMPLETED, dan CANCELLED terminal kecuali edge staff
// READY -> COMPLETED. Order tidak pernah dihapus, hanya bertransisi.
package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/lezzetkare/cart"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
	"github.com/yeremiapane/lezzetkare/utils"
)

var (
	// ErrIllegalTransition -> transisi tidak sah dari status sekarang
	// atau oleh peran pemanggil; tidak ada write yang terjadi
	ErrIllegalTransition = errors.New("illegal order status transition")
	// ErrEmptyCart -> submit dengan keranjang kosong
	ErrEmptyCart = errors.New("cannot submit an empty cart")
)

// KitchenNoter -> kolaborator eksternal penghasil catatan dapur.
// Hasilnya advisory murni: boleh kosong, tidak pernah menggagalkan
// operasi apa pun.
type KitchenNoter interface {
	SummarizeForKitchen(ctx context.Context, items []models.CartItem) string
}

type Controller struct {
	store store.Store
	bus   *notify.Bus
	carts *cart.Manager
	notes KitchenNoter

	// NoteTimeout membatasi fetch catatan dapur; lewat dari ini order
	// tetap commit tanpa catatan
	NoteTimeout time.Duration
}

func NewController(st store.Store, bus *notify.Bus, carts *cart.Manager, notes KitchenNoter) *Controller {
	return &Controller{
		store:       st,
		bus:         bus,
		carts:       carts,
		notes:       notes,
		NoteTimeout: 5 * time.Second,
	}
}

func (c *Controller) publish() {
	if c.bus != nil {
		c.bus.Publish()
	}
}

// All -> seluruh koleksi order (key "orders" menyimpan sequence penuh)
func (c *Controller) All() ([]models.Order, error) {
	var list []models.Order
	err := c.store.Get(store.KeyOrders, &list)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ByTable -> riwayat order sebuah meja, terbaru dulu
func (c *Controller) ByTable(tableID string) ([]models.Order, error) {
	all, err := c.All()
	if err != nil {
		return nil, err
	}
	var list []models.Order
	for _, o := range all {
		if o.TableID == tableID {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (c *Controller) Get(orderID string) (models.Order, error) {
	all, err := c.All()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range all {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", orderID, store.ErrNotFound)
}

// Submit membuat order dari keranjang meja. Harga sudah ter-capture di
// tiap CartItem; total = jumlah subtotal baris. Keranjang dikosongkan
// setelah order tertulis. Catatan dapur diambil async best-effort dan
// tidak pernah memblokir atau menggagalkan submit.
func (c *Controller) Submit(tableID string) (models.Order, error) {
	items, err := c.carts.Get(tableID)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}

	order := models.Order{
		ID:          uuid.NewString(),
		TableID:     tableID,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderPending,
		CreatedAt:   time.Now(),
	}

	all, err := c.All()
	if err != nil {
		return models.Order{}, err
	}
	all = append(all, order)
	if err := c.store.Put(store.KeyOrders, all); err != nil {
		return models.Order{}, err
	}
	if err := c.carts.Clear(tableID); err != nil {
		return models.Order{}, err
	}
	c.publish()

	if c.notes != nil {
		go c.attachKitchenNote(order.ID, order.Items)
	}
	return order, nil
}

// attachKitchenNote -> fetch catatan dapur dengan hard timeout lalu
// tempelkan ke order kalau masih kosong. Semua kegagalan ditelan.
func (c *Controller) attachKitchenNote(orderID string, items []models.CartItem) {
	ctx, cancel := context.WithTimeout(context.Background(), c.NoteTimeout)
	defer cancel()

	note := c.notes.SummarizeForKitchen(ctx, items)
	if note == "" {
		return
	}

	all, err := c.All()
	if err != nil {
		utils.ErrorLogger.Printf("attach kitchen note: %v", err)
		return
	}
	for i := range all {
		if all[i].ID == orderID && all[i].AiNote == "" {
			all[i].AiNote = note
			if err := c.store.Put(store.KeyOrders, all); err != nil {
				utils.ErrorLogger.Printf("attach kitchen note: %v", err)
				return
			}
			c.publish()
			return
		}
	}
}

// legalTarget -> tabel transisi yang diizinkan untuk Advance (staff)
func legalTarget(from, to models.OrderStatus) bool {
	switch from {
	case models.OrderPending:
		return to == models.OrderReady
	case models.OrderReady:
		return to == models.OrderCompleted
	}
	return false
}

// Advance menggerakkan order ke target status, hanya oleh staff.
// Status dibaca ulang tepat sebelum menulis: kalau terminal staff lain
// sudah menggeser order, pemanggil yang telat mendapat
// ErrIllegalTransition, bukan menimpa.
func (c *Controller) Advance(orderID string, target models.OrderStatus) (models.Order, error) {
	if !target.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, target)
	}

	all, err := c.All()
	if err != nil {
		return models.Order{}, err
	}
	for i := range all {
		if all[i].ID != orderID {
			continue
		}
		if !legalTarget(all[i].Status, target) {
			return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, all[i].Status, target)
		}
		all[i].Status = target
		if err := c.store.Put(store.KeyOrders, all); err != nil {
			return models.Order{}, err
		}
		c.publish()
		return all[i], nil
	}
	return models.Order{}, fmt.Errorf("order %s: %w", orderID, store.ErrNotFound)
}

// Cancel membatalkan order atas permintaan customer. Hanya sah selama
// status yang baru dibaca ulang masih PENDING; kalau staff keburu
// menggesernya ke READY, pembatalan ditolak walau view lokal customer
// masih menampilkan PENDING.
func (c *Controller) Cancel(orderID string) (models.Order, error) {
	all, err := c.All()
	if err != nil {
		return models.Order{}, err
	}
	for i := range all {
		if all[i].ID != orderID {
			continue
		}
		if all[i].Status != models.OrderPending {
			return models.Order{}, fmt.Errorf("%w: order is already %s", ErrIllegalTransition, all[i].Status)
		}
		all[i].Status = models.OrderCancelled
		if err := c.store.Put(store.KeyOrders, all); err != nil {
			return models.Order{}, err
		}
		c.publish()
		return all[i], nil
	}
	return models.Order{}, fmt.Errorf("order %s: %w", orderID, store.ErrNotFound)
}
