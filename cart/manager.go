// Package cart mengelola keranjang kerja per meja sebelum submit.
// Keranjang disimpan di key cart_<tableId> dan hanya dibersihkan saat
// order berhasil dibuat.
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/lezzetkare/catalog"
	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/store"
)

var (
	// ErrItemUnavailable -> item ada di disabled set
	ErrItemUnavailable = errors.New("menu item is currently unavailable")
	// ErrNothingToReorder -> semua baris order lama ter-skip
	ErrNothingToReorder = errors.New("all items of the order are unavailable")
)

type Manager struct {
	store   store.Store
	bus     *notify.Bus
	catalog *catalog.Catalog
}

func NewManager(st store.Store, bus *notify.Bus, cat *catalog.Catalog) *Manager {
	return &Manager{store: st, bus: bus, catalog: cat}
}

func (m *Manager) publish() {
	if m.bus != nil {
		m.bus.Publish()
	}
}

// Get -> isi keranjang meja; keranjang kosong bukan error
func (m *Manager) Get(tableID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := m.store.Get(store.CartKey(tableID), &items)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem menambahkan satu unit item ke keranjang. Harga di-capture
// dari pricing engine pada saat add; keranjang dibaca ulang tepat
// sebelum ditulis supaya delta quantity tidak menimpa write lain.
func (m *Manager) AddItem(tableID, itemID string, now time.Time) (models.CartItem, error) {
	item, err := m.catalog.ItemByID(itemID)
	if err != nil {
		return models.CartItem{}, err
	}
	disabled, err := m.catalog.DisabledItems()
	if err != nil {
		return models.CartItem{}, err
	}
	if disabled[itemID] {
		return models.CartItem{}, fmt.Errorf("%s: %w", item.Name, ErrItemUnavailable)
	}
	price, err := m.catalog.EffectivePrice(item, now)
	if err != nil {
		return models.CartItem{}, err
	}

	items, err := m.Get(tableID)
	if err != nil {
		return models.CartItem{}, err
	}
	var line models.CartItem
	found := false
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity++
			items[i].Price = price
			line = items[i]
			found = true
			break
		}
	}
	if !found {
		snapshot := item
		snapshot.Price = price
		line = models.CartItem{MenuItem: snapshot, Quantity: 1}
		items = append(items, line)
	}
	if err := m.store.Put(store.CartKey(tableID), items); err != nil {
		return models.CartItem{}, err
	}
	m.publish()
	return line, nil
}

// SetQuantity mengganti jumlah sebuah baris; q <= 0 menghapus baris.
// Keranjang tidak pernah menyimpan baris dengan quantity <= 0.
func (m *Manager) SetQuantity(tableID, itemID string, q int) error {
	items, err := m.Get(tableID)
	if err != nil {
		return err
	}
	idx := -1
	for i := range items {
		if items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		if q <= 0 {
			// baris sudah tidak ada, hasil akhirnya sama
			return nil
		}
		return fmt.Errorf("cart line %s: %w", itemID, store.ErrNotFound)
	}
	if q <= 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].Quantity = q
	}
	if err := m.store.Put(store.CartKey(tableID), items); err != nil {
		return err
	}
	m.publish()
	return nil
}

// Clear membuang keranjang meja (dipanggil setelah submit sukses)
func (m *Manager) Clear(tableID string) error {
	if err := m.store.Delete(store.CartKey(tableID)); err != nil {
		return err
	}
	m.publish()
	return nil
}

// Reorder menggabungkan baris sebuah order lama ke keranjang meja.
// Baris yang itemnya sedang disabled di-skip dan dihitung; kalau semua
// ter-skip, keranjang tidak disentuh dan operasi gagal dengan
// ErrNothingToReorder.
func (m *Manager) Reorder(tableID string, order models.Order) (merged, skipped int, err error) {
	disabled, err := m.catalog.DisabledItems()
	if err != nil {
		return 0, 0, err
	}

	items, err := m.Get(tableID)
	if err != nil {
		return 0, 0, err
	}
	for _, old := range order.Items {
		if disabled[old.ID] {
			skipped++
			continue
		}
		exists := false
		for i := range items {
			if items[i].ID == old.ID {
				items[i].Quantity += old.Quantity
				exists = true
				break
			}
		}
		if !exists {
			items = append(items, old)
		}
		merged++
	}
	if merged == 0 {
		return 0, skipped, ErrNothingToReorder
	}
	if err := m.store.Put(store.CartKey(tableID), items); err != nil {
		return 0, 0, err
	}
	m.publish()
	return merged, skipped, nil
}
