// Package catalog mengelola data menu milik staff: daftar item, price
// override, aturan diskon, dan set item yang sedang tidak tersedia.
// Semua mutasi read-modify-write seluruh record lalu publish ke bus.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/notify"
	"github.com/yeremiapane/lezzetkare/pricing"
	"github.com/yeremiapane/lezzetkare/store"
)

var ErrValidation = errors.New("validation error")

type Catalog struct {
	store store.Store
	bus   *notify.Bus
}

func New(st store.Store, bus *notify.Bus) *Catalog {
	return &Catalog{store: st, bus: bus}
}

func (c *Catalog) publish() {
	if c.bus != nil {
		c.bus.Publish()
	}
}

// Items -> isi key "menu"; kalau belum ada, seed menu default dulu
func (c *Catalog) Items() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.store.Get(store.KeyMenu, &items)
	if errors.Is(err, store.ErrNotFound) {
		if err := c.store.Put(store.KeyMenu, models.DefaultMenu); err != nil {
			return nil, err
		}
		c.publish()
		return append([]models.MenuItem(nil), models.DefaultMenu...), nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Catalog) ItemByID(id string) (models.MenuItem, error) {
	items, err := c.Items()
	if err != nil {
		return models.MenuItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, store.ErrNotFound)
}

// SaveItem -> staff menambah atau mengubah satu item (replace by id)
func (c *Catalog) SaveItem(item models.MenuItem) error {
	if item.ID == "" || item.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrValidation)
	}
	if item.Price < 0 || item.Cost < 0 {
		return fmt.Errorf("%w: price and cost must not be negative", ErrValidation)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, item.Category)
	}

	items, err := c.Items()
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	if err := c.store.Put(store.KeyMenu, items); err != nil {
		return err
	}
	c.publish()
	return nil
}

// DeleteItem menghapus item dari menu sekaligus mencabut override,
// diskon, dan status disabled yang terkait dengan id tersebut (cascade).
func (c *Catalog) DeleteItem(id string) error {
	items, err := c.Items()
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return fmt.Errorf("menu item %s: %w", id, store.ErrNotFound)
	}
	if err := c.store.Put(store.KeyMenu, kept); err != nil {
		return err
	}

	if overrides, err := c.PriceOverrides(); err == nil {
		if _, ok := overrides[id]; ok {
			delete(overrides, id)
			if err := c.store.Put(store.KeyPriceOverrides, overrides); err != nil {
				return err
			}
		}
	}
	if rules, err := c.Discounts(); err == nil {
		if _, ok := rules[id]; ok {
			delete(rules, id)
			if err := c.store.Put(store.KeyDiscounts, rules); err != nil {
				return err
			}
		}
	}
	if disabled, err := c.DisabledItems(); err == nil {
		if disabled[id] {
			delete(disabled, id)
			if err := c.putDisabled(disabled); err != nil {
				return err
			}
		}
	}

	c.publish()
	return nil
}

// PriceOverrides -> mapping itemId -> harga saat ini (last write wins)
func (c *Catalog) PriceOverrides() (map[string]float64, error) {
	overrides := map[string]float64{}
	err := c.store.Get(store.KeyPriceOverrides, &overrides)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return overrides, nil
}

func (c *Catalog) SetPriceOverride(itemID string, price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if _, err := c.ItemByID(itemID); err != nil {
		return err
	}
	overrides, err := c.PriceOverrides()
	if err != nil {
		return err
	}
	overrides[itemID] = price
	if err := c.store.Put(store.KeyPriceOverrides, overrides); err != nil {
		return err
	}
	c.publish()
	return nil
}

// Discounts -> mapping itemId -> rule. Record legacy (persen polos)
// sudah dinormalisasi oleh DiscountRule.UnmarshalJSON saat dibaca;
// begitu disimpan ulang, bentuknya selalu struktural.
func (c *Catalog) Discounts() (map[string]models.DiscountRule, error) {
	rules := map[string]models.DiscountRule{}
	err := c.store.Get(store.KeyDiscounts, &rules)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	for id, rule := range rules {
		if rule.ItemID == "" {
			rule.ItemID = id
			rules[id] = rule
		}
	}
	return rules, nil
}

func (c *Catalog) SetDiscount(rule models.DiscountRule) error {
	if rule.DiscountPercent < 0 || rule.DiscountPercent > 100 {
		return fmt.Errorf("%w: percent must be within 0-100", ErrValidation)
	}
	if rule.StartMinute < 0 || rule.StartMinute > 23*60+59 ||
		rule.EndMinute < 0 || rule.EndMinute > 23*60+59 {
		return fmt.Errorf("%w: time window out of range", ErrValidation)
	}
	for _, d := range rule.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: invalid weekday %d", ErrValidation, d)
		}
	}
	if _, err := c.ItemByID(rule.ItemID); err != nil {
		return err
	}
	rules, err := c.Discounts()
	if err != nil {
		return err
	}
	rules[rule.ItemID] = rule
	if err := c.store.Put(store.KeyDiscounts, rules); err != nil {
		return err
	}
	c.publish()
	return nil
}

// DisabledItems -> set itemId yang sedang tidak tersedia
func (c *Catalog) DisabledItems() (map[string]bool, error) {
	var ids []string
	err := c.store.Get(store.KeyDisabledItems, &ids)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ToggleAvailability -> staff menyalakan/mematikan item; mengembalikan
// status disabled yang baru
func (c *Catalog) ToggleAvailability(itemID string) (bool, error) {
	if _, err := c.ItemByID(itemID); err != nil {
		return false, err
	}
	disabled, err := c.DisabledItems()
	if err != nil {
		return false, err
	}
	nowDisabled := !disabled[itemID]
	if nowDisabled {
		disabled[itemID] = true
	} else {
		delete(disabled, itemID)
	}
	if err := c.putDisabled(disabled); err != nil {
		return false, err
	}
	c.publish()
	return nowDisabled, nil
}

func (c *Catalog) putDisabled(disabled map[string]bool) error {
	ids := make([]string, 0, len(disabled))
	for id := range disabled {
		ids = append(ids, id)
	}
	return c.store.Put(store.KeyDisabledItems, ids)
}

// EffectivePrice -> harga berlaku untuk item, membaca override + diskon
// dari store lalu menyerahkan hitungan ke pricing engine
func (c *Catalog) EffectivePrice(item models.MenuItem, now time.Time) (float64, error) {
	overrides, err := c.PriceOverrides()
	if err != nil {
		return 0, err
	}
	rules, err := c.Discounts()
	if err != nil {
		return 0, err
	}
	var override *float64
	if v, ok := overrides[item.ID]; ok {
		override = &v
	}
	var rule *models.DiscountRule
	if r, ok := rules[item.ID]; ok {
		rule = &r
	}
	return pricing.EffectivePrice(item, override, rule, now), nil
}
