// Package pricing menghitung harga efektif sebuah item menu pada suatu
// waktu. Seluruh fungsi pure dan deterministik terhadap parameter now.
package pricing

import (
	"math"
	"time"

	"github.com/yeremiapane/lezzetkare/models"
)

// Round membulatkan ke lira utuh, half away from zero (ikut perilaku
// Math.round pada domain harga positif).
func Round(v float64) float64 {
	return math.Round(v)
}

// RuleInEffect -> true jika rule aktif dan now jatuh di dalam hari dan
// window menit rule, inclusive di kedua ujung.
//
// Window dengan StartMinute > EndMinute (promo lewat tengah malam) tidak
// didukung: rule seperti itu tidak pernah in effect. Ini mengikuti
// perilaku sumber; wraparound menunggu keputusan produk.
func RuleInEffect(rule models.DiscountRule, now time.Time) bool {
	if !rule.IsActive {
		return false
	}
	if !rule.AppliesOnDay(int(now.Weekday())) {
		return false
	}
	minute := now.Hour()*60 + now.Minute()
	return minute >= rule.StartMinute && minute <= rule.EndMinute
}

// BasePrice -> harga dasar: override kalau ada, kalau tidak harga item
func BasePrice(item models.MenuItem, override *float64) float64 {
	if override != nil {
		return *override
	}
	return item.Price
}

// EffectivePrice -> harga yang berlaku pada instant now.
// Persen 0 berarti tidak ada potongan walau rule sedang in effect.
func EffectivePrice(item models.MenuItem, override *float64, rule *models.DiscountRule, now time.Time) float64 {
	base := BasePrice(item, override)
	if rule != nil && rule.DiscountPercent > 0 && RuleInEffect(*rule, now) {
		return Round(base * (1 - rule.DiscountPercent/100))
	}
	return base
}

// HasActiveDiscount -> untuk tampilan: harga final benar-benar lebih
// murah dari harga dasar saat ini
func HasActiveDiscount(item models.MenuItem, override *float64, rule *models.DiscountRule, now time.Time) bool {
	return EffectivePrice(item, override, rule, now) < BasePrice(item, override)
}
