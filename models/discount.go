package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DiscountRule -> aturan diskon per item, maksimal satu rule per itemId.
// Window waktu inclusive di kedua ujung, dalam menit sejak 00:00.
// Days memakai index weekday JS/Go: 0 = Minggu.
type DiscountRule struct {
	ItemID          string  `json:"itemId"`
	DiscountPercent float64 `json:"discountPercent"`
	Days            []int   `json:"days"`
	StartMinute     int     `json:"startMinute"`
	EndMinute       int     `json:"endMinute"`
	IsActive        bool    `json:"isActive"`
}

// AppliesOnDay -> cek apakah weekday (0=Minggu) termasuk dalam rule
func (r DiscountRule) AppliesOnDay(weekday int) bool {
	for _, d := range r.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// discountRuleRecord menampung semua bentuk tersimpan dari sebuah rule:
// field menit (bentuk kanonik) maupun string jam "HH:mm" dari record lama.
type discountRuleRecord struct {
	ItemID          string  `json:"itemId"`
	DiscountPercent float64 `json:"discountPercent"`
	Days            []int   `json:"days"`
	StartMinute     *int    `json:"startMinute"`
	EndMinute       *int    `json:"endMinute"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	IsActive        *bool   `json:"isActive"`
}

// UnmarshalJSON melakukan migrasi bentuk legacy di boundary deserialisasi.
// Record lama bisa berupa angka persen polos; bentuk itu dinormalisasi
// menjadi "aktif, setiap hari, sepanjang hari". Setelah titik ini hanya
// ada satu representasi internal.
func (r *DiscountRule) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 0 && trimmed[0] != '{' {
		var percent float64
		if err := json.Unmarshal(data, &percent); err != nil {
			return fmt.Errorf("discount rule: %w", err)
		}
		*r = DiscountRule{
			DiscountPercent: percent,
			Days:            []int{0, 1, 2, 3, 4, 5, 6},
			StartMinute:     0,
			EndMinute:       23*60 + 59,
			IsActive:        true,
		}
		return nil
	}

	var rec discountRuleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	rule := DiscountRule{
		ItemID:          rec.ItemID,
		DiscountPercent: rec.DiscountPercent,
		Days:            rec.Days,
		StartMinute:     0,
		EndMinute:       23*60 + 59,
		IsActive:        true,
	}
	if rec.StartMinute != nil {
		rule.StartMinute = *rec.StartMinute
	} else if rec.StartTime != "" {
		m, err := ParseClock(rec.StartTime)
		if err != nil {
			return err
		}
		rule.StartMinute = m
	}
	if rec.EndMinute != nil {
		rule.EndMinute = *rec.EndMinute
	} else if rec.EndTime != "" {
		m, err := ParseClock(rec.EndTime)
		if err != nil {
			return err
		}
		rule.EndMinute = m
	}
	if rec.IsActive != nil {
		rule.IsActive = *rec.IsActive
	}

	*r = rule
	return nil
}

// ParseClock -> "HH:mm" ke menit sejak tengah malam
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}
