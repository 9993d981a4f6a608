package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record legacy berupa angka persen polos -> aktif setiap hari sepanjang hari
func TestDiscountRuleUnmarshalLegacyNumber(t *testing.T) {
	var rule DiscountRule
	require.NoError(t, json.Unmarshal([]byte(`25`), &rule))

	assert.Equal(t, 25.0, rule.DiscountPercent)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, rule.Days)
	assert.Equal(t, 0, rule.StartMinute)
	assert.Equal(t, 23*60+59, rule.EndMinute)
	assert.True(t, rule.IsActive)
}

func TestDiscountRuleUnmarshalStructured(t *testing.T) {
	raw := `{"itemId":"1","discountPercent":10,"days":[1,2],"startMinute":540,"endMinute":1320,"isActive":false}`

	var rule DiscountRule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))

	assert.Equal(t, "1", rule.ItemID)
	assert.Equal(t, 540, rule.StartMinute)
	assert.Equal(t, 1320, rule.EndMinute)
	assert.False(t, rule.IsActive)
}

// bentuk lama dengan jam "HH:mm" dinormalisasi ke menit
func TestDiscountRuleUnmarshalClockStrings(t *testing.T) {
	raw := `{"itemId":"1","discountPercent":10,"days":[1],"startTime":"09:00","endTime":"22:00"}`

	var rule DiscountRule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))

	assert.Equal(t, 9*60, rule.StartMinute)
	assert.Equal(t, 22*60, rule.EndMinute)
	assert.True(t, rule.IsActive) // isActive absen -> default true
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("garbage")
	assert.Error(t, err)
}

func TestAppliesOnDay(t *testing.T) {
	rule := DiscountRule{Days: []int{0, 6}}
	assert.True(t, rule.AppliesOnDay(0))
	assert.True(t, rule.AppliesOnDay(6))
	assert.False(t, rule.AppliesOnDay(3))
}

func TestCartItemLineTotal(t *testing.T) {
	line := CartItem{MenuItem: MenuItem{ID: "1", Price: 320}, Quantity: 2}
	assert.Equal(t, 640.0, line.LineTotal())
}
