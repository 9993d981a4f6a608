package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrencyTRY memformat harga lira utuh dengan pemisah ribuan
// gaya Turki. Contoh: 15250 -> "15.250₺"
func FormatCurrencyTRY(amount float64) string {
	whole := int64(math.Round(amount))

	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".") + "₺"
}
