package util

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrency renders an amount per the display contract: "$ " followed
// by the integer part with "." as thousands separator and no decimals.
// Total function: non-finite input renders as "$ 0"; negative amounts keep
// their sign.
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "$ 0"
	}

	n := int64(value)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	return "$ " + sign + string(grouped)
}

// FormatHours renders an hour total for summary cards.
func FormatHours(value float64) string {
	return fmt.Sprintf("%.2f hrs", value)
}
