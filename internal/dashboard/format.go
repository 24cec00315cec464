package dashboard

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

var (
	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
)

// FormatINR renders n rounded to whole rupees with Indian digit grouping,
// e.g. ₹12,34,567.
func FormatINR(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "—"
	}
	rounded := decimal.NewFromFloat(n).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + rupee + groupIndian(rounded.String())
}

// ShortINR abbreviates large amounts to crores (Cr) or lakhs (L) with one decimal
func ShortINR(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "—"
	}
	d := decimal.NewFromFloat(n)
	switch {
	case d.GreaterThanOrEqual(crore):
		return rupee + d.Div(crore).StringFixed(1) + "Cr"
	case d.GreaterThanOrEqual(lakh):
		return rupee + d.Div(lakh).StringFixed(1) + "L"
	}
	return FormatINR(n)
}

// groupIndian inserts separators after the last three digits and then every two
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// Capitalize upper-cases the first letter of s
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
