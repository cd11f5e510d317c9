// Package money handles BRL amounts in integer centavos. Amounts are only
// ever formatted at the response boundary; nothing parses a formatted price
// back into a number.
package money

import (
	"strconv"
	"strings"
)

// ParseInput interprets free-text digit entry as centavos, reproducing the
// menu editor's price mask: every non-digit is stripped and the remaining
// digits are the amount in cents ("4500" → 4500 → "R$ 45,00"). Empty or
// unparseable input yields 0.
func ParseInput(raw string) int64 {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	cents, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return cents
}

// Format renders centavos as pt-BR currency: 4500 → "R$ 45,00",
// 124050 → "R$ 1.240,50".
func Format(cents int64) string {
	if cents < 0 {
		return "-" + Format(-cents)
	}
	reais := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	lead := len(reais) % 3
	if lead > 0 {
		grouped.WriteString(reais[:lead])
	}
	for i := lead; i < len(reais); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(reais[i : i+3])
	}

	rest := cents % 100
	return "R$ " + grouped.String() + "," + strconv.FormatInt(rest/10, 10) + strconv.FormatInt(rest%10, 10)
}

// FormatInput normalizes a raw price field into its display form. Zero and
// empty input render as the empty string so a cleared field stays cleared.
func FormatInput(raw string) string {
	cents := ParseInput(raw)
	if cents == 0 {
		return ""
	}
	return Format(cents)
}
