package numeric

import (
	"math"
	"strconv"
)

// parseNumber parses text as a base-10 signed integer. A leading '+' or '-'
// is accepted; anything else, including surrounding spaces, fails.
func parseNumber(text string) (int64, bool) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatNumber renders the canonical form: no leading '+', no leading zeros.
func formatNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}

// sanitize keeps digits, a leading '-' when negatives are allowed, and a
// leading '+'. Only the first character may be a sign.
func sanitize(text string, allowNegative bool) string {
	out := make([]byte, 0, len(text))
	first := true
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, byte(r))
		case first && r == '-' && allowNegative:
			out = append(out, '-')
		case first && r == '+':
			out = append(out, '+')
		}
		first = false
	}
	return string(out)
}

func clamp(n, min, max int64) int64 {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// sign returns -1, 0 or 1. Zero maps to zero.
func sign(v int) int64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// subSaturating returns a-b, pinned to the int64 range instead of wrapping.
func subSaturating(a, b int64) int64 {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		if b > 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return d
}

