package numeric

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute difference under which two floats are equal.
const Tolerance = 1e-6

// Round rounds x half-up to the nearest integer. Values beyond the int
// range saturate at math.MaxInt or math.MinInt; NaN rounds to 0.
func Round(x float64) int {
	r := math.Floor(x + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	}
	return int(r)
}

// Clamp saturates v into the closed range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// NearlyEqual reports whether |a-b| < Tolerance.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// ExtractFloats splits s on commas and parses every token as a float64.
//
// Surrounding whitespace of a token is ignored. An empty input, or any token
// that does not parse, yields an empty (nil) slice.
func ExtractFloats(s string) []float64 {
	if s == "" {
		return nil
	}
	tokens := strings.Split(s, ",")
	parsed := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		parsed[i] = v
	}
	return parsed
}

// ExtractInts is ExtractFloats followed by Round on every token, so
// fractional tokens such as "127.5" are accepted and rounded half-up.
func ExtractInts(s string) []int {
	floats := ExtractFloats(s)
	if len(floats) == 0 {
		return nil
	}
	parsed := make([]int, len(floats))
	for i, v := range floats {
		parsed[i] = Round(v)
	}
	return parsed
}

// FormatFloat renders v rounded half-up to at most digits decimal places,
// dropping trailing zeros and the decimal point when nothing follows it.
//
//	FormatFloat(12.5, 2)     // "12.5"
//	FormatFloat(100, 2)      // "100"
//	FormatFloat(0.125, 2)    // "0.13"
//	FormatFloat(0.950456, 5) // "0.95046"
func FormatFloat(v float64, digits int) string {
	s := strconv.FormatFloat(RoundTo(v, digits), 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// RoundTo rounds v half-up to digits decimal places. Negative zero becomes
// zero, and values too large to carry a fractional part come back as is.
func RoundTo(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	scaled := v * scale
	if math.IsNaN(scaled) || math.Abs(scaled) >= 1<<52 {
		return v
	}
	r := math.Floor(scaled+0.5) / scale
	if r == 0 {
		return 0
	}
	return r
}
