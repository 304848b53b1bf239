package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	Crore = 1e7
	Lakh  = 1e5
)

var (
	crorePattern  = regexp.MustCompile(`(?i)([\d.]+)\s*cr`)
	lakhPattern   = regexp.MustCompile(`(?i)([\d.]+)\s*l`)
	numberPattern = regexp.MustCompile(`[\d.]+`)

	priceNoise = strings.NewReplacer(",", "", "₹", "", "Rs", "")
)

// ParsePrice normalizes a price-like string to rupees.
// Supports formats like "1.2 Cr", "85 L", "12000000", "₹1,20,00,000".
// The second return value is false when no numeric value could be read.
func ParsePrice(s string) (float64, bool) {
	st := strings.TrimSpace(priceNoise.Replace(s))
	if st == "" {
		return 0, false
	}

	if m := crorePattern.FindStringSubmatch(st); m != nil {
		return scaledNumber(m[1], Crore)
	}
	if m := lakhPattern.FindStringSubmatch(st); m != nil {
		return scaledNumber(m[1], Lakh)
	}
	if num := numberPattern.FindString(st); num != "" {
		return scaledNumber(num, 1)
	}
	return 0, false
}

func scaledNumber(num string, unit float64) (float64, bool) {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v * unit, true
}

// FormatPrice renders an amount as "₹1.2 Cr", "₹85.0 L" or "₹45000".
// NaN and infinite amounts render as an empty string.
func FormatPrice(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	switch {
	case amount >= Crore:
		return "₹" + roundedDecimal(amount/Crore) + " Cr"
	case amount >= Lakh:
		return "₹" + roundedDecimal(amount/Lakh) + " L"
	default:
		return "₹" + strconv.FormatInt(int64(amount), 10)
	}
}

// FormatPricePtr is FormatPrice for nullable amounts
func FormatPricePtr(amount *float64) string {
	if amount == nil {
		return ""
	}
	return FormatPrice(*amount)
}

// roundedDecimal rounds to two places and prints the shortest form that
// keeps at least one fractional digit ("1.2", "85.0", "1.25").
func roundedDecimal(v float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		rounded = v
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
