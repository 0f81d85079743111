package normalize

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotFinite is returned for NaN and infinite prices and revenues.
	ErrNotFinite = errors.New("value is not a finite number")
	// ErrHexFloat is returned for hexadecimal float literals such as 0x1p-2.
	ErrHexFloat = errors.New("hexadecimal numbers are not accepted")
)

// ParseQuantity parses a whole-unit quantity. Surrounding whitespace is ignored.
func ParseQuantity(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParsePrice parses a decimal unit price. Surrounding whitespace is ignored;
// hex literals, NaN and ±Inf are rejected.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, ErrHexFloat
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Revenue returns qty × price, or ErrNotFinite when the product overflows.
func Revenue(qty int, price float64) (float64, error) {
	r := float64(qty) * price
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrNotFinite
	}
	return r, nil
}
