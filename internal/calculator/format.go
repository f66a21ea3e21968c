package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Plain notation is used for magnitudes in [plainMin, plainMax); anything else is
// rendered in scientific notation.
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// FormatNumber renders v the way the display prints numbers: the shortest digits that
// round-trip, always with a fractional part ("5.0", "0.001"), switching to scientific
// notation outside [1e-3, 1e7) ("1.0E10", "1.0E-4").
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// "d.ddde±XX" with the shortest round-trip mantissa
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	exp, _ := strconv.Atoi(exponent)
	digits := strings.Replace(mantissa, ".", "", 1)

	if v >= plainMin && v < plainMax {
		return sign + plainNotation(digits, exp)
	}

	fraction := digits[1:]
	if fraction == "" {
		fraction = "0"
	}
	return sign + digits[:1] + "." + fraction + "E" + strconv.Itoa(exp)
}

// plainNotation places the decimal point in digits for a value of d.ddd × 10^exp
func plainNotation(digits string, exp int) string {
	if exp < 0 {
		return "0." + strings.Repeat("0", -exp-1) + digits
	}
	intLen := exp + 1
	if len(digits) <= intLen {
		return digits + strings.Repeat("0", intLen-len(digits)) + ".0"
	}
	return digits[:intLen] + "." + digits[intLen:]
}

// parseDisplay reads the display back as a number. Overflowing input saturates to an
// infinity rather than failing.
func parseDisplay(display string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(display), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: display %q is not a number", ErrInvalidArgument, display)
	}
	return v, nil
}
