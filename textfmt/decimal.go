package textfmt

import (
	"strconv"
	"strings"
)

// Decimal cuts the decimal number s to digits fractional digits without
// rounding.  digits <= 0 drops the fraction.  With fill, the fraction is
// padded with zeros to exactly digits.
//
//	Decimal("3.14159", 2, false)  // "3.14"
//	Decimal("3.1", 3, true)       // "3.100"
func Decimal(s string, digits int, fill bool) string {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if digits <= 0 {
		return whole
	}
	if len(frac) > digits {
		frac = frac[:digits]
	}
	if fill && len(frac) < digits {
		frac += strings.Repeat("0", digits-len(frac))
	}
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// DecimalFloat is Decimal on the shortest plain decimal form of f.
func DecimalFloat(f float64, digits int, fill bool) string {
	return Decimal(strconv.FormatFloat(f, 'f', -1, 64), digits, fill)
}
