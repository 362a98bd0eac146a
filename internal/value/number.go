package value

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// plainPadding is the most zeros FormatNumber pads with before switching to
// exponent notation.
const plainPadding = 64

// AsLong narrows the number to int64. 1e2 narrows to 100; 1.5 and anything
// beyond the int64 range do not narrow.
func (v numberValue) AsLong() (int64, bool) {
	if v.d.Sign() == 0 {
		return 0, true
	}
	if adjusted(v.d) > 18 || !IsIntegral(v.d) {
		return 0, false
	}
	bi := v.d.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	i := bi.Int64()
	if !decimal.NewFromInt(i).Equal(v.d) {
		return 0, false
	}
	return i, true
}

// AsDouble narrows the number to float64. The narrowing is accepted when the
// shortest decimal form of the float equals the stored decimal, so 3.25 and
// 0.1 narrow while a 30 digit mantissa does not.
func (v numberValue) AsDouble() (float64, bool) {
	if v.d.Sign() == 0 {
		return 0, true
	}
	// float64 spans roughly 4.9e-324 to 1.8e308
	if adj := adjusted(v.d); adj > 308 || adj < -330 {
		return 0, false
	}
	f, _ := v.d.Float64()
	if !finite(f) {
		return 0, false
	}
	if !decimal.NewFromFloat(f).Equal(v.d) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders d exactly as a JSON number literal. Plain notation is
// used unless it would take more than plainPadding zeros, in which case the
// coefficient and exponent are written as they are stored: 1e999999999 stays
// 1e999999999.
func FormatNumber(d decimal.Decimal) string {
	if d.Sign() == 0 {
		return "0"
	}
	exp := int(d.Exponent())
	pad := exp
	if exp < 0 {
		pad = -exp - digits(d)
	}
	if pad <= plainPadding {
		return d.String()
	}
	return d.Coefficient().String() + "e" + strconv.Itoa(exp)
}

// IsIntegral reports whether d has no fractional part. Unlike
// decimal.IsInteger it never scales by the exponent.
func IsIntegral(d decimal.Decimal) bool {
	if d.Sign() == 0 || d.Exponent() >= 0 {
		return true
	}
	if adjusted(d) < 0 {
		return false
	}
	return d.IsInteger()
}

// sameNumber is decimal equality that rejects differently sized numbers
// before Equal rescales one of them.
func sameNumber(a, b decimal.Decimal) bool {
	if a.Sign() != b.Sign() {
		return false
	}
	if a.Sign() == 0 {
		return true
	}
	if adjusted(a) != adjusted(b) {
		return false
	}
	return a.Equal(b)
}

// adjusted is the power of ten of the leading digit: 0 for 1.5, 2 for 120,
// -3 for 0.001.
func adjusted(d decimal.Decimal) int {
	return int(d.Exponent()) + digits(d) - 1
}

func digits(d decimal.Decimal) int {
	c := d.Coefficient()
	return len(c.Abs(c).String())
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
