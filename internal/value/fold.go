package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fold reduces v bottom-up. Every node is visited exactly once; the array and
// assoc handlers receive the already folded children.
//
// All six handlers are required, so adding a variant breaks every caller at
// compile time instead of silently falling through.
func Fold[R any](
	v Value,
	onNull func() R,
	onBool func(bool) R,
	onNumber func(decimal.Decimal) R,
	onString func(string) R,
	onArray func([]R) R,
	onAssoc func(map[string]R) R,
) R {
	var rec func(Value) R
	rec = func(v Value) R {
		switch n := v.(type) {
		case nullValue:
			return onNull()
		case boolValue:
			return onBool(n.b)
		case numberValue:
			return onNumber(n.d)
		case stringValue:
			return onString(n.s)
		case arrayValue:
			out := make([]R, len(n.items))
			for i, it := range n.items {
				out[i] = rec(it)
			}
			return onArray(out)
		case assocValue:
			out := make(map[string]R, len(n.fields))
			for k, it := range n.fields {
				out[k] = rec(it)
			}
			return onAssoc(out)
		}
		// Only reachable with a nil Value; the variant set is sealed.
		panic(fmt.Sprintf("value: fold over unsupported value %T", v))
	}
	return rec(v)
}

// Equal reports whether a and b are the same JSON value. Numbers compare by
// decimal value, so 1e2 equals 100. Object field order never matters.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case nullValue:
		return true
	case boolValue:
		return x.b == b.(boolValue).b
	case numberValue:
		return sameNumber(x.d, b.(numberValue).d)
	case stringValue:
		return x.s == b.(stringValue).s
	case arrayValue:
		y := b.(arrayValue)
		if len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case assocValue:
		y := b.(assocValue)
		if len(x.fields) != len(y.fields) {
			return false
		}
		for k, xv := range x.fields {
			yv, ok := y.fields[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}
