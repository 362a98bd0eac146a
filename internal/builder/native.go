package builder

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/mcncl/jsontree/internal/value"
)

// FromNative converts plain Go data into a value tree. It accepts nil, bool,
// string, the built-in integer and float types, decimal.Decimal, value.Value,
// Literal, []any and map[string]any, recursively. Any other type, and any
// non-finite float, yields false.
func FromNative(x any) (value.Value, bool) {
	switch v := x.(type) {
	case nil:
		return value.Null(), true
	case value.Value:
		return v, true
	case Literal:
		return v.ToJSON(), true
	case bool:
		return value.Bool(v), true
	case string:
		return value.String(v), true
	case int:
		return value.Int(int64(v)), true
	case int8:
		return value.Int(int64(v)), true
	case int16:
		return value.Int(int64(v)), true
	case int32:
		return value.Int(int64(v)), true
	case int64:
		return value.Int(v), true
	case uint:
		return value.Number(fromUint64(uint64(v))), true
	case uint8:
		return value.Int(int64(v)), true
	case uint16:
		return value.Int(int64(v)), true
	case uint32:
		return value.Int(int64(v)), true
	case uint64:
		return value.Number(fromUint64(v)), true
	case float32:
		return value.Float(float64(v))
	case float64:
		return value.Float(v)
	case decimal.Decimal:
		return value.Number(v), true
	case []any:
		items := make([]value.Value, len(v))
		for i, it := range v {
			item, ok := FromNative(it)
			if !ok {
				return nil, false
			}
			items[i] = item
		}
		return value.Array(items...), true
	case map[string]any:
		fields := make(map[string]value.Value, len(v))
		for k, it := range v {
			field, ok := FromNative(it)
			if !ok {
				return nil, false
			}
			fields[k] = field
		}
		return value.Assoc(fields), true
	}
	return nil, false
}

// ToNative converts a value tree into plain Go data: nil, bool,
// decimal.Decimal, string, []any and map[string]any.
func ToNative(v value.Value) any {
	return value.Fold(v,
		func() any { return nil },
		func(b bool) any { return b },
		func(d decimal.Decimal) any { return d },
		func(s string) any { return s },
		func(items []any) any { return items },
		func(fields map[string]any) any { return fields },
	)
}

func fromUint64(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}
