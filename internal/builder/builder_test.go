package builder

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/value"
)

func TestObject_HeterogeneousLiterals(t *testing.T) {
	manager := "Grace"
	var missing *string

	doc := Object(
		F("name", Str("Ada")),
		F("age", Int(36)),
		F("ratio", Float(0.25)),
		F("active", Bool(true)),
		F("nothing", Unit()),
		F("langs", List([]string{"go", "ml"}, Str)),
		F("scores", Map(map[string]int64{"a": 1}, Int)),
		F("manager", Option(&manager, Str)),
		F("deputy", Option(missing, Str)),
		F("raw", JSON(value.Array(value.Null()))),
	)

	expected := value.Assoc(map[string]value.Value{
		"name":    value.String("Ada"),
		"age":     value.Int(36),
		"ratio":   value.Number(decimal.RequireFromString("0.25")),
		"active":  value.Bool(true),
		"nothing": value.Null(),
		"langs":   value.Array(value.String("go"), value.String("ml")),
		"scores":  value.Assoc(map[string]value.Value{"a": value.Int(1)}),
		"manager": value.String("Grace"),
		"deputy":  value.Null(),
		"raw":     value.Array(value.Null()),
	})
	assert.True(t, value.Equal(expected, doc))
}

func TestObject_LastKeyWins(t *testing.T) {
	doc := Object(F("k", Int(1)), F("k", Int(2)))
	got, ok := doc.Nav("k")
	require.True(t, ok)
	assert.True(t, value.Equal(value.Int(2), got))
}

func TestArray(t *testing.T) {
	doc := Array(Int(1), Str("x"), List([]bool{true}, Bool), Decimal(decimal.RequireFromString("1.10")))
	expected := value.Array(
		value.Int(1),
		value.String("x"),
		value.Array(value.Bool(true)),
		value.Number(decimal.RequireFromString("1.1")),
	)
	assert.True(t, value.Equal(expected, doc))

	assert.True(t, value.Equal(value.EmptyArray(), Array()))
	assert.True(t, value.Equal(value.EmptyObject(), Object()))
}

func TestLiteral_Kinds(t *testing.T) {
	assert.Equal(t, StringLiteral, Str("s").Kind())
	assert.Equal(t, NumberLiteral, Int(1).Kind())
	assert.Equal(t, OptionLiteral, Option[int](nil, intLit).Kind())
	assert.Equal(t, ValueLiteral, JSON(nil).Kind())
	assert.True(t, JSON(nil).ToJSON().AsNull())
	assert.Equal(t, UnitLiteral, Float(math.Inf(1)).Kind())
}

// intLit lifts an int for generic helpers.
func intLit(i int) Literal { return Int(int64(i)) }

func TestNestedGenericLifts(t *testing.T) {
	matrix := [][]int{{1, 2}, {3}}
	doc := List(matrix, func(row []int) Literal { return List(row, intLit) }).ToJSON()

	expected := value.Array(
		value.Array(value.Int(1), value.Int(2)),
		value.Array(value.Int(3)),
	)
	assert.True(t, value.Equal(expected, doc))
}

func TestFromNative(t *testing.T) {
	got, ok := FromNative(map[string]any{
		"s":   "text",
		"i":   42,
		"u":   uint64(math.MaxUint64),
		"f":   1.5,
		"b":   false,
		"n":   nil,
		"arr": []any{int8(1), float32(0.5), Str("lit")},
		"val": value.Bool(true),
	})
	require.True(t, ok)

	expected := value.Assoc(map[string]value.Value{
		"s":   value.String("text"),
		"i":   value.Int(42),
		"u":   value.Number(decimal.RequireFromString("18446744073709551615")),
		"f":   value.Number(decimal.RequireFromString("1.5")),
		"b":   value.Bool(false),
		"n":   value.Null(),
		"arr": value.Array(value.Int(1), value.Number(decimal.RequireFromString("0.5")), value.String("lit")),
		"val": value.Bool(true),
	})
	assert.True(t, value.Equal(expected, got))

	_, ok = FromNative(struct{}{})
	assert.False(t, ok)
	_, ok = FromNative([]any{1, math.NaN()})
	assert.False(t, ok)
}

func TestToNative(t *testing.T) {
	doc := Object(
		F("a", List([]string{"x"}, Str)),
		F("b", Int(7)),
		F("c", Unit()),
	)

	native, ok := ToNative(doc).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"x"}, native["a"])
	assert.Nil(t, native["c"])
	d, ok := native["b"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(7)))

	back, ok := FromNative(native)
	require.True(t, ok)
	assert.True(t, value.Equal(doc, back))
}
