// Package builder offers literal-style construction of value trees.
//
// A Literal is anything that can become a JSON value: another value, unit,
// a bool, a number, a string, or an optional, list or map of literals.
// Object and Array assemble heterogeneous literals in one expression:
//
//	doc := builder.Object(
//		builder.F("name", builder.Str("Ada")),
//		builder.F("age", builder.Int(36)),
//		builder.F("langs", builder.List([]string{"go", "ml"}, builder.Str)),
//		builder.F("manager", builder.Option(managerName, builder.Str)),
//	)
package builder

import (
	"github.com/shopspring/decimal"

	"github.com/mcncl/jsontree/internal/value"
)

// LiteralKind tags the payload held by a Literal.
type LiteralKind int

const (
	ValueLiteral LiteralKind = iota
	UnitLiteral
	BoolLiteral
	NumberLiteral
	StringLiteral
	OptionLiteral
	ListLiteral
	MapLiteral
)

// Literal is a tagged value that knows how to become a value.Value.
type Literal struct {
	kind   LiteralKind
	json   value.Value
	b      bool
	n      decimal.Decimal
	s      string
	items  []Literal
	fields map[string]Literal
}

// Kind returns the literal tag.
func (l Literal) Kind() LiteralKind { return l.kind }

// ToJSON converts the literal into a value tree.
func (l Literal) ToJSON() value.Value {
	switch l.kind {
	case ValueLiteral:
		if l.json == nil {
			return value.Null()
		}
		return l.json
	case UnitLiteral:
		return value.Null()
	case BoolLiteral:
		return value.Bool(l.b)
	case NumberLiteral:
		return value.Number(l.n)
	case StringLiteral:
		return value.String(l.s)
	case OptionLiteral:
		if len(l.items) == 0 {
			return value.Null()
		}
		return l.items[0].ToJSON()
	case ListLiteral:
		out := make([]value.Value, len(l.items))
		for i, it := range l.items {
			out[i] = it.ToJSON()
		}
		return value.Array(out...)
	case MapLiteral:
		out := make(map[string]value.Value, len(l.fields))
		for k, it := range l.fields {
			out[k] = it.ToJSON()
		}
		return value.Assoc(out)
	}
	return value.Null()
}

// JSON wraps an existing value.
func JSON(v value.Value) Literal { return Literal{kind: ValueLiteral, json: v} }

// Unit is the literal for "no value"; it renders as null.
func Unit() Literal { return Literal{kind: UnitLiteral} }

// Bool wraps a boolean.
func Bool(b bool) Literal { return Literal{kind: BoolLiteral, b: b} }

// Decimal wraps an exact decimal.
func Decimal(d decimal.Decimal) Literal { return Literal{kind: NumberLiteral, n: d} }

// Int wraps an integer.
func Int(i int64) Literal { return Decimal(decimal.NewFromInt(i)) }

// Float wraps a float64 using its shortest decimal form. NaN and infinities
// have no JSON form and become Unit.
func Float(f float64) Literal {
	v, ok := value.Float(f)
	if !ok {
		return Unit()
	}
	return JSON(v)
}

// Str wraps a string.
func Str(s string) Literal { return Literal{kind: StringLiteral, s: s} }

// Option lifts an optional value. A nil pointer renders as null.
func Option[T any](p *T, lift func(T) Literal) Literal {
	if p == nil {
		return Literal{kind: OptionLiteral}
	}
	return Literal{kind: OptionLiteral, items: []Literal{lift(*p)}}
}

// List lifts every element of xs.
func List[T any](xs []T, lift func(T) Literal) Literal {
	items := make([]Literal, len(xs))
	for i, x := range xs {
		items[i] = lift(x)
	}
	return Literal{kind: ListLiteral, items: items}
}

// Map lifts every value of m, keeping keys.
func Map[T any](m map[string]T, lift func(T) Literal) Literal {
	fields := make(map[string]Literal, len(m))
	for k, x := range m {
		fields[k] = lift(x)
	}
	return Literal{kind: MapLiteral, fields: fields}
}

// Field is one key of an object literal.
type Field struct {
	Key   string
	Value Literal
}

// F pairs a key with a literal.
func F(key string, l Literal) Field { return Field{Key: key, Value: l} }

// Object builds an object from fields. A repeated key keeps its last value.
func Object(fields ...Field) value.Value {
	out := make(map[string]value.Value, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value.ToJSON()
	}
	return value.Assoc(out)
}

// Array builds an array from literals.
func Array(items ...Literal) value.Value {
	out := make([]value.Value, len(items))
	for i, it := range items {
		out[i] = it.ToJSON()
	}
	return value.Array(out...)
}
