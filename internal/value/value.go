// Package value models JSON documents as an immutable tree of six variants:
// null, bool, number, string, array and assoc (object).
//
// The variant set is closed. Concrete types are unexported and every Value is
// built through the constructors in this package. Code that needs to handle
// all variants goes through Fold, which takes one handler per variant.
package value

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	AssocKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case AssocKind:
		return "assoc"
	}
	return "unknown"
}

// Value is a JSON value. Values are immutable and safe to share between
// goroutines.
type Value interface {
	Kind() Kind

	AsNull() bool
	AsBool() (bool, bool)
	AsNumber() (decimal.Decimal, bool)
	AsString() (string, bool)
	AsArray() ([]Value, bool)
	AsAssoc() (map[string]Value, bool)

	// AsLong and AsDouble narrow a number to a fixed width type. They only
	// succeed when widening the result back gives the same decimal.
	AsLong() (int64, bool)
	AsDouble() (float64, bool)

	Nav(key string) (Value, bool)
	NavIndex(i int) (Value, bool)

	sealed()
}

// mismatch answers "absent" to every accessor; variants embed it and
// override their own accessor.
type mismatch struct{}

func (mismatch) AsNull() bool                      { return false }
func (mismatch) AsBool() (bool, bool)              { return false, false }
func (mismatch) AsNumber() (decimal.Decimal, bool) { return decimal.Decimal{}, false }
func (mismatch) AsString() (string, bool)          { return "", false }
func (mismatch) AsArray() ([]Value, bool)          { return nil, false }
func (mismatch) AsAssoc() (map[string]Value, bool) { return nil, false }
func (mismatch) AsLong() (int64, bool)             { return 0, false }
func (mismatch) AsDouble() (float64, bool)         { return 0, false }
func (mismatch) Nav(string) (Value, bool)          { return nil, false }
func (mismatch) NavIndex(int) (Value, bool)        { return nil, false }
func (mismatch) sealed()                           {}

type nullValue struct{ mismatch }

type boolValue struct {
	mismatch
	b bool
}

type numberValue struct {
	mismatch
	d decimal.Decimal
}

type stringValue struct {
	mismatch
	s string
}

type arrayValue struct {
	mismatch
	items []Value
}

type assocValue struct {
	mismatch
	fields map[string]Value
}

var (
	theNull  Value = nullValue{}
	theTrue  Value = boolValue{b: true}
	theFalse Value = boolValue{b: false}
)

// Null returns the null value.
func Null() Value { return theNull }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return theTrue
	}
	return theFalse
}

// Number returns a number holding d exactly.
func Number(d decimal.Decimal) Value { return numberValue{d: d} }

// Int returns a number holding i.
func Int(i int64) Value { return numberValue{d: decimal.NewFromInt(i)} }

// Float returns a number holding the shortest decimal that round trips to f.
// NaN and infinities have no JSON form and yield false.
func Float(f float64) (Value, bool) {
	if !finite(f) {
		return nil, false
	}
	return numberValue{d: decimal.NewFromFloat(f)}, true
}

// NumberFromString parses a decimal literal such as "12", "-0.5" or "1e2".
func NumberFromString(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return numberValue{d: d}, nil
}

// String returns a string value.
func String(s string) Value { return stringValue{s: s} }

// Array returns an array holding a copy of items. Nil items become null.
func Array(items ...Value) Value {
	cp := make([]Value, len(items))
	for i, it := range items {
		cp[i] = orNull(it)
	}
	return arrayValue{items: cp}
}

// Assoc returns an object holding a copy of fields. Nil values become null.
func Assoc(fields map[string]Value) Value {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = orNull(v)
	}
	return assocValue{fields: cp}
}

// EmptyArray returns an array without elements.
func EmptyArray() Value { return arrayValue{items: []Value{}} }

// EmptyObject returns an object without fields.
func EmptyObject() Value { return assocValue{fields: map[string]Value{}} }

func orNull(v Value) Value {
	if v == nil {
		return theNull
	}
	return v
}

func (nullValue) Kind() Kind   { return NullKind }
func (boolValue) Kind() Kind   { return BoolKind }
func (numberValue) Kind() Kind { return NumberKind }
func (stringValue) Kind() Kind { return StringKind }
func (arrayValue) Kind() Kind  { return ArrayKind }
func (assocValue) Kind() Kind  { return AssocKind }

func (nullValue) AsNull() bool                          { return true }
func (v boolValue) AsBool() (bool, bool)                { return v.b, true }
func (v numberValue) AsNumber() (decimal.Decimal, bool) { return v.d, true }
func (v stringValue) AsString() (string, bool)          { return v.s, true }

// AsArray returns a copy of the elements; the array itself cannot be changed
// through it.
func (v arrayValue) AsArray() ([]Value, bool) { return slices.Clone(v.items), true }

// AsAssoc returns a copy of the fields.
func (v assocValue) AsAssoc() (map[string]Value, bool) { return maps.Clone(v.fields), true }
