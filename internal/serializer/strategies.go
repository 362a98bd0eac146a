package serializer

import (
	"bytes"

	gojson "github.com/goccy/go-json"

	"github.com/mcncl/jsontree/internal/formatter"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/value"
)

type identity struct{}

// Identity returns the serializer for values that already are JSON.
func Identity() Serializer[value.Value] {
	return identity{}
}

func (identity) ToJSON(v value.Value) value.Value {
	if v == nil {
		return value.Null()
	}
	return v
}

func (identity) FromJSON(v value.Value) (value.Value, bool) {
	return v, v != nil
}

type funcs[T any] struct {
	to   func(T) value.Value
	from func(value.Value) (T, bool)
}

// Func builds a serializer from a converter pair. The pair itself must obey
// the round-trip contract; Check helps verify it.
func Func[T any](to func(T) value.Value, from func(value.Value) (T, bool)) Serializer[T] {
	return funcs[T]{to: to, from: from}
}

func (f funcs[T]) ToJSON(t T) value.Value {
	return f.to(t)
}

func (f funcs[T]) FromJSON(v value.Value) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return f.from(v)
}

// CodecOption configures a Codec serializer.
type CodecOption func(*codecOptions)

type codecOptions struct {
	allowUnknownFields bool
}

// AllowUnknownFields makes FromJSON ignore object keys that match no struct
// field. By default they are rejected.
func AllowUnknownFields() CodecOption {
	return func(o *codecOptions) { o.allowUnknownFields = true }
}

type codec[T any] struct {
	opts codecOptions
}

// Codec builds a serializer that maps T by field name using go-json struct
// tags (`json:"name,omitempty"`). T is typically a struct.
func Codec[T any](opts ...CodecOption) Serializer[T] {
	var o codecOptions
	for _, opt := range opts {
		opt(&o)
	}
	return codec[T]{opts: o}
}

// ToJSON encodes t through go-json. Values go-json cannot encode, such as
// channels or NaN floats, are outside the codec's domain and become null.
func (c codec[T]) ToJSON(t T) value.Value {
	data, err := gojson.Marshal(t)
	if err != nil {
		return value.Null()
	}
	v, err := parser.ParseBytes(data)
	if err != nil {
		return value.Null()
	}
	return v
}

func (c codec[T]) FromJSON(v value.Value) (T, bool) {
	var out T
	if v == nil {
		return out, false
	}
	dec := gojson.NewDecoder(bytes.NewReader([]byte(formatter.Print(v))))
	if !c.opts.allowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
