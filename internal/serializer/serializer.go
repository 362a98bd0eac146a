// Package serializer converts domain types to and from value trees, text and
// bytes.
//
// A Serializer only supplies ToJSON and FromJSON. The string and byte forms
// are derived from those two through the formatter, the parser and a
// TextCodec, so every implementation gets them with the same behaviour.
// Every decoding function reports failure as (zero, false); malformed text,
// a mismatched shape, lossy numbers and rejected bytes all look the same to
// the caller.
//
// Implementations must satisfy, for every value t they can produce:
//
//	FromJSON(ToJSON(t))                     == t
//	FromJSONString(ToJSONString(t))         == t
//	FromJSONString(ToPrettyJSONString(t))   == t
//	Deserialize(Serialize(t))               == t
//
// and, for any tree j they accept with FromJSON(j) == t, re-encoding t and
// decoding it again must give t back. Check verifies these for a sample.
package serializer

import (
	"unicode/utf8"

	"github.com/mcncl/jsontree/internal/formatter"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/value"
)

// Serializer pairs a domain type with its JSON form. Implementations must be
// stateless and safe for concurrent use.
type Serializer[T any] interface {
	ToJSON(t T) value.Value
	FromJSON(v value.Value) (T, bool)
}

// TextCodec turns text into bytes and back. Decode reports false for bytes
// that are not valid in the encoding.
type TextCodec interface {
	Encode(text string) []byte
	Decode(data []byte) (string, bool)
}

type utf8Codec struct{}

func (utf8Codec) Encode(text string) []byte { return []byte(text) }

func (utf8Codec) Decode(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// UTF8 is the default byte codec.
var UTF8 TextCodec = utf8Codec{}

// ToJSONString renders t as compact JSON.
func ToJSONString[T any](s Serializer[T], t T) string {
	return formatter.Print(s.ToJSON(t))
}

// ToPrettyJSONString renders t as indented JSON.
func ToPrettyJSONString[T any](s Serializer[T], t T) string {
	return formatter.Pretty(s.ToJSON(t))
}

// FromJSONString parses text and decodes it.
func FromJSONString[T any](s Serializer[T], text string) (T, bool) {
	v, err := parser.ParseString(text)
	if err != nil {
		var zero T
		return zero, false
	}
	return s.FromJSON(v)
}

// Serialize encodes t as UTF-8 JSON bytes.
func Serialize[T any](s Serializer[T], t T) []byte {
	return SerializeWith(s, UTF8, t)
}

// Deserialize decodes UTF-8 JSON bytes.
func Deserialize[T any](s Serializer[T], data []byte) (T, bool) {
	return DeserializeWith(s, UTF8, data)
}

// SerializeWith encodes t as JSON text and then as bytes using codec.
func SerializeWith[T any](s Serializer[T], codec TextCodec, t T) []byte {
	return codec.Encode(ToJSONString(s, t))
}

// DeserializeWith decodes bytes with codec and then parses the JSON text.
func DeserializeWith[T any](s Serializer[T], codec TextCodec, data []byte) (T, bool) {
	text, ok := codec.Decode(data)
	if !ok {
		var zero T
		return zero, false
	}
	return FromJSONString(s, text)
}
