// Package analyzer walks a parsed document and reports what it contains:
// how many nodes of each kind, how deep it nests, how precisely its numbers
// can be narrowed and which strings look like identifiers or timestamps.
package analyzer

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/mcncl/jsontree/internal/value"
)

// Regex patterns for special types
var (
	uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// Time format patterns
	rfc3339Regex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)            // 2006-01-02T15:04:05Z
	iso8601Regex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?([+-]\d{2}:\d{2}|Z|[+-]\d{4})?$`) // ISO8601 variants
	dateOnlyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)                                                         // 2006-01-02
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(\.\d+)?$`)                               // 2006-01-02 15:04:05

	unixTimestampRegex = regexp.MustCompile(`^1[0-9]{9}$`)  // Unix timestamp (seconds since 1970)
	unixMilliRegex     = regexp.MustCompile(`^1[0-9]{12}$`) // Unix timestamp in milliseconds
)

// NumberClass is the narrowest Go type a number converts to without loss.
type NumberClass int

const (
	LongNumber NumberClass = iota
	DoubleNumber
	DecimalNumber
)

func (c NumberClass) String() string {
	switch c {
	case LongNumber:
		return "long"
	case DoubleNumber:
		return "double"
	default:
		return "decimal"
	}
}

// StringClass is the recognised shape of a string.
type StringClass int

const (
	PlainString StringClass = iota
	UUIDString
	TimeString
)

func (c StringClass) String() string {
	switch c {
	case UUIDString:
		return "uuid"
	case TimeString:
		return "time"
	default:
		return "plain"
	}
}

// Report describes a document.
type Report struct {
	Root  value.Kind
	Depth int
	Kinds map[value.Kind]int

	Numbers    map[NumberClass]int
	Timestamps int // integers that look like unix seconds or milliseconds
	Strings    map[StringClass]int

	// Keys counts distinct object keys across the whole document.
	Keys int
	// MixedArrays counts arrays whose non-null elements differ in kind.
	MixedArrays int
	MaxArrayLen int
}

// shape is what each folded node hands to its parent.
type shape struct {
	kind  value.Kind
	depth int
}

// Analyze reports on v. Every node is visited once; a nil v is reported as
// null.
func Analyze(v value.Value) Report {
	if v == nil {
		v = value.Null()
	}
	r := Report{
		Root:    v.Kind(),
		Kinds:   make(map[value.Kind]int),
		Numbers: make(map[NumberClass]int),
		Strings: make(map[StringClass]int),
	}
	keys := make(map[string]struct{})

	leaf := func(kind value.Kind) shape {
		r.Kinds[kind]++
		return shape{kind: kind}
	}
	nested := func(kind value.Kind, children []shape) shape {
		r.Kinds[kind]++
		s := shape{kind: kind, depth: 1}
		for _, child := range children {
			s.depth = max(s.depth, child.depth+1)
		}
		return s
	}

	root := value.Fold(v,
		func() shape { return leaf(value.NullKind) },
		func(bool) shape { return leaf(value.BoolKind) },
		func(d decimal.Decimal) shape {
			r.Numbers[classifyNumber(d)]++
			if isTimestamp(d) {
				r.Timestamps++
			}
			return leaf(value.NumberKind)
		},
		func(s string) shape {
			r.Strings[classifyString(s)]++
			return leaf(value.StringKind)
		},
		func(items []shape) shape {
			r.MaxArrayLen = max(r.MaxArrayLen, len(items))
			if isMixed(items) {
				r.MixedArrays++
			}
			return nested(value.ArrayKind, items)
		},
		func(fields map[string]shape) shape {
			children := make([]shape, 0, len(fields))
			for k, child := range fields {
				keys[k] = struct{}{}
				children = append(children, child)
			}
			return nested(value.AssocKind, children)
		},
	)

	r.Depth = root.depth
	r.Keys = len(keys)
	return r
}

func classifyNumber(d decimal.Decimal) NumberClass {
	n := value.Number(d)
	if _, ok := n.AsLong(); ok {
		return LongNumber
	}
	if _, ok := n.AsDouble(); ok {
		return DoubleNumber
	}
	return DecimalNumber
}

func isTimestamp(d decimal.Decimal) bool {
	if !value.IsIntegral(d) {
		return false
	}
	s := value.FormatNumber(d)
	return unixTimestampRegex.MatchString(s) || unixMilliRegex.MatchString(s)
}

func classifyString(s string) StringClass {
	if uuidRegex.MatchString(s) {
		return UUIDString
	}
	for _, re := range []*regexp.Regexp{rfc3339Regex, iso8601Regex, dateOnlyRegex, dateTimeRegex} {
		if re.MatchString(s) {
			return TimeString
		}
	}
	return PlainString
}

// isMixed treats null elements as optional values rather than another kind.
func isMixed(items []shape) bool {
	seen := -1
	for _, it := range items {
		if it.kind == value.NullKind {
			continue
		}
		if seen >= 0 && value.Kind(seen) != it.kind {
			return true
		}
		seen = int(it.kind)
	}
	return false
}
