package formatter

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsontree/internal/value"
)

// Supported key case rewrites.
const (
	KeyCaseNone           = ""
	KeyCaseSnake          = "snake"
	KeyCaseCamel          = "camel"
	KeyCaseLowerCamel     = "lower_camel"
	KeyCaseKebab          = "kebab"
	KeyCaseScreamingSnake = "screaming_snake"
)

var keyCases = map[string]func(string) string{
	KeyCaseNone:           nil,
	KeyCaseSnake:          strcase.ToSnake,
	KeyCaseCamel:          strcase.ToCamel,
	KeyCaseLowerCamel:     strcase.ToLowerCamel,
	KeyCaseKebab:          strcase.ToKebab,
	KeyCaseScreamingSnake: strcase.ToScreamingSnake,
}

// Options controls how a Formatter renders values.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero renders
	// compact output on a single line.
	Indent int
	// KeyCase rewrites object keys before printing. Keys that collide after
	// rewriting keep the value of the last original key in sorted order.
	KeyCase string
}

// Formatter renders value trees as JSON or YAML text. Object keys are always
// written in sorted order so output is deterministic.
type Formatter struct {
	opts   Options
	api    jsoniter.API
	rename func(string) string
}

var (
	compact = mustFormatter(Options{})
	pretty  = mustFormatter(Options{Indent: 2})
)

// NewFormatter creates a new Formatter instance
func NewFormatter(opts Options) (*Formatter, error) {
	if opts.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", opts.Indent)
	}
	rename, ok := keyCases[opts.KeyCase]
	if !ok {
		return nil, fmt.Errorf("unknown key case %q", opts.KeyCase)
	}
	return &Formatter{
		opts:   opts,
		api:    jsoniter.Config{IndentionStep: opts.Indent}.Froze(),
		rename: rename,
	}, nil
}

func mustFormatter(opts Options) *Formatter {
	f, err := NewFormatter(opts)
	if err != nil {
		panic(err)
	}
	return f
}

// Print renders v as compact JSON.
func Print(v value.Value) string {
	return compact.Format(v)
}

// Pretty renders v as JSON indented by two spaces.
func Pretty(v value.Value) string {
	return pretty.Format(v)
}

// Format renders v as JSON according to the formatter options.
func (f *Formatter) Format(v value.Value) string {
	stream := f.api.BorrowStream(nil)
	defer f.api.ReturnStream(stream)

	f.emitter(v)(stream)
	return string(stream.Buffer())
}

type emitFunc func(s *jsoniter.Stream)

// emitter folds v into a writer. Children are folded first, so the closure
// for a container only has to frame what its children already emit.
func (f *Formatter) emitter(v value.Value) emitFunc {
	return value.Fold(v,
		func() emitFunc {
			return func(s *jsoniter.Stream) { s.WriteNil() }
		},
		func(b bool) emitFunc {
			return func(s *jsoniter.Stream) { s.WriteBool(b) }
		},
		func(d decimal.Decimal) emitFunc {
			return func(s *jsoniter.Stream) { s.WriteRaw(value.FormatNumber(d)) }
		},
		func(str string) emitFunc {
			return func(s *jsoniter.Stream) { s.WriteString(str) }
		},
		func(items []emitFunc) emitFunc {
			return func(s *jsoniter.Stream) {
				if len(items) == 0 {
					s.WriteEmptyArray()
					return
				}
				s.WriteArrayStart()
				for i, item := range items {
					if i > 0 {
						s.WriteMore()
					}
					item(s)
				}
				s.WriteArrayEnd()
			}
		},
		func(fields map[string]emitFunc) emitFunc {
			fields = f.renameKeys(fields)
			return func(s *jsoniter.Stream) {
				if len(fields) == 0 {
					s.WriteEmptyObject()
					return
				}
				s.WriteObjectStart()
				for i, key := range slices.Sorted(maps.Keys(fields)) {
					if i > 0 {
						s.WriteMore()
					}
					s.WriteObjectField(key)
					fields[key](s)
				}
				s.WriteObjectEnd()
			}
		},
	)
}

func renameKeys[T any](rename func(string) string, fields map[string]T) map[string]T {
	if rename == nil {
		return fields
	}
	out := make(map[string]T, len(fields))
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		out[rename(key)] = fields[key]
	}
	return out
}

func (f *Formatter) renameKeys(fields map[string]emitFunc) map[string]emitFunc {
	return renameKeys(f.rename, fields)
}

// YAML renders v as a YAML document. Strings that would read back as another
// type are quoted.
func (f *Formatter) YAML(v value.Value) (string, error) {
	node := value.Fold(v,
		func() *yaml.Node {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		},
		func(b bool) *yaml.Node {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(b)}
		},
		func(d decimal.Decimal) *yaml.Node {
			text := value.FormatNumber(d)
			tag := "!!float"
			if value.IsIntegral(d) && !strings.Contains(text, "e") {
				tag = "!!int"
			}
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
		},
		func(s string) *yaml.Node {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
		},
		func(items []*yaml.Node) *yaml.Node {
			return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
		},
		func(fields map[string]*yaml.Node) *yaml.Node {
			fields = renameKeys(f.rename, fields)
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for _, key := range slices.Sorted(maps.Keys(fields)) {
				node.Content = append(node.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
					fields[key],
				)
			}
			return node
		},
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	indent := f.opts.Indent
	if indent < 2 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.String(), nil
}
