package value

import (
	"strconv"
	"strings"
)

// Nav returns the field named key.
func (v assocValue) Nav(key string) (Value, bool) {
	child, ok := v.fields[key]
	return child, ok
}

// NavIndex on an object looks the index up as a field name, so {"0": x}
// answers NavIndex(0). Existing documents keyed by position rely on this.
func (v assocValue) NavIndex(i int) (Value, bool) {
	return v.Nav(strconv.Itoa(i))
}

// NavIndex returns the element at position i.
func (v arrayValue) NavIndex(i int) (Value, bool) {
	if i < 0 || i >= len(v.items) {
		return nil, false
	}
	return v.items[i], true
}

// Step is one hop of a navigation path: either a field name or an index.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a step selecting an object field.
func Key(k string) Step { return Step{key: k} }

// Index returns a step selecting an array element (or a numeric object key).
func Index(i int) Step { return Step{index: i, isIndex: true} }

func (s Step) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

func (s Step) apply(v Value) (Value, bool) {
	if s.isIndex {
		return v.NavIndex(s.index)
	}
	return v.Nav(s.key)
}

// Navigate follows steps from v and stops at the first one that does not
// resolve. With no steps it returns v itself. A nil v resolves nothing.
func Navigate(v Value, steps ...Step) (Value, bool) {
	if v == nil {
		return nil, false
	}
	cur := v
	for _, s := range steps {
		next, ok := s.apply(cur)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ParsePath splits a dotted path such as "users.0.name" into steps. Segments
// made only of digits become Index steps; everything else is a Key. An empty
// path selects the root.
func ParsePath(path string) []Step {
	if path == "" || path == "." {
		return nil
	}
	segments := strings.Split(strings.TrimPrefix(path, "."), ".")
	steps := make([]Step, 0, len(segments))
	for _, seg := range segments {
		if i, err := strconv.Atoi(seg); err == nil && i >= 0 && isDigits(seg) {
			steps = append(steps, Index(i))
			continue
		}
		steps = append(steps, Key(seg))
	}
	return steps
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
