package serializer

import (
	"fmt"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/value"
)

// Check verifies the round-trip contract of s for the sample t and reports
// the first leg that does not reproduce t. equal decides sameness of two T
// values. Check only sees trees s produces itself; run CheckIdempotent on
// trees from elsewhere.
func Check[T any](s Serializer[T], t T, equal func(a, b T) bool) error {
	legs := []struct {
		name string
		run  func() (T, bool)
	}{
		{"json", func() (T, bool) { return s.FromJSON(s.ToJSON(t)) }},
		{"string", func() (T, bool) { return FromJSONString(s, ToJSONString(s, t)) }},
		{"pretty string", func() (T, bool) { return FromJSONString(s, ToPrettyJSONString(s, t)) }},
		{"bytes", func() (T, bool) { return Deserialize(s, Serialize(s, t)) }},
	}
	for _, leg := range legs {
		got, ok := leg.run()
		if !ok {
			return fmt.Errorf("%s round trip rejected its own output: %w", leg.name, errors.ErrRoundTrip)
		}
		if !equal(got, t) {
			return fmt.Errorf("%s round trip changed the value: %w", leg.name, errors.ErrRoundTrip)
		}
	}
	return CheckIdempotent(s, s.ToJSON(t), equal)
}

// CheckIdempotent verifies that a tree accepted by s decodes to the same
// value after being re-encoded. Trees s rejects pass trivially.
func CheckIdempotent[T any](s Serializer[T], j value.Value, equal func(a, b T) bool) error {
	t, ok := s.FromJSON(j)
	if !ok {
		return nil
	}
	again, ok := s.FromJSON(s.ToJSON(t))
	if !ok {
		return fmt.Errorf("re-encoded value was rejected: %w", errors.ErrRoundTrip)
	}
	if !equal(again, t) {
		return fmt.Errorf("re-encoded value decoded differently: %w", errors.ErrRoundTrip)
	}
	return nil
}
