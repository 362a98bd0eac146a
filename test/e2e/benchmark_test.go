package e2e_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/formatter"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/serializer"
	"github.com/mcncl/jsontree/internal/value"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(depth int, width int) map[string]any {
	if depth <= 0 {
		return map[string]any{
			"leaf_value": "data",
			"timestamp":  time.Now().Format(time.RFC3339),
			"count":      rand.Intn(100),
			"enabled":    rand.Intn(2) == 1,
		}
	}

	result := make(map[string]any)
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(depth-1, width)
	}
	return result
}

// generateWideJSON creates a JSON object with many fields at the same level
func generateWideJSON(fieldCount int) map[string]any {
	result := make(map[string]any)

	for i := 0; i < fieldCount; i++ {
		// Mix different types of fields
		switch i % 5 {
		case 0:
			result[fmt.Sprintf("string_field_%d", i)] = fmt.Sprintf("value_%d", i)
		case 1:
			result[fmt.Sprintf("int_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%2 == 0
		case 3:
			result[fmt.Sprintf("float_field_%d", i)] = float64(i) + 0.5
		case 4:
			result[fmt.Sprintf("object_field_%d", i)] = map[string]any{
				"id":    i,
				"name":  fmt.Sprintf("Object %d", i),
				"value": i * 10,
			}
		}
	}
	return result
}

func marshal(b *testing.B, data any) []byte {
	b.Helper()
	jsonData, err := gojson.Marshal(data)
	require.NoError(b, err)
	return jsonData
}

// BenchmarkDeepNesting benchmarks parse and print with deeply nested JSON structures
func BenchmarkDeepNesting(b *testing.B) {
	depths := []struct {
		name  string
		depth int
		width int
	}{
		{"Depth3Width3", 3, 3},   // Moderate nesting
		{"Depth5Width2", 5, 2},   // Deep nesting
		{"Depth2Width10", 2, 10}, // Wide but shallow
	}

	for _, depth := range depths {
		b.Run(depth.name, func(b *testing.B) {
			jsonData := marshal(b, generateNestedJSON(depth.depth, depth.width))
			b.SetBytes(int64(len(jsonData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				doc, err := parser.ParseBytes(jsonData)
				require.NoError(b, err)
				_ = formatter.Print(doc)
			}
		})
	}
}

// BenchmarkWideStructures benchmarks parse and print with many fields on one level
func BenchmarkWideStructures(b *testing.B) {
	for _, fields := range []int{50, 500, 5000} {
		b.Run(fmt.Sprintf("%dFields", fields), func(b *testing.B) {
			jsonData := marshal(b, generateWideJSON(fields))
			b.SetBytes(int64(len(jsonData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				doc, err := parser.ParseBytes(jsonData)
				require.NoError(b, err)
				_ = formatter.Pretty(doc)
			}
		})
	}
}

type benchItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Tags     []string `json:"tags"`
	Active   bool     `json:"active"`
	Priority *int     `json:"priority,omitempty"`
}

// BenchmarkArrayProcessing benchmarks serializer round trips over large arrays
func BenchmarkArrayProcessing(b *testing.B) {
	s := serializer.Codec[[]benchItem]()

	for _, count := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%dItems", count), func(b *testing.B) {
			items := make([]benchItem, count)
			for i := range items {
				items[i] = benchItem{
					ID:     i,
					Name:   fmt.Sprintf("Item %d", i),
					Price:  float64(i) * 1.25,
					Tags:   []string{"a", "b"},
					Active: i%2 == 0,
				}
			}
			require.NoError(b, serializer.Check(s, items, func(x, y []benchItem) bool { return reflect.DeepEqual(x, y) }))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				data := serializer.Serialize(s, items)
				_, ok := serializer.Deserialize(s, data)
				require.True(b, ok)
			}
		})
	}
}

// BenchmarkBulkTraversal benchmarks fail-fast mapping over a parsed array
func BenchmarkBulkTraversal(b *testing.B) {
	numbers := make([]int, 10000)
	for i := range numbers {
		numbers[i] = i
	}
	doc, err := parser.ParseBytes(marshal(b, numbers))
	require.NoError(b, err)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		longs, ok := value.MapOrFail(doc, value.Value.AsLong)
		require.True(b, ok)
		require.Len(b, longs, len(numbers))
	}
}
