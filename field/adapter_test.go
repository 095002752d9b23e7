package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Value
		wantErr  bool
	}{
		{"nil", nil, Null(), false},
		{"bool", true, Bool(true), false},
		{"string", "x", String("x"), false},
		{"int", int(1), Int(1), false},
		{"int8", int8(1), Int(1), false},
		{"int16", int16(1), Int(1), false},
		{"int32", int32(1), Int(1), false},
		{"int64", int64(1), Int(1), false},
		{"uint", uint(1), Int(1), false},
		{"uint32", uint32(1), Int(1), false},
		{"float32", float32(1.5), Float(1.5), false},
		{"float64", 1.5, Float(1.5), false},
		{"value passthrough", Int(7), Int(7), false},
		{"strings", []string{"a"}, Array([]Value{String("a")}), false},
		{"ints", []int{1}, Array([]Value{Int(1)}), false},
		{"floats", []float64{1.5}, Array([]Value{Float(1.5)}), false},
		{"mixed array", []any{1, "a"}, Array([]Value{Int(1), String("a")}), false},
		{"struct", struct{}{}, Value{}, true},
		{"huge uint64", uint64(1) << 63, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromAnyTime(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	got, err := FromAny(ts)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, got.Kind)
	assert.Equal(t, float64(ts.Unix()), got.F64)
}

func TestFieldsFromAnyNested(t *testing.T) {
	f, err := FieldsFromAny(map[string]any{
		"name": "alex",
		"profile": map[string]any{
			"city": "kochi",
			"pins": []any{1, 2},
		},
	})
	require.NoError(t, err)

	profile, ok := f["profile"].AsMap()
	require.True(t, ok)
	city, ok := profile["city"].AsString()
	require.True(t, ok)
	assert.Equal(t, "kochi", city)
	pins, ok := profile["pins"].AsArray()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(1), Int(2)}, pins)
}

func TestFieldsFromAnyError(t *testing.T) {
	_, err := FieldsFromAny(map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "bad"`)
}

func TestToAnyRoundTrip(t *testing.T) {
	f := Fields{
		"null":  Null(),
		"bool":  Bool(true),
		"int":   Int(42),
		"float": Float(1.5),
		"str":   String("x"),
		"arr":   Array([]Value{Int(1), String("a")}),
		"map":   Map(Fields{"k": Int(1)}),
	}

	back, err := FieldsFromAny(FieldsToAny(f))
	require.NoError(t, err)
	assert.Equal(t, f, back)
}
