// Package field defines the schema-less value model for documents.
//
// A document is a mapping of field names to typed values. Values are a small
// closed tagged union (null, bool, int, float, string, array, map) rather than
// bare interface{} so that matching, persistence, and media scanning stay
// predictable and reflection-free.
package field

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindArray represents an array value.
	KindArray
	// KindMap represents a nested mapping value.
	KindMap
)

// Value is a small typed value used for document fields.
//
// NOTE: This is also the persistence model; keep it stable.
type Value struct {
	Kind Kind
	B    bool
	I64  int64
	F64  float64
	S    string
	A    []Value
	M    Fields
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Map returns a nested mapping Value.
func Map(v Fields) Value { return Value{Kind: KindMap, M: v} }

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsMap returns the nested mapping if Kind is KindMap.
func (v Value) AsMap() (Fields, bool) {
	if v.Kind != KindMap {
		return nil, false
	}
	return v.M, true
}

// Number returns the value as float64 if it is numeric (int or float).
// Timestamps are stored as floats but callers frequently seed them as ints,
// so numeric fields are treated uniformly.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	default:
		return 0, false
	}
}

// IsNumber reports whether the value is an int or a float.
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// Key returns a stable string representation for use in map keys.
//
// It must remain stable across versions; grouping and deduplication rely on it.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.S
	case KindArray:
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	case KindMap:
		parts := make([]string, 0, len(v.M))
		for k, mv := range v.M {
			parts = append(parts, k+"="+mv.Key())
		}
		sortStrings(parts)
		return "m:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

// sortStrings is a tiny insertion sort; maps here are small.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// Clone creates a deep copy of a Value, including nested arrays and maps.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindArray:
		if len(v.A) == 0 {
			return v
		}
		a := make([]Value, len(v.A))
		for i := range v.A {
			a[i] = v.A[i].Clone()
		}
		return Value{Kind: KindArray, A: a}
	case KindMap:
		return Value{Kind: KindMap, M: v.M.Clone()}
	default:
		// Scalar values copy by value semantics.
		return v
	}
}

// Fields is a schema-less document: field name to value.
type Fields map[string]Value

// Clone creates a deep copy of the document.
//
// This is the safe default to prevent external mutation of store-owned state.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	clone := make(Fields, len(f))
	for k, v := range f {
		clone[k] = v.Clone()
	}
	return clone
}
