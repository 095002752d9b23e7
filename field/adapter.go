package field

import (
	"fmt"
	"time"
)

// FromAny converts a Go value into a typed Value.
//
// This is the adapter layer for user input and for decoded payloads: all
// integer widths collapse to int64, float32 widens to float64, and time.Time
// becomes a UTC epoch-seconds float (the lifecycle timestamp representation).
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(1)<<62 {
			// Avoid silently wrapping large values.
			return Value{}, fmt.Errorf("uint64 field value out of range: %d", x)
		}
		return Int(int64(x)), nil
	case time.Time:
		return Float(float64(x.UnixNano()) / 1e9), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	case Fields:
		return Map(x), nil
	case map[string]any:
		m, err := FieldsFromAny(x)
		if err != nil {
			return Value{}, err
		}
		return Map(m), nil
	default:
		return Value{}, fmt.Errorf("unsupported field value type %T", v)
	}
}

// FieldsFromAny converts a loose map[string]any document to typed Fields.
func FieldsFromAny(m map[string]any) (Fields, error) {
	f := make(Fields, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		f[k] = vv
	}
	return f, nil
}

// ToAny converts a Value back to plain Go data (nil, bool, int64, float64,
// string, []any, map[string]any). This is the shape handed to serializers.
func ToAny(v Value) any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.B
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.S
	case KindArray:
		arr := make([]any, len(v.A))
		for i := range v.A {
			arr[i] = ToAny(v.A[i])
		}
		return arr
	case KindMap:
		return FieldsToAny(v.M)
	default:
		return nil
	}
}

// FieldsToAny converts typed Fields to a plain map[string]any document.
func FieldsToAny(f Fields) map[string]any {
	m := make(map[string]any, len(f))
	for k, v := range f {
		m[k] = ToAny(v)
	}
	return m
}
