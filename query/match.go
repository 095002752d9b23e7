package query

import (
	"strings"

	"github.com/ruvais-p/koaladb/field"
)

// Matches checks if the provided document matches this filter.
func (f Filter) Matches(doc field.Fields) bool {
	value, exists := doc[f.Field]
	if !exists {
		return false
	}

	switch f.Operator {
	case OpEqual:
		return compareEqual(value, f.Value)
	case OpNotEqual:
		return !compareEqual(value, f.Value)
	case OpGreaterThan:
		return compareGreater(value, f.Value)
	case OpGreaterEqual:
		return compareGreater(value, f.Value) || compareEqual(value, f.Value)
	case OpLessThan:
		return compareLess(value, f.Value)
	case OpLessEqual:
		return compareLess(value, f.Value) || compareEqual(value, f.Value)
	case OpIn:
		return compareIn(value, f.Value)
	case OpNotIn:
		return !compareIn(value, f.Value)
	default:
		return false
	}
}

// Matches checks if the provided document matches all filters in the query.
// A nil query matches every document.
func (q *Query) Matches(doc field.Fields) bool {
	if q == nil {
		return true
	}
	for _, filter := range q.Filters {
		if !filter.Matches(doc) {
			return false
		}
	}
	return true
}

func compareEqual(a, b field.Value) bool {
	if a.Kind == field.KindNull && b.Kind == field.KindNull {
		return true
	}
	if a.Kind == field.KindNull || b.Kind == field.KindNull {
		return false
	}

	if a.IsNumber() && b.IsNumber() {
		// Prefer exact int compare when possible.
		if a.Kind == field.KindInt && b.Kind == field.KindInt {
			return a.I64 == b.I64
		}
		an, _ := a.Number()
		bn, _ := b.Number()
		return an == bn
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case field.KindString:
		return a.S == b.S
	case field.KindBool:
		return a.B == b.B
	case field.KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !compareEqual(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	case field.KindMap:
		if len(a.M) != len(b.M) {
			return false
		}
		for k, av := range a.M {
			bv, ok := b.M[k]
			if !ok || !compareEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func compareGreater(a, b field.Value) bool {
	if a.IsNumber() && b.IsNumber() {
		an, _ := a.Number()
		bn, _ := b.Number()
		return an > bn
	}
	if a.Kind == field.KindString && b.Kind == field.KindString {
		return strings.Compare(a.S, b.S) > 0
	}
	return false
}

func compareLess(a, b field.Value) bool {
	if a.IsNumber() && b.IsNumber() {
		an, _ := a.Number()
		bn, _ := b.Number()
		return an < bn
	}
	if a.Kind == field.KindString && b.Kind == field.KindString {
		return strings.Compare(a.S, b.S) < 0
	}
	return false
}

func compareIn(a, b field.Value) bool {
	if b.Kind != field.KindArray {
		return false
	}
	for _, item := range b.A {
		if compareEqual(a, item) {
			return true
		}
	}
	return false
}
