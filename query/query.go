// Package query implements predicate matching over schema-less documents.
//
// A Query is a conjunction of filters: a document matches iff every filter
// holds. The operator set is small and closed. Comparison semantics:
//
//   - A field absent from the document fails its filter unconditionally,
//     before the operator is evaluated.
//   - Numbers (int and float) compare on one numeric axis.
//   - Strings order lexicographically.
//   - Any other operand/field kind mismatch evaluates false; it is never an
//     error.
package query

import (
	"fmt"

	"github.com/ruvais-p/koaladb/field"
)

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
	// OpIn represents the set membership operator.
	OpIn Operator = "in"
	// OpNotIn represents the set exclusion operator.
	OpNotIn Operator = "nin"
)

// Filter represents a single filter condition on one field.
type Filter struct {
	Field    string
	Operator Operator
	Value    field.Value
}

// Query is a set of filters that must all match (AND logic).
type Query struct {
	Filters []Filter
}

// New creates a query from filters.
func New(filters ...Filter) *Query {
	return &Query{Filters: filters}
}

// Eq builds an equality filter.
func Eq(name string, v field.Value) Filter {
	return Filter{Field: name, Operator: OpEqual, Value: v}
}

// Ne builds an inequality filter.
func Ne(name string, v field.Value) Filter {
	return Filter{Field: name, Operator: OpNotEqual, Value: v}
}

// Gt builds a greater-than filter.
func Gt(name string, v field.Value) Filter {
	return Filter{Field: name, Operator: OpGreaterThan, Value: v}
}

// Gte builds a greater-or-equal filter.
func Gte(name string, v field.Value) Filter {
	return Filter{Field: name, Operator: OpGreaterEqual, Value: v}
}

// Lt builds a less-than filter.
func Lt(name string, v field.Value) Filter {
	return Filter{Field: name, Operator: OpLessThan, Value: v}
}

// Lte builds a less-or-equal filter.
func Lte(name string, v field.Value) Filter {
	return Filter{Field: name, Operator: OpLessEqual, Value: v}
}

// In builds a set-membership filter over the given candidates.
func In(name string, vs ...field.Value) Filter {
	return Filter{Field: name, Operator: OpIn, Value: field.Array(vs)}
}

// NotIn builds a set-exclusion filter over the given candidates.
func NotIn(name string, vs ...field.Value) Filter {
	return Filter{Field: name, Operator: OpNotIn, Value: field.Array(vs)}
}

// operatorNames maps the loose "$op" syntax to typed operators.
var operatorNames = map[string]Operator{
	"$gt":  OpGreaterThan,
	"$lt":  OpLessThan,
	"$gte": OpGreaterEqual,
	"$lte": OpLessEqual,
	"$ne":  OpNotEqual,
	"$in":  OpIn,
	"$nin": OpNotIn,
}

// FromMap parses the loose map query syntax into a typed Query.
//
// A field mapped to a literal means equality; a field mapped to a
// map of "$op" to operand applies that operator:
//
//	FromMap(map[string]any{"age": map[string]any{"$gte": 21}})
func FromMap(m map[string]any) (*Query, error) {
	q := &Query{Filters: make([]Filter, 0, len(m))}
	for name, raw := range m {
		ops, ok := raw.(map[string]any)
		if !ok {
			v, err := field.FromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("query field %q: %w", name, err)
			}
			q.Filters = append(q.Filters, Eq(name, v))
			continue
		}
		for opName, operand := range ops {
			op, known := operatorNames[opName]
			if !known {
				return nil, fmt.Errorf("query field %q: unknown operator %q", name, opName)
			}
			v, err := field.FromAny(operand)
			if err != nil {
				return nil, fmt.Errorf("query field %q: %w", name, err)
			}
			if (op == OpIn || op == OpNotIn) && v.Kind != field.KindArray {
				return nil, fmt.Errorf("query field %q: %s operand must be an array", name, opName)
			}
			q.Filters = append(q.Filters, Filter{Field: name, Operator: op, Value: v})
		}
	}
	return q, nil
}
