package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvais-p/koaladb/field"
)

func ages(t *testing.T) map[string]field.Fields {
	t.Helper()
	docs := make(map[string]field.Fields)
	for _, age := range []int64{20, 21, 22, 23} {
		docs[string(rune('a'+age-20))] = field.Fields{"age": field.Int(age)}
	}
	return docs
}

func matchingAges(docs map[string]field.Fields, q *Query) []int64 {
	var out []int64
	for _, doc := range docs {
		if q.Matches(doc) {
			n, _ := doc["age"].Number()
			out = append(out, int64(n))
		}
	}
	return out
}

func TestOperatorsOverAges(t *testing.T) {
	docs := ages(t)

	tests := []struct {
		name     string
		query    *Query
		expected []int64
	}{
		{"gte", New(Gte("age", field.Int(21))), []int64{21, 22, 23}},
		{"gt", New(Gt("age", field.Int(21))), []int64{22, 23}},
		{"lt", New(Lt("age", field.Int(21))), []int64{20}},
		{"lte", New(Lte("age", field.Int(21))), []int64{20, 21}},
		{"ne", New(Ne("age", field.Int(21))), []int64{20, 22, 23}},
		{"eq", New(Eq("age", field.Int(21))), []int64{21}},
		{"in", New(In("age", field.Int(20), field.Int(23))), []int64{20, 23}},
		{"nin", New(NotIn("age", field.Int(20), field.Int(23))), []int64{21, 22}},
		{"and", New(Gt("age", field.Int(20)), Lt("age", field.Int(23))), []int64{21, 22}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, matchingAges(docs, tt.query))
		})
	}
}

func TestIntFloatCompareOnOneAxis(t *testing.T) {
	doc := field.Fields{"score": field.Float(21.0)}
	assert.True(t, New(Eq("score", field.Int(21))).Matches(doc))
	assert.True(t, New(Gte("score", field.Int(21))).Matches(doc))
	assert.True(t, New(Lt("score", field.Float(21.5))).Matches(doc))
}

func TestAbsentFieldFailsClause(t *testing.T) {
	doc := field.Fields{"name": field.String("alex")}

	// Every operator fails on a missing field, including negated ones.
	assert.False(t, New(Eq("age", field.Int(21))).Matches(doc))
	assert.False(t, New(Ne("age", field.Int(21))).Matches(doc))
	assert.False(t, New(NotIn("age", field.Int(21))).Matches(doc))
}

func TestMismatchedTypesEvaluateFalse(t *testing.T) {
	doc := field.Fields{"age": field.String("21")}

	assert.False(t, New(Gt("age", field.Int(20))).Matches(doc))
	assert.False(t, New(Lt("age", field.Int(99))).Matches(doc))
	assert.False(t, New(Eq("age", field.Int(21))).Matches(doc))
	// Inequality across types holds: the values are not equal.
	assert.True(t, New(Ne("age", field.Int(21))).Matches(doc))
}

func TestStringOrdering(t *testing.T) {
	doc := field.Fields{"name": field.String("m")}

	assert.True(t, New(Gt("name", field.String("a"))).Matches(doc))
	assert.True(t, New(Lt("name", field.String("z"))).Matches(doc))
	assert.False(t, New(Gt("name", field.String("z"))).Matches(doc))
}

func TestEqualityOnCompoundValues(t *testing.T) {
	doc := field.Fields{
		"tags":    field.Array([]field.Value{field.String("a"), field.String("b")}),
		"profile": field.Map(field.Fields{"city": field.String("kochi")}),
		"nothing": field.Null(),
	}

	assert.True(t, New(Eq("tags", field.Array([]field.Value{field.String("a"), field.String("b")}))).Matches(doc))
	assert.False(t, New(Eq("tags", field.Array([]field.Value{field.String("b"), field.String("a")}))).Matches(doc))
	assert.True(t, New(Eq("profile", field.Map(field.Fields{"city": field.String("kochi")}))).Matches(doc))
	assert.True(t, New(Eq("nothing", field.Null())).Matches(doc))
	assert.False(t, New(Eq("nothing", field.Int(0))).Matches(doc))
}

func TestNilQueryMatchesEverything(t *testing.T) {
	var q *Query
	assert.True(t, q.Matches(field.Fields{"x": field.Int(1)}))
	assert.True(t, New().Matches(field.Fields{}))
}

func TestInWithStrings(t *testing.T) {
	doc := field.Fields{"status": field.String("active")}
	require.True(t, New(In("status", field.String("active"), field.String("new"))).Matches(doc))
	require.False(t, New(In("status", field.String("blocked"))).Matches(doc))
}
