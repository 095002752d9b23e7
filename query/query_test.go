package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvais-p/koaladb/field"
)

func TestFromMapLiteralMeansEquality(t *testing.T) {
	q, err := FromMap(map[string]any{"name": "alex", "active": true})
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)

	doc := field.Fields{"name": field.String("alex"), "active": field.Bool(true)}
	assert.True(t, q.Matches(doc))

	doc["active"] = field.Bool(false)
	assert.False(t, q.Matches(doc))
}

func TestFromMapOperators(t *testing.T) {
	q, err := FromMap(map[string]any{
		"age":    map[string]any{"$gte": 21, "$lt": 30},
		"status": map[string]any{"$in": []any{"active", "new"}},
	})
	require.NoError(t, err)
	require.Len(t, q.Filters, 3)

	assert.True(t, q.Matches(field.Fields{
		"age":    field.Int(25),
		"status": field.String("new"),
	}))
	assert.False(t, q.Matches(field.Fields{
		"age":    field.Int(30),
		"status": field.String("new"),
	}))
}

func TestFromMapErrors(t *testing.T) {
	_, err := FromMap(map[string]any{"age": map[string]any{"$between": 21}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator")

	_, err = FromMap(map[string]any{"age": map[string]any{"$in": 21}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an array")

	_, err = FromMap(map[string]any{"bad": make(chan int)})
	require.Error(t, err)
}
