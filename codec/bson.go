package codec

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ruvais-p/koaladb/field"
)

// BSON encodes the collection mapping as a single BSON document whose keys are
// document ids. This is the canonical backing-file format: length-prefixed,
// self-describing, and compatible with files produced by earlier KoalaDB
// versions.
type BSON struct{}

// Encode serializes the mapping to BSON.
func (BSON) Encode(docs map[string]field.Fields) ([]byte, error) {
	m := make(bson.M, len(docs))
	for id, f := range docs {
		m[id] = field.FieldsToAny(f)
	}
	return bson.Marshal(m)
}

// Decode deserializes BSON into the mapping. Empty input decodes to an empty
// mapping, matching a freshly declared collection.
func (BSON) Decode(data []byte) (map[string]field.Fields, error) {
	out := make(map[string]field.Fields)
	if len(data) == 0 {
		return out, nil
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for id, doc := range raw {
		f, err := fieldsFromBSON(doc)
		if err != nil {
			return nil, fmt.Errorf("document %q: %w", id, err)
		}
		out[id] = f
	}
	return out, nil
}

// Name returns the unique name of the codec ("bson").
func (BSON) Name() string { return "bson" }

func fieldsFromBSON(v any) (field.Fields, error) {
	switch doc := v.(type) {
	case primitive.D:
		f := make(field.Fields, len(doc))
		for _, e := range doc {
			fv, err := valueFromBSON(e.Value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", e.Key, err)
			}
			f[e.Key] = fv
		}
		return f, nil
	case primitive.M:
		f := make(field.Fields, len(doc))
		for k, ev := range doc {
			fv, err := valueFromBSON(ev)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			f[k] = fv
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected embedded document, got %T", v)
	}
}

func valueFromBSON(v any) (field.Value, error) {
	switch x := v.(type) {
	case nil, primitive.Null, primitive.Undefined:
		return field.Null(), nil
	case bool:
		return field.Bool(x), nil
	case string:
		return field.String(x), nil
	case int32:
		return field.Int(int64(x)), nil
	case int64:
		return field.Int(x), nil
	case float64:
		return field.Float(x), nil
	case primitive.DateTime:
		// Legacy writers stored datetimes; normalize to epoch-seconds floats.
		return field.Float(float64(x) / 1e3), nil
	case primitive.A:
		arr := make([]field.Value, len(x))
		for i := range x {
			fv, err := valueFromBSON(x[i])
			if err != nil {
				return field.Value{}, err
			}
			arr[i] = fv
		}
		return field.Array(arr), nil
	case primitive.D, primitive.M:
		f, err := fieldsFromBSON(x)
		if err != nil {
			return field.Value{}, err
		}
		return field.Map(f), nil
	default:
		return field.Value{}, fmt.Errorf("unsupported BSON value type %T", v)
	}
}
