package codec

import (
	"encoding/json"
	"fmt"

	"github.com/ruvais-p/koaladb/field"
)

// JSON is the standard-library JSON codec.
//
// It is not the canonical backing format; use it for debugging and for data
// that must stay inspectable with ordinary text tools. JSON has no integer
// type, so int fields decode back as floats.
type JSON struct{}

// Encode serializes the mapping to JSON.
func (JSON) Encode(docs map[string]field.Fields) ([]byte, error) {
	m := make(map[string]map[string]any, len(docs))
	for id, f := range docs {
		m[id] = field.FieldsToAny(f)
	}
	return json.Marshal(m)
}

// Decode deserializes JSON into the mapping. Empty input decodes to an empty
// mapping.
func (JSON) Decode(data []byte) (map[string]field.Fields, error) {
	out := make(map[string]field.Fields)
	if len(data) == 0 {
		return out, nil
	}
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for id, doc := range raw {
		f, err := field.FieldsFromAny(doc)
		if err != nil {
			return nil, fmt.Errorf("document %q: %w", id, err)
		}
		out[id] = f
	}
	return out, nil
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
