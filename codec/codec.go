// Package codec centralizes backing-file encoding.
//
// A codec encodes a whole collection (the id to document mapping) to one blob
// and back. Codec selection is intentionally a breaking-change boundary: bytes
// written by one codec may not decode under another, with the exception of the
// zstd wrapper, which detects uncompressed input and passes it through.
package codec

import "github.com/ruvais-p/koaladb/field"

// Codec encodes/decodes a whole collection mapping.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Encode serializes the id to document mapping into one blob.
	Encode(docs map[string]field.Fields) ([]byte, error)
	// Decode deserializes a blob into the id to document mapping.
	// Empty input decodes to an empty mapping.
	Decode(data []byte) (map[string]field.Fields, error)
	// Name returns the stable name of the codec.
	Name() string
}

// Default is the codec used when none is configured. BSON is the on-disk
// format existing backing files were written in.
var Default Codec = BSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "bson":
		return BSON{}, true
	case "json":
		return JSON{}, true
	case "zstd+bson":
		z, err := NewZstd(BSON{})
		return z, err == nil
	case "zstd+json":
		z, err := NewZstd(JSON{})
		return z, err == nil
	default:
		return nil, false
	}
}
