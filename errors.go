package koaladb

import (
	"errors"

	"github.com/ruvais-p/koaladb/mediastore"
)

var (
	// ErrCollectionNotFound is returned when a collection's backing file does
	// not exist. Declare the collection first with CreateCollection.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrDocumentExists is returned when creating a document under an id that
	// is already present in the collection.
	ErrDocumentExists = errors.New("document id already exists")

	// ErrDocumentNotFound is returned when the referenced document id is not
	// in the collection.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrFieldNotFound is returned when a named field is missing from a
	// document.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidArgument is returned for malformed payloads, such as a nil
	// update mapping or a non-string value where a media reference is needed.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrFileNotFound is returned when a media source file does not exist.
//
// It is the mediastore sentinel re-exported so callers can match every store
// error against this package alone.
var ErrFileNotFound = mediastore.ErrFileNotFound
