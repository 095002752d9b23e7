package koaladb

import (
	"fmt"

	"github.com/ruvais-p/koaladb/field"
	"github.com/ruvais-p/koaladb/timeutil"
)

// Document is a stateless handle to one document id. It holds no field data;
// every call reads and writes through the owning Collection, so handles stay
// valid across other mutations for as long as the id exists.
type Document struct {
	collection *Collection
	id         string
}

// NewDocument returns a handle for an id in the collection. The id is not
// checked here; a missing document surfaces as ErrDocumentNotFound on use.
func NewDocument(c *Collection, id string) *Document {
	return &Document{collection: c, id: id}
}

// ID returns the document id. Ids are immutable and unique within their
// collection for the document's lifetime.
func (d *Document) ID() string { return d.id }

// Collection returns the owning collection.
func (d *Document) Collection() *Collection { return d.collection }

// Fields returns a copy of the document's current field mapping.
func (d *Document) Fields() (field.Fields, error) {
	return d.collection.Get(d.id)
}

// Add merges fields into the document and returns the handle for chaining.
func (d *Document) Add(fields field.Fields, opts ...WriteOption) (*Document, error) {
	if err := d.collection.Update(d.id, fields, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// Touch stamps only _updated_at to the current UTC time.
func (d *Document) Touch() (*Document, error) {
	doc, ok := d.collection.docs[d.id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, d.id)
	}
	doc[UpdatedAtField] = field.Float(d.collection.db.timestamp())
	if err := d.collection.persist(); err != nil {
		return nil, err
	}
	return d, nil
}

// AddMediaFile copies a local file into the content store and records the
// reference in the named field. Returns the relative reference path.
func (d *Document) AddMediaFile(localPath, fieldName string) (string, error) {
	return d.collection.StoreMediaFile(localPath, d.id, fieldName)
}

// AddMediaFiles copies several local files into the content store and records
// the references as one array-valued field.
func (d *Document) AddMediaFiles(localPaths []string, fieldName string) ([]string, error) {
	return d.collection.StoreMediaFiles(localPaths, d.id, fieldName)
}

// MediaFilePath resolves the named field's media reference to an absolute
// filesystem path.
func (d *Document) MediaFilePath(fieldName string) (string, error) {
	rel, err := d.mediaRef(fieldName)
	if err != nil {
		return "", err
	}
	return d.collection.db.media.AbsPath(rel), nil
}

// MediaFileURL resolves the named field's media reference to a serving URL.
// The empty base defaults to "/media".
func (d *Document) MediaFileURL(fieldName, baseURL string) (string, error) {
	rel, err := d.mediaRef(fieldName)
	if err != nil {
		return "", err
	}
	return d.collection.db.media.URL(rel, baseURL), nil
}

func (d *Document) mediaRef(fieldName string) (string, error) {
	doc, err := d.collection.Get(d.id)
	if err != nil {
		return "", err
	}
	v, ok := doc[fieldName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldNotFound, fieldName)
	}
	rel, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a media reference", ErrInvalidArgument, fieldName)
	}
	return rel, nil
}

// AgeInSeconds returns now minus the document's timestamp field, in seconds.
func (d *Document) AgeInSeconds(fieldName string) (float64, error) {
	ts, err := d.timestampField(fieldName)
	if err != nil {
		return 0, err
	}
	return d.collection.db.timestamp() - ts, nil
}

// AgeInDays returns now minus the document's timestamp field, in days.
func (d *Document) AgeInDays(fieldName string) (float64, error) {
	secs, err := d.AgeInSeconds(fieldName)
	if err != nil {
		return 0, err
	}
	return secs / 86400, nil
}

// FormattedTimestamp renders the document's timestamp field with the given
// layout, in UTC.
func (d *Document) FormattedTimestamp(fieldName, layout string) (string, error) {
	ts, err := d.timestampField(fieldName)
	if err != nil {
		return "", err
	}
	return timeutil.Format(ts, layout), nil
}

func (d *Document) timestampField(fieldName string) (float64, error) {
	doc, err := d.collection.Get(d.id)
	if err != nil {
		return 0, err
	}
	v, ok := doc[fieldName]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFieldNotFound, fieldName)
	}
	ts, ok := v.Number()
	if !ok {
		return 0, fmt.Errorf("%w: field %q is not a timestamp", ErrInvalidArgument, fieldName)
	}
	return ts, nil
}
