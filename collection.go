package koaladb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ruvais-p/koaladb/field"
	"github.com/ruvais-p/koaladb/internal/fs"
	"github.com/ruvais-p/koaladb/mediastore"
	"github.com/ruvais-p/koaladb/query"
	"github.com/ruvais-p/koaladb/timeutil"
)

// Collection owns the in-memory id to document mapping for one collection.
//
// Every mutating call re-serializes the whole mapping and atomically replaces
// the backing file before returning. If that write fails, the in-memory state
// and the file diverge until the next successful persist; there is no
// automatic rollback.
type Collection struct {
	db   *DB
	name string
	path string
	docs map[string]field.Fields
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Create inserts a new document and returns a handle to it.
//
// Without options the id is generated and _created_at/_updated_at are stamped
// to the current UTC time. WithID supplies a caller id; creating an existing
// id fails with ErrDocumentExists and leaves the prior document unchanged.
func (c *Collection) Create(opts ...CreateOption) (*Document, error) {
	cfg := createConfig{autoTimestamp: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := cfg.id
	if id == "" {
		id = uuid.NewString()
	} else if _, exists := c.docs[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDocumentExists, id)
	}

	doc := field.Fields{}
	if cfg.autoTimestamp {
		now := c.db.timestamp()
		doc[CreatedAtField] = field.Float(now)
		doc[UpdatedAtField] = field.Float(now)
	}
	c.docs[id] = doc

	if err := c.persist(); err != nil {
		c.db.logger.LogCreate(c.name, id, err)
		return nil, err
	}
	c.db.logger.LogCreate(c.name, id, nil)
	return &Document{collection: c, id: id}, nil
}

// Get returns a copy of the document's full field mapping.
func (c *Collection) Get(id string) (field.Fields, error) {
	doc, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return doc.Clone(), nil
}

// Find returns every document matching the query, keyed by id. A nil query
// returns every document. Matching is a linear scan; there is no index.
func (c *Collection) Find(q *query.Query) map[string]field.Fields {
	results := make(map[string]field.Fields)
	for id, doc := range c.docs {
		if q.Matches(doc) {
			results[id] = doc.Clone()
		}
	}
	return results
}

// FindOne returns the first document matching the query. Iteration order is
// implementation-defined (Go map order).
func (c *Collection) FindOne(q *query.Query) (string, field.Fields, bool) {
	for id, doc := range c.docs {
		if q.Matches(doc) {
			return id, doc.Clone(), true
		}
	}
	return "", nil, false
}

// FindByDateRange returns documents whose timestamp field falls inside
// [start, end].
func (c *Collection) FindByDateRange(name string, start, end time.Time) map[string]field.Fields {
	return c.Find(query.New(
		query.Gte(name, field.Float(timeutil.Timestamp(start))),
		query.Lte(name, field.Float(timeutil.Timestamp(end))),
	))
}

// FindCreatedBetween returns documents created inside [start, end].
func (c *Collection) FindCreatedBetween(start, end time.Time) map[string]field.Fields {
	return c.FindByDateRange(CreatedAtField, start, end)
}

// FindUpdatedBetween returns documents last updated inside [start, end].
func (c *Collection) FindUpdatedBetween(start, end time.Time) map[string]field.Fields {
	return c.FindByDateRange(UpdatedAtField, start, end)
}

// FindRecent returns documents whose timestamp field is within the last N
// hours.
func (c *Collection) FindRecent(name string, hours int) map[string]field.Fields {
	cutoff := c.db.timestamp() - float64(hours)*3600
	return c.Find(query.New(query.Gte(name, field.Float(cutoff))))
}

// FindOlderThan returns documents whose timestamp field is more than N days
// in the past.
func (c *Collection) FindOlderThan(name string, days int) map[string]field.Fields {
	cutoff := c.db.timestamp() - float64(days)*86400
	return c.Find(query.New(query.Lt(name, field.Float(cutoff))))
}

// Update merges fields into the document (shallow, first level) and stamps
// _updated_at unless suppressed. Fails with ErrDocumentNotFound if the id is
// absent and ErrInvalidArgument for a nil mapping.
func (c *Collection) Update(id string, fields field.Fields, opts ...WriteOption) error {
	cfg := writeConfig{autoTimestamp: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, ok := c.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	if fields == nil {
		return fmt.Errorf("%w: nil update mapping", ErrInvalidArgument)
	}

	c.merge(doc, fields, cfg.autoTimestamp, c.db.timestamp())

	err := c.persist()
	c.db.logger.LogUpdate(c.name, id, err)
	return err
}

// UpdateMany applies the same shallow merge to every document matching the
// query and returns the match count. The backing file is rewritten once, and
// only when at least one document matched.
func (c *Collection) UpdateMany(q *query.Query, fields field.Fields, opts ...WriteOption) (int, error) {
	cfg := writeConfig{autoTimestamp: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if fields == nil {
		return 0, fmt.Errorf("%w: nil update mapping", ErrInvalidArgument)
	}

	now := c.db.timestamp()
	updated := 0
	for _, doc := range c.docs {
		if q.Matches(doc) {
			c.merge(doc, fields, cfg.autoTimestamp, now)
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	return updated, c.persist()
}

// merge copies fields into doc and stamps _updated_at when requested.
// Values are cloned so later caller mutation cannot alias store state.
func (c *Collection) merge(doc, fields field.Fields, stamp bool, now float64) {
	for k, v := range fields {
		doc[k] = v.Clone()
	}
	if stamp {
		doc[UpdatedAtField] = field.Float(now)
	}
}

// Delete removes the document and every media file its fields reference.
// The media cleanup happens before the record disappears and is best effort.
func (c *Collection) Delete(id string) error {
	doc, ok := c.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	c.deleteMedia(doc)
	delete(c.docs, id)

	err := c.persist()
	c.db.logger.LogDelete(c.name, id, err)
	return err
}

// DeleteMany removes every document matching the query, including referenced
// media files, and returns the removed count. The backing file is rewritten
// once, and only when at least one document matched.
func (c *Collection) DeleteMany(q *query.Query) (int, error) {
	var ids []string
	for id, doc := range c.docs {
		if q.Matches(doc) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		c.deleteMedia(c.docs[id])
		delete(c.docs, id)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return len(ids), c.persist()
}

// Count returns the number of documents matching the query. A nil query
// counts every document.
func (c *Collection) Count(q *query.Query) int {
	if q == nil {
		return len(c.docs)
	}
	count := 0
	for _, doc := range c.docs {
		if q.Matches(doc) {
			count++
		}
	}
	return count
}

// OldestDocument returns the document with the smallest value in the given
// timestamp field. Documents lacking the field are skipped.
func (c *Collection) OldestDocument(name string) (string, field.Fields, bool) {
	return c.extremeDocument(name, func(candidate, best float64) bool { return candidate < best })
}

// NewestDocument returns the document with the largest value in the given
// timestamp field. Documents lacking the field are skipped.
func (c *Collection) NewestDocument(name string) (string, field.Fields, bool) {
	return c.extremeDocument(name, func(candidate, best float64) bool { return candidate > best })
}

func (c *Collection) extremeDocument(name string, better func(candidate, best float64) bool) (string, field.Fields, bool) {
	bestID := ""
	var bestTS float64
	for id, doc := range c.docs {
		v, ok := doc[name]
		if !ok {
			continue
		}
		ts, ok := v.Number()
		if !ok {
			continue
		}
		if bestID == "" || better(ts, bestTS) {
			bestID, bestTS = id, ts
		}
	}
	if bestID == "" {
		return "", nil, false
	}
	return bestID, c.docs[bestID].Clone(), true
}

// CleanupOlderThan removes every document whose timestamp field is strictly
// older than now minus the given number of days, with the same media cleanup
// as Delete, and returns the removed count. Pass CreatedAtField for the usual
// creation-age policy.
func (c *Collection) CleanupOlderThan(days int, name string) (int, error) {
	cutoff := c.db.timestamp() - float64(days)*86400
	q := query.New(query.Lt(name, field.Float(cutoff)))

	removed, err := c.DeleteMany(q)
	if err != nil {
		return removed, err
	}
	c.db.logger.LogCleanup(c.name, removed)
	return removed, nil
}

// DocumentsByDate returns every document whose timestamp field falls on the
// given UTC calendar day, regardless of time of day.
func (c *Collection) DocumentsByDate(day time.Time, name string) map[string]field.Fields {
	return c.FindByDateRange(name, timeutil.StartOfDay(day), timeutil.EndOfDay(day))
}

// GroupByDate buckets documents by the calendar-day string derived (UTC) from
// the timestamp field. Documents lacking the field, or holding a non-numeric
// value there, are omitted. An empty layout uses timeutil.DayLayout.
func (c *Collection) GroupByDate(name, layout string) map[string]map[string]field.Fields {
	if layout == "" {
		layout = timeutil.DayLayout
	}
	grouped := make(map[string]map[string]field.Fields)
	for id, doc := range c.docs {
		v, ok := doc[name]
		if !ok {
			continue
		}
		ts, ok := v.Number()
		if !ok {
			continue
		}
		key := timeutil.Format(ts, layout)
		bucket, ok := grouped[key]
		if !ok {
			bucket = make(map[string]field.Fields)
			grouped[key] = bucket
		}
		bucket[id] = doc.Clone()
	}
	return grouped
}

// StoreMediaFile copies the file at localPath into the shared content store
// and returns the relative reference. When ownerID and fieldName are given,
// the reference is immediately written to that field.
func (c *Collection) StoreMediaFile(localPath, ownerID, fieldName string) (string, error) {
	if ownerID != "" && fieldName != "" {
		if _, ok := c.docs[ownerID]; !ok {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, ownerID)
		}
	}
	rel, err := c.db.media.Put(localPath)
	if err != nil {
		return "", err
	}
	if ownerID != "" && fieldName != "" {
		if err := c.Update(ownerID, field.Fields{fieldName: field.String(rel)}); err != nil {
			return "", err
		}
	}
	return rel, nil
}

// StoreMediaFiles copies every file into the content store and, when ownerID
// and fieldName are given, writes the references as one array-valued field.
func (c *Collection) StoreMediaFiles(localPaths []string, ownerID, fieldName string) ([]string, error) {
	if ownerID != "" && fieldName != "" {
		if _, ok := c.docs[ownerID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, ownerID)
		}
	}
	rels, err := c.db.media.PutAll(localPaths)
	if err != nil {
		return nil, err
	}
	if ownerID != "" && fieldName != "" {
		vals := make([]field.Value, len(rels))
		for i, rel := range rels {
			vals[i] = field.String(rel)
		}
		if err := c.Update(ownerID, field.Fields{fieldName: field.Array(vals)}); err != nil {
			return nil, err
		}
	}
	return rels, nil
}

// deleteMedia removes every media file the document references. Ownership is
// discovered by scanning the document's current fields; there is no registry.
func (c *Collection) deleteMedia(doc field.Fields) {
	for _, rel := range mediastore.References(doc) {
		c.db.media.Remove(rel)
	}
}

// Persist serializes the full in-memory mapping and atomically replaces the
// backing file (write to a temporary sibling, fsync, rename). Every mutating
// call invokes this before returning; it is exported for callers that mutated
// nothing but want the file rewritten under the current codec.
func (c *Collection) Persist() error {
	return c.persist()
}

func (c *Collection) persist() error {
	data, err := c.db.codec.Encode(c.docs)
	if err != nil {
		c.db.logger.LogPersist(c.name, len(c.docs), err)
		return fmt.Errorf("encode collection %q: %w", c.name, err)
	}
	if err := fs.WriteFileAtomic(c.db.fs, c.path, data, 0o644); err != nil {
		c.db.logger.LogPersist(c.name, len(c.docs), err)
		return fmt.Errorf("persist collection %q: %w", c.name, err)
	}
	return nil
}
