package koaladb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvais-p/koaladb/field"
)

// clock is a controllable time source for lifecycle stamps.
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestDB(t *testing.T, opts ...Option) (*DB, *clock) {
	t.Helper()
	ck := &clock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(ck.Now)}, opts...)
	db, err := Open(filepath.Join(t.TempDir(), "KoalaDB"), opts...)
	require.NoError(t, err)
	return db, ck
}

func newTestCollection(t *testing.T, opts ...Option) (*Collection, *clock) {
	t.Helper()
	db, ck := newTestDB(t, opts...)
	require.NoError(t, db.CreateCollection("users"))
	coll, err := db.Collection("users")
	require.NoError(t, err)
	return coll, ck
}

func TestOpenCreatesLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "db")
	db, err := Open(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = os.Stat(db.MediaStore().Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCollectionNotFound(t *testing.T) {
	db, _ := newTestDB(t)

	_, err := db.Collection("ghosts")
	require.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestCreateCollectionIsIdempotent(t *testing.T) {
	db, _ := newTestDB(t)

	require.NoError(t, db.CreateCollection("users"))
	coll, err := db.Collection("users")
	require.NoError(t, err)
	_, err = coll.Create(WithID("u1"))
	require.NoError(t, err)

	// Re-declaring must not truncate existing data.
	require.NoError(t, db.CreateCollection("users"))
	coll, err = db.Collection("users")
	require.NoError(t, err)
	_, err = coll.Get("u1")
	require.NoError(t, err)
}

func TestCollectionsLists(t *testing.T) {
	db, _ := newTestDB(t)
	require.NoError(t, db.CreateCollection("users"))
	require.NoError(t, db.CreateCollection("posts"))

	names, err := db.Collections()
	require.NoError(t, err)
	// The content store directory has no backing file and is not a collection.
	assert.ElementsMatch(t, []string{"users", "posts"}, names)
}

func TestPersistReopenRoundTrip(t *testing.T) {
	db, _ := newTestDB(t)
	require.NoError(t, db.CreateCollection("users"))
	coll, err := db.Collection("users")
	require.NoError(t, err)

	doc, err := coll.Create(WithID("u1"))
	require.NoError(t, err)
	_, err = doc.Add(field.Fields{
		"name":    field.String("alex"),
		"age":     field.Int(30),
		"score":   field.Float(1.5),
		"tags":    field.Array([]field.Value{field.String("a")}),
		"profile": field.Map(field.Fields{"city": field.String("kochi")}),
	})
	require.NoError(t, err)

	want, err := coll.Get("u1")
	require.NoError(t, err)

	reopened, err := db.Collection("users")
	require.NoError(t, err)
	got, err := reopened.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompressedBackingFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "db")
	open := func(opts ...Option) *DB {
		db, err := Open(root, opts...)
		require.NoError(t, err)
		return db
	}

	db := open(WithCompression())
	require.NoError(t, db.CreateCollection("users"))
	coll, err := db.Collection("users")
	require.NoError(t, err)
	_, err = coll.Create(WithID("u1"))
	require.NoError(t, err)

	reopened, err := open(WithCompression()).Collection("users")
	require.NoError(t, err)
	_, err = reopened.Get("u1")
	require.NoError(t, err)
}

func TestCompressionAdoptsPlainFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "db")

	db, err := Open(root)
	require.NoError(t, err)
	require.NoError(t, db.CreateCollection("users"))
	coll, err := db.Collection("users")
	require.NoError(t, err)
	_, err = coll.Create(WithID("u1"))
	require.NoError(t, err)

	// Reopening with compression reads the plain file transparently.
	db2, err := Open(root, WithCompression())
	require.NoError(t, err)
	coll2, err := db2.Collection("users")
	require.NoError(t, err)
	_, err = coll2.Get("u1")
	require.NoError(t, err)
}
