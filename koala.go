package koaladb

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ruvais-p/koaladb/codec"
	"github.com/ruvais-p/koaladb/internal/fs"
	"github.com/ruvais-p/koaladb/mediastore"
	"github.com/ruvais-p/koaladb/timeutil"
)

const (
	// DataFileName is the backing file inside each collection directory.
	DataFileName = "data.bson"

	// CreatedAtField holds the UTC epoch-seconds creation timestamp.
	CreatedAtField = "_created_at"
	// UpdatedAtField holds the UTC epoch-seconds last-update timestamp.
	UpdatedAtField = "_updated_at"
)

// DB is a handle to one database directory. It owns the content store and the
// settings shared by every collection opened through it.
//
// The design assumes one owning DB instance per directory at a time; two
// instances mutating the same files race at the filesystem level and the last
// writer wins.
type DB struct {
	root   string
	codec  codec.Codec
	logger *Logger
	fs     fs.FileSystem
	now    func() time.Time
	media  *mediastore.Store
}

// Open initializes the database directory and the shared content store
// directory, creating them if needed, and returns a handle.
func Open(root string, opts ...Option) (*DB, error) {
	o := options{
		codec:  codec.Default,
		logger: NoopLogger(),
		fs:     fs.Default,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.compress {
		z, err := codec.NewZstd(o.codec)
		if err != nil {
			return nil, err
		}
		o.codec = z
	}

	if err := o.fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create database root: %w", err)
	}
	storeDir := filepath.Join(root, "store")
	if err := o.fs.MkdirAll(storeDir, 0o755); err != nil {
		return nil, fmt.Errorf("create content store: %w", err)
	}

	db := &DB{
		root:   root,
		codec:  o.codec,
		logger: o.logger,
		fs:     o.fs,
		now:    o.now,
		media:  mediastore.New(root, o.logger.Logger),
	}
	db.logger.Info("database opened", "root", root, "codec", o.codec.Name())
	return db, nil
}

// Root returns the database directory.
func (db *DB) Root() string { return db.root }

// MediaStore returns the shared content store.
func (db *DB) MediaStore() *mediastore.Store { return db.media }

// CreateCollection declares a collection: it creates the collection directory
// and an empty backing file. Declaring an existing collection is a no-op.
func (db *DB) CreateCollection(name string) error {
	dir := filepath.Join(db.root, name)
	if err := db.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create collection %q: %w", name, err)
	}
	path := filepath.Join(dir, DataFileName)
	if _, err := db.fs.Stat(path); err == nil {
		return nil
	}
	data, err := db.codec.Encode(nil)
	if err != nil {
		return fmt.Errorf("create collection %q: %w", name, err)
	}
	if err := fs.WriteFileAtomic(db.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("create collection %q: %w", name, err)
	}
	db.logger.Info("collection created", "collection", name)
	return nil
}

// Collection opens a declared collection and loads its whole backing file
// into memory. The load happens once; all reads after that are in-memory.
func (db *DB) Collection(name string) (*Collection, error) {
	path := filepath.Join(db.root, name, DataFileName)
	data, err := fs.ReadFile(db.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
		}
		return nil, fmt.Errorf("open collection %q: %w", name, err)
	}
	docs, err := db.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", name, err)
	}
	return &Collection{
		db:   db,
		name: name,
		path: path,
		docs: docs,
	}, nil
}

// Collections lists the declared collections: every subdirectory of the
// database root carrying a backing file.
func (db *DB) Collections() ([]string, error) {
	entries, err := db.fs.ReadDir(db.root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(db.root, e.Name(), DataFileName)
		if _, err := db.fs.Stat(path); err == nil {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// timestamp returns the current UTC epoch seconds from the configured clock.
func (db *DB) timestamp() float64 {
	return timeutil.Timestamp(db.now())
}
