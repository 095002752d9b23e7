// Package mediastore manages attachment files in the shared content store.
//
// The content store is one directory shared by all collections. Stored files
// get generated names that keep the original extension and are referenced from
// documents as relative paths of the form "store/<name>". Ownership lives in
// the documents themselves: whoever deletes a document scans its fields for
// references and removes the files.
package mediastore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ruvais-p/koaladb/field"
)

// Prefix marks a string field value as a media reference.
const Prefix = "store/"

// ErrFileNotFound is returned when a source file to store does not exist.
var ErrFileNotFound = errors.New("media file not found")

// Store copies attachment files into the content store directory and removes
// them when their owning documents go away.
type Store struct {
	root   string // database root; references are relative to it
	dir    string // root/store
	logger *slog.Logger
}

// New creates a media store under root. The content directory must already
// exist (the database bootstrap creates it).
func New(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Store{
		root:   root,
		dir:    filepath.Join(root, "store"),
		logger: logger,
	}
}

// Dir returns the content store directory.
func (s *Store) Dir() string { return s.dir }

// Put copies the file at localPath into the content store under a generated
// name that preserves the extension, and returns the relative reference path.
func (s *Store) Put(localPath string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
		}
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(localPath)
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	rel := Prefix + name
	s.logger.Debug("media file stored", "source", localPath, "path", rel)
	return rel, nil
}

// PutAll copies every file into the content store and returns the relative
// reference paths, in input order.
func (s *Store) PutAll(localPaths []string) ([]string, error) {
	rels := make([]string, 0, len(localPaths))
	for _, p := range localPaths {
		rel, err := s.Put(p)
		if err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

// Remove deletes the referenced file from the content store. Removal is best
// effort: the file may already be gone from a prior partial failure, so
// failures are logged and never propagated.
func (s *Store) Remove(rel string) {
	if !strings.HasPrefix(rel, Prefix) {
		return
	}
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	err := os.Remove(full)
	switch {
	case err == nil:
		s.logger.Debug("media file deleted", "path", rel)
	case os.IsNotExist(err):
		// Already gone; nothing to do.
	default:
		s.logger.Warn("media file delete failed", "path", rel, "error", err)
	}
}

// AbsPath resolves a relative reference to an absolute filesystem path.
func (s *Store) AbsPath(rel string) string {
	abs, err := filepath.Abs(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return filepath.Join(s.root, filepath.FromSlash(rel))
	}
	return abs
}

// URL builds a serving URL for a relative reference. The empty base defaults
// to "/media".
func (s *Store) URL(rel, base string) string {
	if base == "" {
		base = "/media"
	}
	return strings.TrimSuffix(base, "/") + "/" + rel
}

// IsReference reports whether a field value names a stored media file.
func IsReference(v field.Value) bool {
	return v.Kind == field.KindString && strings.HasPrefix(v.S, Prefix)
}

// References scans a document for media references: string fields and string
// elements of array fields that carry the store prefix.
func References(doc field.Fields) []string {
	var refs []string
	for _, v := range doc {
		switch v.Kind {
		case field.KindString:
			if IsReference(v) {
				refs = append(refs, v.S)
			}
		case field.KindArray:
			for _, item := range v.A {
				if IsReference(item) {
					refs = append(refs, item.S)
				}
			}
		}
	}
	return refs
}
