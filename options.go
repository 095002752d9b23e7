package koaladb

import (
	"time"

	"github.com/ruvais-p/koaladb/codec"
	"github.com/ruvais-p/koaladb/internal/fs"
)

type options struct {
	codec    codec.Codec
	compress bool
	logger   *Logger
	fs       fs.FileSystem
	now      func() time.Time
}

// Option configures Open behavior.
type Option func(*options)

// WithCodec configures the codec used for backing files.
//
// If nil is passed, codec.Default (BSON) is used. All collections of one
// database share the codec; mixing codecs across opens of the same database
// makes existing files unreadable.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression wraps the configured codec in transparent zstd compression.
// Existing uncompressed backing files still open; they are rewritten
// compressed on their next mutation.
func WithCompression() Option {
	return func(o *options) {
		o.compress = true
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithClock overrides the time source used for lifecycle timestamps.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithFileSystem overrides the file system used for backing files.
// Intended for tests that inject failures.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// createConfig carries per-create settings.
type createConfig struct {
	id            string
	autoTimestamp bool
}

// CreateOption configures a single Create call.
type CreateOption func(*createConfig)

// WithID sets a caller-supplied document id instead of a generated one.
func WithID(id string) CreateOption {
	return func(c *createConfig) {
		c.id = id
	}
}

// WithoutTimestamps suppresses the automatic _created_at/_updated_at stamps
// on the new document.
func WithoutTimestamps() CreateOption {
	return func(c *createConfig) {
		c.autoTimestamp = false
	}
}

// writeConfig carries per-write settings.
type writeConfig struct {
	autoTimestamp bool
}

// WriteOption configures a single update-style call.
type WriteOption func(*writeConfig)

// WithoutTimestamp suppresses the automatic _updated_at stamp on the write.
func WithoutTimestamp() WriteOption {
	return func(c *writeConfig) {
		c.autoTimestamp = false
	}
}
