package mediastore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvais-p/koaladb/field"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "store"), 0o755))
	return New(root, nil)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPutCopiesFile(t *testing.T) {
	s := newTestStore(t)
	src := writeTemp(t, "avatar.png", "png-bytes")

	rel, err := s.Put(src)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, Prefix))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	data, err := os.ReadFile(s.AbsPath(rel))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// The source is untouched.
	_, err = os.Stat(src)
	require.NoError(t, err)
}

func TestPutGeneratesDistinctNames(t *testing.T) {
	s := newTestStore(t)
	src := writeTemp(t, "doc.pdf", "pdf")

	a, err := s.Put(src)
	require.NoError(t, err)
	b, err := s.Put(src)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPutMissingSource(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Put(filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutAll(t *testing.T) {
	s := newTestStore(t)
	a := writeTemp(t, "a.jpg", "a")
	b := writeTemp(t, "b.jpg", "b")

	rels, err := s.PutAll([]string{a, b})
	require.NoError(t, err)
	require.Len(t, rels, 2)
	for _, rel := range rels {
		_, err := os.Stat(s.AbsPath(rel))
		require.NoError(t, err)
	}
}

func TestRemoveIsBestEffort(t *testing.T) {
	s := newTestStore(t)
	src := writeTemp(t, "a.jpg", "a")

	rel, err := s.Put(src)
	require.NoError(t, err)

	s.Remove(rel)
	_, err = os.Stat(s.AbsPath(rel))
	assert.True(t, os.IsNotExist(err))

	// A second removal of the same reference must not panic or error.
	s.Remove(rel)

	// References outside the store prefix are ignored.
	s.Remove("../../etc/passwd")
}

func TestURL(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "/media/store/x.png", s.URL("store/x.png", ""))
	assert.Equal(t, "/files/store/x.png", s.URL("store/x.png", "/files"))
	assert.Equal(t, "/files/store/x.png", s.URL("store/x.png", "/files/"))
}

func TestReferences(t *testing.T) {
	doc := field.Fields{
		"avatar": field.String("store/a.png"),
		"name":   field.String("alex"),
		"gallery": field.Array([]field.Value{
			field.String("store/b.png"),
			field.String("not-a-ref"),
			field.Int(3),
		}),
		"age": field.Int(30),
	}

	refs := References(doc)
	assert.ElementsMatch(t, []string{"store/a.png", "store/b.png"}, refs)

	assert.Empty(t, References(field.Fields{"x": field.Int(1)}))
}
