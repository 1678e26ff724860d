package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"  toml:"name"`
	Count int    `json:"count" toml:"count"`
}

func TestNewLoaderFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("decodes JSON", func(t *testing.T) {
		t.Parallel()
		ld, err := NewLoaderFromBytes([]byte(`{"name":"acme","count":3}`), func(b []byte) Loader {
			return NewJSONLoader(b)
		})
		require.NoError(t, err)

		var d doc
		require.NoError(t, ld.Decode(&d))
		assert.Equal(t, doc{Name: "acme", Count: 3}, d)
	})

	t.Run("rejects empty source", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoaderFromBytes(nil, func(b []byte) Loader {
			return NewJSONLoader(b)
		})
		assert.ErrorIs(t, err, ErrNoSourceData)
	})
}

func TestNewLoaderFromReader(t *testing.T) {
	t.Parallel()

	ld, err := NewLoaderFromReader(strings.NewReader(`name = "acme"`+"\ncount = 7\n"),
		func(b []byte) Loader { return NewTOMLLoader(b) })
	require.NoError(t, err)

	var d doc
	require.NoError(t, ld.Decode(&d))
	assert.Equal(t, doc{Name: "acme", Count: 7}, d)
}

func TestNewLoaderFromFilePath(t *testing.T) {
	t.Parallel()

	t.Run("json file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "plan.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"acme"}`), 0o644))

		ld, err := NewLoaderFromFilePath(path)
		require.NoError(t, err)

		var d doc
		require.NoError(t, ld.Decode(&d))
		assert.Equal(t, "acme", d.Name)
	})

	t.Run("toml file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "plan.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = \"acme\"\n"), 0o644))

		ld, err := NewLoaderFromFilePath(path)
		require.NoError(t, err)

		var d doc
		require.NoError(t, ld.Decode(&d))
		assert.Equal(t, "acme", d.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoaderFromFilePath(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "plan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: acme\n"), 0o644))

		_, err := NewLoaderFromFilePath(path)
		assert.ErrorIs(t, err, ErrUnsupportedExtension)
	})
}

func TestJSONLoaderMalformed(t *testing.T) {
	t.Parallel()

	var d doc
	assert.ErrorIs(t, NewJSONLoader([]byte(`{"name":`)).Decode(&d), ErrParseJSON)
}

func TestTOMLLoaderMalformed(t *testing.T) {
	t.Parallel()

	var d doc
	assert.ErrorIs(t, NewTOMLLoader([]byte(`name = `)).Decode(&d), ErrParseTOML)
}
