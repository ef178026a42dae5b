package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSON_SortsKeys(t *testing.T) {
	doc := map[string]any{
		"paths":   map[string]any{},
		"openapi": "3.0.0",
		"info":    map[string]any{"version": "1", "title": "T"},
	}

	raw, err := CanonicalJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"info":{"title":"T","version":"1"},"openapi":"3.0.0","paths":{}}`, string(raw))
}

func TestCanonicalJSON_Deterministic(t *testing.T) {
	a := map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "T"},
		"paths":   map[string]any{"/a": map[string]any{}, "/b": map[string]any{}},
	}
	b := map[string]any{
		"paths":   map[string]any{"/b": map[string]any{}, "/a": map[string]any{}},
		"info":    map[string]any{"title": "T"},
		"openapi": "3.0.0",
	}

	rawA, err := CanonicalJSON(a)
	require.NoError(t, err)
	rawB, err := CanonicalJSON(b)
	require.NoError(t, err)

	assert.Equal(t, Digest(rawA), Digest(rawB))
}

func TestDigest_SensitiveToChanges(t *testing.T) {
	a, err := CanonicalJSON(map[string]any{"openapi": "3.0.0"})
	require.NoError(t, err)
	b, err := CanonicalJSON(map[string]any{"openapi": "3.1.0"})
	require.NoError(t, err)

	assert.NotEqual(t, Digest(a), Digest(b))
	assert.Len(t, Digest(a), 64)
}

func TestCanonicalJSON_UnserializableValue(t *testing.T) {
	_, err := CanonicalJSON(map[string]any{"bad": make(chan int)})

	var serErr *SerializationError
	require.ErrorAs(t, err, &serErr)
	assert.Error(t, serErr.Unwrap())
}

func TestChanged_MissingMarker(t *testing.T) {
	marker := filepath.Join(t.TempDir(), ".schema.hash")
	assert.True(t, changed(marker, "abc"))
}

func TestChanged_MatchingDigest(t *testing.T) {
	marker := filepath.Join(t.TempDir(), ".schema.hash")
	require.NoError(t, os.WriteFile(marker, []byte("abc"), 0o644))
	assert.False(t, changed(marker, "abc"))
}

func TestChanged_MatchingDigestWithWhitespace(t *testing.T) {
	marker := filepath.Join(t.TempDir(), ".schema.hash")
	require.NoError(t, os.WriteFile(marker, []byte("\n  abc \n"), 0o644))
	assert.False(t, changed(marker, "abc"))
}

func TestChanged_DifferentDigest(t *testing.T) {
	marker := filepath.Join(t.TempDir(), ".schema.hash")
	require.NoError(t, os.WriteFile(marker, []byte("abc"), 0o644))
	assert.True(t, changed(marker, "def"))
}
