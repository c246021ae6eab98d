package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Len(t, c.VideoItems(), 3)
	assert.Len(t, c.DocumentItems(), 2)

	v, ok := c.Video("video1")
	require.True(t, ok)
	assert.Len(t, v.Transcript, 3)
	assert.Equal(t, "/tutorials/personal-statement", v.URL)

	_, ok = c.Video("nope")
	assert.False(t, ok)
	assert.NoError(t, c.Validate())
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": "2.0.0",
		"videos": [{"id": "v1", "title": "Essays 101", "description": "Intro", "url": "/tutorials/essays",
			"transcript": [{"start": 0, "end": 10, "text": "hi"}]}],
		"documents": [{"id": "d1", "title": "FAFSA checklist", "description": "Forms", "url": "/documents/fafsa"}]
	}`), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", c.Version)
	assert.Equal(t, "Essays 101", c.VideoItems()[0].Title)
	assert.Equal(t, "/documents/fafsa", c.DocumentItems()[0].URL)
}

func TestLoadCatalog_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCatalog(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"videos": [`), 0o600))
	_, err = LoadCatalog(bad)
	assert.Error(t, err)

	dup := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`{"documents": [{"id": "d"}, {"id": "d"}]}`), 0o600))
	_, err = LoadCatalog(dup)
	assert.ErrorContains(t, err, "duplicated")
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default().Version, c.Version)
}

func TestSaveCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")
	c := Default()
	c.Documents = append(c.Documents, Entry{ID: "doc3", Title: "Campus visit checklist"})

	require.NoError(t, SaveCatalog(c, path))
	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Documents, 3)

	c.Documents = append(c.Documents, Entry{ID: "doc3"})
	assert.Error(t, SaveCatalog(c, path))
}
