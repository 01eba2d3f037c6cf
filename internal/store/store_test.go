package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	got, err := s.Get("default")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Put("default", &Session{
		Buffer:     "12 + 3",
		Mode:       "EDITING",
		ResultText: "",
	}))

	got, err = s.Get("default")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "12 + 3", got.Buffer)
	assert.Equal(t, "EDITING", got.Mode)
	assert.Empty(t, got.ResultText)
	assert.False(t, got.UpdatedAt.IsZero())

	// Overwrite, not append
	require.NoError(t, s.Put("default", &Session{
		Buffer:     "15",
		Mode:       "SHOWING_RESULT",
		ResultText: "= 15",
	}))
	got, err = s.Get("default")
	require.NoError(t, err)
	assert.Equal(t, "15", got.Buffer)
	assert.Equal(t, "SHOWING_RESULT", got.Mode)
	assert.Equal(t, "= 15", got.ResultText)

	require.NoError(t, s.Delete("default"))
	got, err = s.Get("default")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	exerciseStore(t, s)
}

func TestMemoryStoreCopiesSession(t *testing.T) {
	s := NewMemory()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	sess := &Session{Buffer: "1"}
	require.NoError(t, s.Put("a", sess))
	sess.Buffer = "2"

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", got.Buffer)
	assert.Equal(t, fixed, got.UpdatedAt)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "calc.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)

	version, err := s.metadata("schema_version")
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("work", &Session{
		Buffer:     "0.1 + 0.2",
		Mode:       "SHOWING_ERROR",
		ResultText: "Error",
	}))
	require.NoError(t, s.Close())

	s2, err := NewSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get("work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0.1 + 0.2", got.Buffer)
	assert.Equal(t, "SHOWING_ERROR", got.Mode)
	assert.Equal(t, "Error", got.ResultText)
}

func TestSQLiteRejectsUnknownSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.setMetadata("schema_version", "99"))
	require.NoError(t, s.Close())

	_, err = NewSQLite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}
