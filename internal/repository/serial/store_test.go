package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

func TestCounterRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewFileStore(filepath.Join(t.TempDir(), "nested"))

	_, err := s.ReadCounter()
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, s.WriteCounter(42))
	n, err := s.ReadCounter()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	require.NoError(t, s.WriteCounter(43))
	n, err = s.ReadCounter()
	require.NoError(t, err)
	assert.Equal(t, int64(43), n)
}

func TestReadCounterCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, counterFile), []byte("abc"), 0o644))

	_, err := NewFileStore(dir).ReadCounter()
	assert.Error(t, err)
}

func TestAppendAuditSplitsByYear(t *testing.T) {
	t.Parallel()

	s := NewFileStore(t.TempDir())
	dec := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	jan := time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)

	require.NoError(t, s.AppendAudit([]model.SerialAudit{
		{At: dec, ModelCode: "M1", Serial: "4121001", User: "ana"},
		{At: jan, ModelCode: "M1", Serial: "511002", User: "ana"},
	}))
	require.NoError(t, s.AppendAudit([]model.SerialAudit{
		{At: jan, ModelCode: "M2", Serial: "512003", User: "rui"},
	}))

	lines, err := s.ReadAudit(2024)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-31T23:59:00;M1;4121001;usr=ana"}, lines)

	lines, err = s.ReadAudit(2025)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-01-01T00:01:00;M1;511002;usr=ana",
		"2025-01-01T00:01:00;M2;512003;usr=rui",
	}, lines)
}
