package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_reports_write(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0o644))

	select {
	case _, ok := <-w.Changes():
		require.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for change")
	}

	require.NoError(t, w.Close())
}

func TestWatcher_ignores_sibling_files(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change for sibling file")
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	require.False(t, ok, "changes channel closed after Close")
}
