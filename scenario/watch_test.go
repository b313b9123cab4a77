package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsConfigChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "physics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: {x: 0, y: -9.81}\n"), 0o644))

	select {
	case got := <-w.Events:
		require.Equal(t, path, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatchedFileExtensions(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"physics.yaml", true},
		{"physics.YML", true},
		{"scene.tengo", true},
		{"readme.md", false},
		{"binary", false},
	}
	for _, c := range cases {
		if got := watchedFile(c.name); got != c.want {
			t.Fatalf("watchedFile(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
