package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lst/internal/watch"
)

func TestWatcherBatchesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	require.NoError(t, os.WriteFile(path, []byte("class A {}"), 0o644))

	w, err := watch.New(50 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	require.NoError(t, w.Add(dir))
	changes := w.Start()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("class A { int x; }"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case batch := <-changes:
		assert.Equal(t, []string{filepath.Clean(path)}, batch)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a batch of changes")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "A.java")
	other := filepath.Join(dir, "notes.txt")
	sibling := filepath.Join(dir, "B.java")
	for _, p := range []string{watched, other, sibling} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	w, err := watch.New(20 * time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	require.NoError(t, w.Add(watched))
	changes := w.Start()

	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(sibling, []byte("y"), 0o644))

	select {
	case batch := <-changes:
		t.Fatalf("unexpected batch %v", batch)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestAddMissingPath(t *testing.T) {
	w, err := watch.New(0)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "missing")))
}
