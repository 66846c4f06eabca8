package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_RebuildsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: one\n"), 0o600))

	var rebuilds atomic.Int32
	w, err := New(path, 20*time.Millisecond, func(context.Context) error {
		rebuilds.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// The watch is registered asynchronously; keep touching the file until observed.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("title: two\n"), 0o600)
		return rebuilds.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: one\n"), 0o600))

	var rebuilds atomic.Int32
	w, err := New(path, 10*time.Millisecond, func(context.Context) error {
		rebuilds.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	require.Zero(t, rebuilds.Load())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "post.yaml"), time.Millisecond, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.Error(t, w.Run(context.Background()))
}
