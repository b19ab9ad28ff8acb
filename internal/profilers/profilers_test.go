package profilers

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"
)

func TestHeapProfilePath(t *testing.T) {
	assert.Equal(t, "/tmp/heap-playout.pprof", HeapProfilePath("/tmp/heap.pprof", "playout"))
	assert.Equal(t, "heap-setup", HeapProfilePath("heap", "setup"))
}

func TestPhase(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		HTTPPort:   -1,
		CPUProfile: filepath.Join(dir, "cpu.pprof"),
		MemProfile: filepath.Join(dir, "heap.pprof"),
	}
	session, err := New(context.Background(), opts)
	require.NoError(t, err)

	var called bool
	err = session.Phase(context.Background(), "playout", func(ctx context.Context) {
		called = true
		phase, _ := pprof.Label(ctx, "phase")
		assert.Equal(t, "playout", phase)
		matches, _ := pprof.Label(ctx, "matches")
		assert.Equal(t, "0-9", matches)
	}, "matches", "0-9")
	require.NoError(t, err)
	assert.True(t, called)

	info, err := os.Stat(filepath.Join(dir, "heap-playout.pprof"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// Odd number of labels.
	err = session.Phase(context.Background(), "bad", func(ctx context.Context) { t.Error("should not run") }, "matches")
	require.Error(t, err)

	require.NoError(t, session.Close())
	info, err = os.Stat(opts.CPUProfile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestNoProfiles(t *testing.T) {
	session, err := New(context.Background(), Options{HTTPPort: -1})
	require.NoError(t, err)
	var called bool
	require.NoError(t, session.Phase(context.Background(), "playout", func(context.Context) { called = true }))
	assert.True(t, called)
	require.NoError(t, session.Close())
}
