package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videopick/videopick/internal/common"
	"github.com/videopick/videopick/internal/logging"
	"github.com/videopick/videopick/internal/repositories/videos"
	"github.com/videopick/videopick/internal/selector"
	"github.com/videopick/videopick/internal/storage"

	_ "modernc.org/sqlite"
)

type pickFixture struct {
	svc     *pickService
	history HistoryService
	opened  []string
}

func setupPick(t *testing.T) *pickFixture {
	t.Helper()
	ctx := context.Background()

	db, repos, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logging.Discard()
	hs := NewHistoryService(db, logger)
	sel := selector.New([]string{".mp4", ".mkv", ".avi", ".mov"}, time.Minute, logger)

	f := &pickFixture{history: hs}
	f.svc = NewPickService(sel, hs, repos.Settings, logger).(*pickService)
	f.svc.open = func(path string) error {
		f.opened = append(f.opened, path)
		return nil
	}
	return f
}

func TestPick_NoDirectorySelected(t *testing.T) {
	f := setupPick(t)
	_, err := f.svc.Pick(context.Background())
	require.ErrorIs(t, err, common.ErrNoDirectory)
}

func TestSetDirectory(t *testing.T) {
	f := setupPick(t)
	ctx := context.Background()

	dir := t.TempDir()
	require.NoError(t, f.svc.SetDirectory(ctx, dir))

	got, err := f.svc.Directory(ctx)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	// nonexistent path rejected
	require.Error(t, f.svc.SetDirectory(ctx, filepath.Join(dir, "nope")))

	// plain file rejected
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	require.Error(t, f.svc.SetDirectory(ctx, file))
}

func TestBias_DefaultAndRoundTrip(t *testing.T) {
	f := setupPick(t)
	ctx := context.Background()

	bias, err := f.svc.Bias(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultBias, bias)

	require.NoError(t, f.svc.SetBias(ctx, 80))
	bias, err = f.svc.Bias(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80, bias)

	require.Error(t, f.svc.SetBias(ctx, 101))
	require.Error(t, f.svc.SetBias(ctx, -1))
}

// End to end: a.mp4 at top level, sub/b.mp4 nested, bias 0 always picks the
// top-level file and history collapses repeats into one entry.
func TestPick_BiasZeroScenario(t *testing.T) {
	f := setupPick(t)
	ctx := context.Background()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mp4"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.mp4"), []byte("x"), 0o644))

	require.NoError(t, f.svc.SetDirectory(ctx, root))
	require.NoError(t, f.svc.SetBias(ctx, 0))

	for i := 0; i < 10; i++ {
		res, err := f.svc.Pick(ctx)
		require.NoError(t, err)
		assert.Equal(t, selector.PoolDirect, res.Pool)
		assert.Equal(t, "a.mp4", res.Video.Name)
	}

	// every pick opened the file
	assert.Len(t, f.opened, 10)
	assert.Equal(t, filepath.Join(root, "a.mp4"), f.opened[0])

	// selections collapse into one history entry with no rating
	list, err := f.history.ListActive(ctx, videos.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a.mp4", list[0].Name)
	assert.Nil(t, list[0].Rating)
}

func TestPick_EmptyDirectory(t *testing.T) {
	f := setupPick(t)
	ctx := context.Background()

	require.NoError(t, f.svc.SetDirectory(ctx, t.TempDir()))
	_, err := f.svc.Pick(ctx)
	require.ErrorIs(t, err, common.ErrNoVideosFound)
}

func TestPick_OpenFailureIsNotRecorded(t *testing.T) {
	f := setupPick(t)
	ctx := context.Background()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mp4"), []byte("x"), 0o644))
	require.NoError(t, f.svc.SetDirectory(ctx, root))

	f.svc.open = func(path string) error { return os.ErrPermission }

	_, err := f.svc.Pick(ctx)
	require.Error(t, err)

	list, err := f.history.ListActive(ctx, videos.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpenEntry(t *testing.T) {
	f := setupPick(t)
	ctx := context.Background()

	v, err := f.history.RecordSelection(ctx, "/videos/a.mp4")
	require.NoError(t, err)

	got, err := f.svc.OpenEntry(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, []string{"/videos/a.mp4"}, f.opened)

	require.NoError(t, f.history.SoftDelete(ctx, v.ID))
	_, err = f.svc.OpenEntry(ctx, v.ID)
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = f.svc.OpenEntry(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}
