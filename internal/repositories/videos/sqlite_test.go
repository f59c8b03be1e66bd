package videos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videopick/videopick/internal/common"
	"github.com/videopick/videopick/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE videos (
  id TEXT PRIMARY KEY,
  path TEXT NOT NULL,
  name TEXT NOT NULL,
  rating REAL,
  deleted INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL,
  last_opened_at INTEGER NOT NULL
);
CREATE UNIQUE INDEX videos_active_path ON videos (path) WHERE deleted = 0;
`)
	require.NoError(t, err)

	return db
}

func testVideo(id, path string) *models.Video {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &models.Video{
		ID:           id,
		Path:         path,
		Name:         "clip.mp4",
		CreatedAt:    now,
		LastOpenedAt: now,
	}
}

func TestInsertAndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	v := testVideo("id1", "/videos/clip.mp4")
	require.NoError(t, r.Insert(ctx, v))

	got, err := r.GetByID(ctx, "id1")
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Nil(t, got.Rating)

	_, err = r.GetByID(ctx, "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsert_DuplicateActivePath(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/x.mp4")))
	err := r.Insert(ctx, testVideo("b", "/videos/x.mp4"))
	require.ErrorIs(t, err, common.ErrDuplicatePath)

	// a deleted row does not block the path
	require.NoError(t, r.SetDeleted(ctx, "a", true))
	require.NoError(t, r.Insert(ctx, testVideo("c", "/videos/x.mp4")))
}

func TestGetActiveByPath(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	got, err := r.GetActiveByPath(ctx, "/videos/x.mp4")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/x.mp4")))

	got, err = r.GetActiveByPath(ctx, "/videos/x.mp4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)

	// deleted entries are invisible to path lookup
	require.NoError(t, r.SetDeleted(ctx, "a", true))
	got, err = r.GetActiveByPath(ctx, "/videos/x.mp4")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTouchOpened(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/x.mp4")))

	later := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, r.TouchOpened(ctx, "a", later))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, later, got.LastOpenedAt)

	require.ErrorIs(t, r.TouchOpened(ctx, "missing", later), common.ErrNotFound)

	require.NoError(t, r.SetDeleted(ctx, "a", true))
	require.ErrorIs(t, r.TouchOpened(ctx, "a", later), common.ErrNotFound)
}

func TestUpdateRating_SetAndClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/x.mp4")))

	rating := 7.5
	require.NoError(t, r.UpdateRating(ctx, "a", &rating))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 7.5, *got.Rating)

	require.NoError(t, r.UpdateRating(ctx, "a", nil))
	got, err = r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got.Rating)

	require.ErrorIs(t, r.UpdateRating(ctx, "missing", &rating), common.ErrNotFound)
}

func TestUpdatePathName(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/x.mp4")))
	require.NoError(t, r.UpdatePathName(ctx, "a", "/videos/y.mp4", "y.mp4"))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "/videos/y.mp4", got.Path)
	assert.Equal(t, "y.mp4", got.Name)
}

func TestSetDeleted_RoundTripAndConflict(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/x.mp4")))

	require.NoError(t, r.SetDeleted(ctx, "a", true))
	// already deleted
	require.ErrorIs(t, r.SetDeleted(ctx, "a", true), common.ErrNotFound)

	require.NoError(t, r.SetDeleted(ctx, "a", false))
	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.False(t, got.Deleted)

	// undo into an occupied path trips the partial unique index
	require.NoError(t, r.SetDeleted(ctx, "a", true))
	require.NoError(t, r.Insert(ctx, testVideo("b", "/videos/x.mp4")))
	require.ErrorIs(t, r.SetDeleted(ctx, "a", false), common.ErrConflict)

	require.ErrorIs(t, r.SetDeleted(ctx, "missing", true), common.ErrNotFound)
}

func seedListFixtures(t *testing.T, r *SQLiteRepository) {
	t.Helper()
	ctx := context.Background()

	mk := func(id, name string, rating *float64) {
		v := testVideo(id, "/videos/"+id+".mp4")
		v.Name = name
		v.Rating = rating
		require.NoError(t, r.Insert(ctx, v))
	}
	high := 9.0
	low := 2.0
	mk("1", "Alpha.mp4", &low)
	mk("2", "beta.mp4", &high)
	mk("3", "Gamma.mp4", nil)
	mk("4", "alpha copy.mp4", nil)

	// a deleted entry that must never appear
	v := testVideo("5", "/videos/5.mp4")
	v.Name = "alpha deleted.mp4"
	require.NoError(t, r.Insert(ctx, v))
	require.NoError(t, r.SetDeleted(ctx, "5", true))
}

func TestList_FilterAndSort(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	seedListFixtures(t, r)

	names := func(vs []models.Video) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.Name)
		}
		return out
	}

	// default: name ascending, case-insensitive
	got, err := r.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha copy.mp4", "Alpha.mp4", "beta.mp4", "Gamma.mp4"}, names(got))

	// descending
	got, err = r.List(ctx, ListFilter{Sort: SortByName, Desc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma.mp4", "beta.mp4", "Alpha.mp4", "alpha copy.mp4"}, names(got))

	// case-insensitive substring filter; deleted rows stay hidden
	got, err = r.List(ctx, ListFilter{Search: "ALPHA"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha copy.mp4", "Alpha.mp4"}, names(got))

	// rating ascending: NULLs first, then low to high
	got, err = r.List(ctx, ListFilter{Sort: SortByRating})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma.mp4", "alpha copy.mp4", "Alpha.mp4", "beta.mp4"}, names(got))
}

func TestList_TiesBrokenByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		v := testVideo(id, "/videos/"+id+".mp4")
		v.Name = "same.mp4"
		require.NoError(t, r.Insert(ctx, v))
	}

	got, err := r.List(ctx, ListFilter{})
	require.NoError(t, err)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestAll_LazyAndRestartable(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	seedListFixtures(t, r)

	seq := r.All(ctx, ListFilter{})

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}

	// ranging twice re-runs the query
	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count())

	// early break is safe
	n := 0
	for _, err := range seq {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	// the sequence observes later writes
	require.NoError(t, r.SetDeleted(ctx, "1", true))
	assert.Equal(t, 3, count())
}

func TestLastOpened(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	got, err := r.LastOpened(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, r.Insert(ctx, testVideo("a", "/videos/a.mp4")))
	b := testVideo("b", "/videos/b.mp4")
	b.LastOpenedAt = b.LastOpenedAt.Add(time.Hour)
	require.NoError(t, r.Insert(ctx, b))

	got, err = r.LastOpened(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	// deleted entries do not count
	require.NoError(t, r.SetDeleted(ctx, "b", true))
	got, err = r.LastOpened(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}
