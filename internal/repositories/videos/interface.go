package videos

import (
	"context"
	"iter"
	"time"

	"github.com/videopick/videopick/internal/models"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByRating SortKey = "rating"
)

// ListFilter narrows and orders an active-entry listing.
type ListFilter struct {
	// Search is a case-insensitive substring match on Name. Empty matches
	// everything.
	Search string

	// Sort is the ordering key; the zero value sorts by name.
	Sort SortKey

	// Desc reverses the order. Ties are always broken by id ascending.
	Desc bool
}

// Repository describes persistence operations for video history entries.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Insert adds a new entry. Fails with common.ErrDuplicatePath if an
	// active entry already holds the same path.
	Insert(ctx context.Context, v *models.Video) error

	// GetByID returns the entry regardless of its deleted state, or
	// common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Video, error)

	// GetActiveByPath returns the active entry with the given path, or
	// (nil, nil) when there is none.
	GetActiveByPath(ctx context.Context, path string) (*models.Video, error)

	// TouchOpened updates last_opened_at on an active entry.
	TouchOpened(ctx context.Context, id string, openedAt time.Time) error

	// UpdateRating sets (or clears, when nil) the rating of an active entry.
	UpdateRating(ctx context.Context, id string, rating *float64) error

	// UpdatePathName rewrites path and name of an active entry.
	UpdatePathName(ctx context.Context, id, path, name string) error

	// SetDeleted flips the soft-delete flag. Restoring an entry whose path
	// is now held by an active one fails with common.ErrConflict.
	SetDeleted(ctx context.Context, id string, deleted bool) error

	// List returns all active entries matching f.
	List(ctx context.Context, f ListFilter) ([]models.Video, error)

	// All returns a lazy sequence over the active entries matching f. The
	// sequence re-runs the query on every range, so it is restartable and
	// always reflects current data.
	All(ctx context.Context, f ListFilter) iter.Seq2[models.Video, error]

	// LastOpened returns the most recently opened active entry, or
	// (nil, nil) when the history is empty.
	LastOpened(ctx context.Context) (*models.Video, error)
}
