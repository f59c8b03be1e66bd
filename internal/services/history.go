package services

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/videopick/videopick/internal/common"
	"github.com/videopick/videopick/internal/dbx"
	"github.com/videopick/videopick/internal/filex"
	"github.com/videopick/videopick/internal/logging"
	"github.com/videopick/videopick/internal/models"
	"github.com/videopick/videopick/internal/repositories/videos"
)

// HistoryService maintains the video history: recording selections and the
// edit operations exposed by the display layer. Entries move between Active
// and SoftDeleted only; physical deletion is never performed here.
type HistoryService interface {
	// RecordSelection upserts an entry for path: it creates a new active
	// entry when none exists, or bumps last_opened_at on the existing one.
	// Rating and name are never touched on update.
	RecordSelection(ctx context.Context, path string) (*models.Video, error)

	// Get returns an entry by id in any state, or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Video, error)

	// ListActive returns the active entries matching f.
	ListActive(ctx context.Context, f videos.ListFilter) ([]models.Video, error)

	// ActiveEntries returns a lazy, restartable sequence over the active
	// entries matching f; each range re-runs the underlying query.
	ActiveEntries(ctx context.Context, f videos.ListFilter) iter.Seq2[models.Video, error]

	// UpdateRating sets (or clears, when nil) the rating of an active entry.
	UpdateRating(ctx context.Context, id string, rating *float64) error

	// Rename renames the underlying file and updates path and name. The new
	// path keeps the old extension. A filesystem failure leaves the store
	// unchanged and yields common.ErrRenameFailed.
	Rename(ctx context.Context, id, newName string) (*models.Video, error)

	// SoftDelete hides an active entry, keeping it for undo.
	SoftDelete(ctx context.Context, id string) error

	// UndoDelete restores a soft-deleted entry. It fails with
	// common.ErrConflict when an active entry now holds the same path.
	UndoDelete(ctx context.Context, id string) error

	// AddManual inserts a new active entry without a prior selection event.
	// An empty name defaults to the path's base name.
	AddManual(ctx context.Context, path, name string, rating *float64) (*models.Video, error)

	// LastOpened returns the most recently opened active entry, or
	// (nil, nil) for an empty history.
	LastOpened(ctx context.Context) (*models.Video, error)
}

type historyService struct {
	db     *sql.DB
	logger logging.Logger

	// Test seams.
	now    func() time.Time
	rename func(oldpath, newpath string) error
}

// NewHistoryService returns a HistoryService backed by db.
func NewHistoryService(db *sql.DB, logger logging.Logger) HistoryService {
	return &historyService{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		rename: filex.Rename,
	}
}

func (s *historyService) RecordSelection(ctx context.Context, path string) (*models.Video, error) {
	if err := validation.Validate(path, validation.Required); err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}

	var out *models.Video
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := videos.NewSQLiteRepository(tx)

		existing, err := repo.GetActiveByPath(ctx, path)
		if err != nil {
			return err
		}

		now := s.now()
		if existing != nil {
			if err := repo.TouchOpened(ctx, existing.ID, now); err != nil {
				return err
			}
			existing.LastOpenedAt = now
			out = existing
			return nil
		}

		v := &models.Video{
			ID:           uuid.NewString(),
			Path:         path,
			Name:         filepath.Base(path),
			CreatedAt:    now,
			LastOpenedAt: now,
		}
		if err := v.Validate(); err != nil {
			return err
		}
		if err := repo.Insert(ctx, v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record selection: %w", err)
	}
	return out, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*models.Video, error) {
	return videos.NewSQLiteRepository(s.db).GetByID(ctx, id)
}

func (s *historyService) ListActive(ctx context.Context, f videos.ListFilter) ([]models.Video, error) {
	return videos.NewSQLiteRepository(s.db).List(ctx, f)
}

func (s *historyService) ActiveEntries(ctx context.Context, f videos.ListFilter) iter.Seq2[models.Video, error] {
	return videos.NewSQLiteRepository(s.db).All(ctx, f)
}

func (s *historyService) UpdateRating(ctx context.Context, id string, rating *float64) error {
	if err := models.ValidateRating(rating); err != nil {
		return fmt.Errorf("rating: %w", err)
	}
	return videos.NewSQLiteRepository(s.db).UpdateRating(ctx, id, rating)
}

func (s *historyService) Rename(ctx context.Context, id, newName string) (*models.Video, error) {
	if err := validation.Validate(newName, validation.Required); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	var out *models.Video
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := videos.NewSQLiteRepository(tx)

		v, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if v.Deleted {
			return common.ErrNotFound
		}

		// The new name is a base name; the old extension carries over.
		ext := filepath.Ext(v.Path)
		newBase := newName + ext
		newPath := filepath.Join(filepath.Dir(v.Path), newBase)

		if newPath == v.Path {
			out = v
			return nil
		}

		dup, err := repo.GetActiveByPath(ctx, newPath)
		if err != nil {
			return err
		}
		if dup != nil {
			return common.ErrDuplicatePath
		}

		if err := repo.UpdatePathName(ctx, v.ID, newPath, newBase); err != nil {
			return err
		}

		// The filesystem rename runs inside the transaction: when it fails
		// the row update rolls back and the store stays unchanged.
		if err := s.rename(v.Path, newPath); err != nil {
			s.logger.Warn(ctx, "file rename failed",
				"from", v.Path, "to", newPath, "error", err)
			return fmt.Errorf("%w: %v", common.ErrRenameFailed, err)
		}

		v.Path = newPath
		v.Name = newBase
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *historyService) SoftDelete(ctx context.Context, id string) error {
	return videos.NewSQLiteRepository(s.db).SetDeleted(ctx, id, true)
}

func (s *historyService) UndoDelete(ctx context.Context, id string) error {
	return videos.NewSQLiteRepository(s.db).SetDeleted(ctx, id, false)
}

func (s *historyService) AddManual(ctx context.Context, path, name string, rating *float64) (*models.Video, error) {
	if name == "" {
		name = filepath.Base(path)
	}

	now := s.now()
	v := &models.Video{
		ID:           uuid.NewString(),
		Path:         path,
		Name:         name,
		Rating:       rating,
		CreatedAt:    now,
		LastOpenedAt: now,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if err := videos.NewSQLiteRepository(s.db).Insert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *historyService) LastOpened(ctx context.Context) (*models.Video, error) {
	return videos.NewSQLiteRepository(s.db).LastOpened(ctx)
}
