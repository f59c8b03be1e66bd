package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/videopick/videopick/internal/common"
	"github.com/videopick/videopick/internal/dbx"
	"github.com/videopick/videopick/internal/models"
)

const videoColumns = `id, path, name, rating, deleted, created_at, last_opened_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, v *models.Video) error {
	query := `INSERT INTO videos (` + videoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Path, v.Name, ratingArg(v.Rating), boolToInt(v.Deleted),
		v.CreatedAt.Unix(), v.LastOpenedAt.Unix())
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrDuplicatePath
		}
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`
	v, err := scanVideo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video %s: %w", id, err)
	}
	return v, nil
}

func (r *SQLiteRepository) GetActiveByPath(ctx context.Context, path string) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE path = ? AND deleted = 0`
	v, err := scanVideo(r.db.QueryRowContext(ctx, query, path))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video by path: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) TouchOpened(ctx context.Context, id string, openedAt time.Time) error {
	query := `UPDATE videos SET last_opened_at = ? WHERE id = ? AND deleted = 0`
	return r.execOnActive(ctx, "touch", query, openedAt.Unix(), id)
}

func (r *SQLiteRepository) UpdateRating(ctx context.Context, id string, rating *float64) error {
	query := `UPDATE videos SET rating = ? WHERE id = ? AND deleted = 0`
	return r.execOnActive(ctx, "rate", query, ratingArg(rating), id)
}

func (r *SQLiteRepository) UpdatePathName(ctx context.Context, id, path, name string) error {
	query := `UPDATE videos SET path = ?, name = ? WHERE id = ? AND deleted = 0`
	return r.execOnActive(ctx, "rename", query, path, name, id)
}

func (r *SQLiteRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	query := `UPDATE videos SET deleted = ? WHERE id = ? AND deleted = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(deleted), id, boolToInt(!deleted))
	if err != nil {
		// Restoring into a path now held by an active entry trips the
		// partial unique index.
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("failed to update deleted flag: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, f ListFilter) ([]models.Video, error) {
	query, args := listQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select videos: %w", err)
	}
	defer rows.Close()

	var result []models.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) All(ctx context.Context, f ListFilter) iter.Seq2[models.Video, error] {
	return func(yield func(models.Video, error) bool) {
		query, args := listQuery(f)
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(models.Video{}, fmt.Errorf("failed to select videos: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			v, err := scanVideo(rows)
			if err != nil {
				yield(models.Video{}, err)
				return
			}
			if !yield(*v, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.Video{}, err)
		}
	}
}

func (r *SQLiteRepository) LastOpened(ctx context.Context) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE deleted = 0
	          ORDER BY last_opened_at DESC, id ASC LIMIT 1`
	v, err := scanVideo(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last opened video: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) execOnActive(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s video: %w", op, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}

func listQuery(f ListFilter) (string, []any) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE deleted = 0`
	var args []any
	if f.Search != "" {
		query += ` AND instr(lower(name), lower(?)) > 0`
		args = append(args, f.Search)
	}

	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	switch f.Sort {
	case SortByRating:
		query += ` ORDER BY rating ` + dir + `, id ASC`
	default:
		query += ` ORDER BY name COLLATE NOCASE ` + dir + `, id ASC`
	}
	return query, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*models.Video, error) {
	var (
		v         models.Video
		rating    sql.NullFloat64
		deleted   int
		createdAt int64
		openedAt  int64
	)
	if err := row.Scan(&v.ID, &v.Path, &v.Name, &rating, &deleted, &createdAt, &openedAt); err != nil {
		return nil, err
	}
	if rating.Valid {
		v.Rating = &rating.Float64
	}
	v.Deleted = deleted != 0
	v.CreatedAt = time.Unix(createdAt, 0).UTC()
	v.LastOpenedAt = time.Unix(openedAt, 0).UTC()
	return &v, nil
}

func ratingArg(r *float64) any {
	if r == nil {
		return nil
	}
	return *r
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
