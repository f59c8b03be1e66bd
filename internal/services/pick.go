// Package services implements the application operations behind the CLI:
// history bookkeeping and the random-pick flow.
package services

import (
	"context"
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/videopick/videopick/internal/common"
	"github.com/videopick/videopick/internal/logging"
	"github.com/videopick/videopick/internal/models"
	"github.com/videopick/videopick/internal/osx"
	"github.com/videopick/videopick/internal/repositories/settings"
	"github.com/videopick/videopick/internal/selector"
)

// DefaultBias is the slider default: an even split between pools.
const DefaultBias = 50

// PickResult is the outcome of one pick: the recorded history entry and the
// pool the file was drawn from.
type PickResult struct {
	Video *models.Video
	Pool  selector.Pool
}

// PickService runs the random selection flow and manages the two persisted
// settings that drive it (directory and bias).
type PickService interface {
	// Pick selects a random video under the stored directory and bias,
	// opens it with the OS default application, and records the selection.
	Pick(ctx context.Context) (*PickResult, error)

	// OpenEntry re-opens an existing active history entry without
	// recording a new selection.
	OpenEntry(ctx context.Context, id string) (*models.Video, error)

	// Directory returns the stored root directory ("" when unset).
	Directory(ctx context.Context) (string, error)

	// SetDirectory validates that dir is an existing directory and stores it.
	SetDirectory(ctx context.Context, dir string) error

	// Bias returns the stored bias, or DefaultBias when unset.
	Bias(ctx context.Context) (int, error)

	// SetBias validates bias (0–100) and stores it.
	SetBias(ctx context.Context, bias int) error
}

type pickService struct {
	sel      *selector.Selector
	history  HistoryService
	settings settings.Repository
	logger   logging.Logger

	// Test seam; replaces osx.Open.
	open func(path string) error
}

// NewPickService wires the selector, the history store and the settings
// repository into the pick flow.
func NewPickService(sel *selector.Selector, history HistoryService, settings settings.Repository, logger logging.Logger) PickService {
	return &pickService{
		sel:      sel,
		history:  history,
		settings: settings,
		logger:   logger,
		open:     osx.Open,
	}
}

func (s *pickService) Pick(ctx context.Context) (*PickResult, error) {
	dir, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, common.ErrNoDirectory
	}

	bias, err := s.Bias(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.sel.Pick(ctx, dir, bias)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "opening video", "path", res.Path, "pool", res.Pool)
	if err := s.open(res.Path); err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}

	v, err := s.history.RecordSelection(ctx, res.Path)
	if err != nil {
		return nil, err
	}
	return &PickResult{Video: v, Pool: res.Pool}, nil
}

func (s *pickService) OpenEntry(ctx context.Context, id string) (*models.Video, error) {
	v, err := s.history.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Deleted {
		return nil, common.ErrNotFound
	}
	if err := s.open(v.Path); err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	return v, nil
}

func (s *pickService) Directory(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, models.SettingLastDirectory)
}

func (s *pickService) SetDirectory(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory %s: not a directory", dir)
	}
	return s.settings.Set(ctx, models.SettingLastDirectory, dir)
}

func (s *pickService) Bias(ctx context.Context) (int, error) {
	raw, err := s.settings.Get(ctx, models.SettingBiasValue)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return DefaultBias, nil
	}
	bias, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("stored bias %q: %w", raw, err)
	}
	return bias, nil
}

func (s *pickService) SetBias(ctx context.Context, bias int) error {
	if err := validation.Validate(bias, validation.Min(0), validation.Max(100)); err != nil {
		return fmt.Errorf("bias: %w", err)
	}
	return s.settings.Set(ctx, models.SettingBiasValue, strconv.Itoa(bias))
}
