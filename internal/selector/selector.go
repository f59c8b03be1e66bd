// Package selector picks a random video file from a directory tree, with a
// configurable bias between top-level files and files in subdirectories.
package selector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/videopick/videopick/internal/common"
	"github.com/videopick/videopick/internal/logging"
)

// Pool identifies which partition a file was drawn from.
type Pool string

const (
	// PoolDirect holds files located immediately inside the root.
	PoolDirect Pool = "direct"
	// PoolNested holds files located in any subdirectory, at any depth.
	PoolNested Pool = "nested"
)

// Result is one selection outcome: the chosen file and the pool it came
// from. The pool is reported for observability and testing.
type Result struct {
	Path string
	Pool Pool
}

// Selector scans a directory tree and draws one video file under the bias
// policy. It only reads the filesystem; it never opens or mutates files.
type Selector struct {
	exts    map[string]struct{}
	timeout time.Duration
	logger  logging.Logger

	// Test seams for deterministic draws.
	randFloat func() float64
	randIntN  func(n int) int
}

// New returns a Selector recognizing the given extensions (with or without
// the leading dot, case-insensitive). A non-positive scanTimeout disables
// the scan deadline.
func New(exts []string, scanTimeout time.Duration, logger logging.Logger) *Selector {
	m := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = struct{}{}
	}
	return &Selector{
		exts:      m,
		timeout:   scanTimeout,
		logger:    logger,
		randFloat: rand.Float64,
		randIntN:  rand.IntN,
	}
}

// Scan walks root and partitions matching files into the direct pool (files
// immediately inside root) and the nested pool (files at any depth below).
// Unreadable subdirectories are skipped with a warning; an unreadable root
// is an error. When the scan deadline expires the walk stops with
// common.ErrScanTimeout.
func (s *Selector) Scan(ctx context.Context, root string) (direct, nested []string, err error) {
	root = filepath.Clean(root)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if cerr := ctx.Err(); cerr != nil {
			if errors.Is(cerr, context.DeadlineExceeded) {
				return common.ErrScanTimeout
			}
			return cerr
		}

		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Warn(ctx, "skipping unreadable path", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if _, ok := s.exts[ext]; !ok {
			return nil
		}

		if filepath.Dir(path) == root {
			direct = append(direct, path)
		} else {
			nested = append(nested, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return direct, nested, nil
}

// Pick scans root and returns one video chosen under the bias policy: bias
// (0–100) is the percent chance the pick comes from the nested pool when
// both pools have files. An empty chosen pool falls back to the other one;
// two empty pools fail with common.ErrNoVideosFound. Within the chosen pool
// the draw is uniform.
func (s *Selector) Pick(ctx context.Context, root string, bias int) (*Result, error) {
	if err := validation.Validate(bias, validation.Min(0), validation.Max(100)); err != nil {
		return nil, fmt.Errorf("bias: %w", err)
	}

	direct, nested, err := s.Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "scan complete",
		"root", root, "direct", len(direct), "nested", len(nested))

	switch {
	case len(direct) == 0 && len(nested) == 0:
		return nil, common.ErrNoVideosFound
	case len(direct) == 0:
		return s.choose(nested, PoolNested), nil
	case len(nested) == 0:
		return s.choose(direct, PoolDirect), nil
	}

	if s.randFloat() < float64(bias)/100.0 {
		return s.choose(nested, PoolNested), nil
	}
	return s.choose(direct, PoolDirect), nil
}

func (s *Selector) choose(pool []string, from Pool) *Result {
	return &Result{Path: pool[s.randIntN(len(pool))], Pool: from}
}
