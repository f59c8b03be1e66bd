// Package common defines shared sentinel errors used across the videopick
// core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Selector errors.
	ErrNoVideosFound = errors.New("no videos found")
	ErrScanTimeout   = errors.New("scan timeout")

	// History store errors.
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDuplicatePath = errors.New("duplicate path")
	ErrRenameFailed  = errors.New("rename failed")

	// Picker errors.
	ErrNoDirectory = errors.New("no directory selected")
)
