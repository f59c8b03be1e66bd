package cli

import (
	"errors"

	"github.com/videopick/videopick/internal/common"
)

// reportError prints a user-facing message for err. Every command recovers
// here; no error is fatal to the running shell.
func reportError(err error) {
	switch {
	case errors.Is(err, common.ErrNoDirectory):
		printlnFn("Please select a directory first: dir <path>")
	case errors.Is(err, common.ErrNoVideosFound):
		printlnFn("No videos found in the selected directory!")
	case errors.Is(err, common.ErrScanTimeout):
		printlnFn("Directory scan timed out.")
	case errors.Is(err, common.ErrNotFound):
		printlnFn("No such entry.")
	case errors.Is(err, common.ErrConflict):
		printlnFn("Cannot restore: another active entry holds the same path.")
	case errors.Is(err, common.ErrDuplicatePath):
		printlnFn("An active entry with that path already exists.")
	case errors.Is(err, common.ErrRenameFailed):
		printlnFn("Error renaming file:", err.Error())
	default:
		printlnFn("Error:", err.Error())
	}
}
