package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Add inserts a video into the history without a selection event. With no
// argument it prompts for the path interactively.
func (a *App) Add(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		var err error
		path, err = GetSimpleText(a.reader, "Enter video file path", os.Stdout)
		if err != nil {
			return err
		}
	}
	if path == "" {
		printlnFn("Usage: add <path>")
		return nil
	}

	v, err := a.history.AddManual(ctx, path, "", nil)
	if err != nil {
		reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("%q was added to the history.", v.Name))
	return nil
}
