package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Rate sets or clears an entry's rating. "rate <id> -" clears it.
func (a *App) Rate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: rate <id> <rating|->")
		return nil
	}

	var rating *float64
	if args[1] != "-" {
		r, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			printlnFn("Rating must be a number.")
			return nil
		}
		rating = &r
	}

	if err := a.history.UpdateRating(ctx, args[0], rating); err != nil {
		reportError(err)
		return err
	}
	printlnFn("Details updated successfully!")
	return nil
}

// Rename changes an entry's display name and renames the file on disk. The
// new name is a base name; the file extension carries over.
func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: rename <id> <new name>")
		return nil
	}

	newName := strings.Join(args[1:], " ")
	v, err := a.history.Rename(ctx, args[0], newName)
	if err != nil {
		reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Renamed to %s", v.Name))
	return nil
}
