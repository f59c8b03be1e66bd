package cli

import (
	"context"
	"fmt"
)

func (a *App) Pick(ctx context.Context) error {
	res, err := a.picker.Pick(ctx)
	if err != nil {
		reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Opened %s (from %s pool)", res.Video.Name, res.Pool))
	return nil
}

func (a *App) Recent(ctx context.Context) error {
	v, err := a.history.LastOpened(ctx)
	if err != nil {
		reportError(err)
		return err
	}
	if v == nil {
		printlnFn("Most Recent File: None")
		return nil
	}
	printlnFn(fmt.Sprintf("Most Recent File: %s (opened %s)", v.Name,
		v.LastOpenedAt.Format("2006-01-02 15:04:05")))
	return nil
}

func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: open <id>")
		return nil
	}
	v, err := a.picker.OpenEntry(ctx, args[0])
	if err != nil {
		reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Opened %s", v.Name))
	return nil
}
