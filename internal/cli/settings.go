package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Dir shows the stored video directory, or sets it when a path is given.
func (a *App) Dir(ctx context.Context, args []string) error {
	if len(args) == 0 {
		dir, err := a.picker.Directory(ctx)
		if err != nil {
			reportError(err)
			return err
		}
		if dir == "" {
			printlnFn("No directory selected.")
		} else {
			printlnFn("Directory:", dir)
		}
		return nil
	}

	dir := args[0]
	if err := a.picker.SetDirectory(ctx, dir); err != nil {
		reportError(err)
		return err
	}
	printlnFn("Directory set to", dir)
	return nil
}

// Bias shows the stored bias, or sets it when a value is given. 0 draws
// only from the top-level directory, 100 only from subdirectories.
func (a *App) Bias(ctx context.Context, args []string) error {
	if len(args) == 0 {
		bias, err := a.picker.Bias(ctx)
		if err != nil {
			reportError(err)
			return err
		}
		printlnFn(fmt.Sprintf("Directory Bias: %d", bias))
		return nil
	}

	bias, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Bias must be an integer between 0 and 100.")
		return nil
	}
	if err := a.picker.SetBias(ctx, bias); err != nil {
		reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Directory Bias: %d", bias))
	return nil
}
