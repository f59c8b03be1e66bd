package cli

import "context"

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: delete <id>")
		return nil
	}
	if err := a.history.SoftDelete(ctx, args[0]); err != nil {
		reportError(err)
		return err
	}
	printlnFn("Entry deleted from history. Use 'undo' to restore it.")
	return nil
}

func (a *App) Undo(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: undo <id>")
		return nil
	}
	if err := a.history.UndoDelete(ctx, args[0]); err != nil {
		reportError(err)
		return err
	}
	printlnFn("Entry restored to history.")
	return nil
}
