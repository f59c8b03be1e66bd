package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Pick(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Rate(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Undo(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Dir(ctx context.Context, args []string) error
	Bias(ctx context.Context, args []string) error
	Recent(ctx context.Context) error
	Open(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the videopick CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	pick | p              — open a random video from the chosen directory
//	list | l [...]        — list history (see List for filter/sort syntax)
//	rate <id> <rating|->  — set or clear a rating
//	rename <id> <name>    — rename the entry and the file on disk
//	delete <id>           — soft-delete an entry
//	undo <id>             — restore a soft-deleted entry
//	add [path]            — add a video to history manually
//	dir [path]            — show or set the video directory
//	bias [0-100]          — show or set the nested-pool bias
//	recent                — show the most recently opened video
//	open <id>             — re-open a history entry
//	help                  — show available commands
//	exit | quit           — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("videopick %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (p)ick, (l)ist, rate, rename, delete, undo, add, dir, bias, recent, open, exit")

		case "p", "pick":
			_ = a.Pick(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "rate":
			_ = a.Rate(ctx, args)

		case "rename":
			_ = a.Rename(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "undo":
			_ = a.Undo(ctx, args)

		case "add":
			_ = a.Add(ctx, args)

		case "dir":
			_ = a.Dir(ctx, args)

		case "bias":
			_ = a.Bias(ctx, args)

		case "recent":
			_ = a.Recent(ctx)

		case "open":
			_ = a.Open(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
