package cli

import (
	"context"
	"strings"

	"github.com/videopick/videopick/internal/repositories/videos"
)

// List shows the active history. Arguments are parsed positionally:
//
//	list [name|rating] [asc|desc] [search terms...]
//
// The sort key defaults to name ascending; remaining arguments form a
// case-insensitive substring filter on the display name.
func (a *App) List(ctx context.Context, args []string) error {
	f := parseListArgs(args)

	count := 0
	for v, err := range a.history.ActiveEntries(ctx, f) {
		if err != nil {
			reportError(err)
			return err
		}
		printlnFn(formatVideo(v))
		count++
	}
	if count == 0 {
		printlnFn("History is empty.")
	}
	return nil
}

func parseListArgs(args []string) videos.ListFilter {
	f := videos.ListFilter{Sort: videos.SortByName}

	if len(args) > 0 {
		switch args[0] {
		case "name":
			f.Sort = videos.SortByName
			args = args[1:]
		case "rating":
			f.Sort = videos.SortByRating
			args = args[1:]
		}
	}
	if len(args) > 0 {
		switch args[0] {
		case "asc":
			args = args[1:]
		case "desc":
			f.Desc = true
			args = args[1:]
		}
	}
	f.Search = strings.Join(args, " ")
	return f
}
