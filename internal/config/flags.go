package config

import (
	"flag"
	"os"
	"time"

	"github.com/videopick/videopick/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the history database file
//	-p string   path to a bundled template database
//	-s int      scan timeout in seconds (0 disables the deadline)
//	-e string   comma-separated list of video extensions
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-s", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the history database")
	fs.StringVar(&cfg.TemplatePath, "p", cfg.TemplatePath, "path to a template database")
	scanTimeout := fs.Int("s", int(cfg.ScanTimeout.Seconds()), "scan timeout (in seconds)")
	exts := fs.String("e", "", "comma-separated video extensions")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ScanTimeout = time.Duration(*scanTimeout) * time.Second
	if *exts != "" {
		cfg.VideoExtensions = SplitExtensions(*exts)
	}
}
