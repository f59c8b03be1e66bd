// Package osx launches files with the operating system's default handler.
package osx

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Test seam for exec.Command.
var execCommand = exec.Command

// Open asks the host OS to open path with its default application. The
// launched process is not waited on; playback outlives the command.
func Open(path string) error {
	cmd := openCommand(runtime.GOOS, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

func openCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return execCommand("open", path)
	case "windows":
		return execCommand("cmd", "/c", "start", "", path)
	default:
		return execCommand("xdg-open", path)
	}
}
