// Package filex contains small filesystem helpers: the per-user application
// data directory and first-run provisioning of the database file.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Rename renames (moves) a file, wrapping os.Rename.
func Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// AppDataDir returns the per-user writable directory for application data,
// creating it if needed. Windows uses %LOCALAPPDATA%\videopick, other
// systems use ~/.videopick.
func AppDataDir() (string, error) {
	return appDataDir(runtime.GOOS)
}

func appDataDir(goos string) (string, error) {
	var dir string
	if goos == "windows" {
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			return "", errors.New("LOCALAPPDATA is not set")
		}
		dir = filepath.Join(base, "videopick")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".videopick")
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// ProvisionFile copies src to dst unless dst already exists, seeding the
// history database from a bundled template on first run. An empty src is a
// no-op: migrations create the schema from scratch. The copy is idempotent;
// re-running it never overwrites an existing dst.
func ProvisionFile(src, dst string) error {
	if src == "" {
		return nil
	}
	if _, err := os.Stat(dst); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open template %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(dst), err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("copy template: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy template: %w", err)
	}
	return nil
}
