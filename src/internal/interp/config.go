// Package interp describes Python interpreter installations that pipctl
// drives the package tool against.
package interp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipctl/pipctl/src/internal/procrun"
)

// Config is an immutable description of an interpreter installation. It is
// owned by the caller; nothing in pipctl mutates or caches one.
type Config struct {
	Prefix      string  // installation root (sys.prefix)
	LibraryPath string  // standard library directory containing site-packages
	Executable  string  // interpreter executable path
	Version     Version // interpreter version
}

// Runnable reports whether the configuration can launch processes, i.e. the
// interpreter executable exists.
func (c Config) Runnable() bool {
	if c.Executable == "" {
		return false
	}
	info, err := os.Stat(c.Executable)
	return err == nil && !info.IsDir()
}

// CheckRunnable returns a procrun.ErrNotRunnable condition when the
// configuration cannot launch any process.
func (c Config) CheckRunnable() error {
	if !c.Runnable() {
		return fmt.Errorf("%w: interpreter %q", procrun.ErrNotRunnable, c.Executable)
	}
	return nil
}

// SitePackages returns the site-packages directory under the library path.
func (c Config) SitePackages() string {
	return filepath.Join(c.LibraryPath, "site-packages")
}
