// Package dirs resolves and manages maaget's on-disk directories: the
// library directory holding the MaaCore dynamic library, the resource
// directory mirroring the archive's resource tree, the download cache and
// the config directory.
package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment overrides for directory roots, used mainly by tests.
const (
	EnvDataDir   = "MAAGET_DATA_DIR"
	EnvConfigDir = "MAAGET_CONFIG_DIR"
)

// Dirs holds the resolved directory layout for one invocation.
type Dirs struct {
	library  string
	resource string
	cache    string
	config   string
}

// New resolves the directory layout from the environment, falling back to
// the user config directory (e.g. ~/.config/maaget).
func New() (*Dirs, error) {
	root := os.Getenv(EnvDataDir)
	if root == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		root = filepath.Join(base, "maaget")
	}

	config := os.Getenv(EnvConfigDir)
	if config == "" {
		config = root
	}

	return &Dirs{
		library:  filepath.Join(root, "lib"),
		resource: filepath.Join(root, "resource"),
		cache:    filepath.Join(root, "cache"),
		config:   config,
	}, nil
}

// Library returns the dynamic-library directory.
func (d *Dirs) Library() string { return d.library }

// Resource returns the resource tree directory.
func (d *Dirs) Resource() string { return d.resource }

// Cache returns the archive download cache directory.
func (d *Dirs) Cache() string { return d.cache }

// Config returns the configuration directory.
func (d *Dirs) Config() string { return d.config }

// Ensure creates dir (and parents) if missing.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// EnsureClean removes dir with its contents and recreates it empty.
func EnsureClean(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clean directory %s: %w", dir, err)
	}
	return Ensure(dir)
}
