// Package config reads cosmic-config entries from disk.
//
// cosmic-config stores one RON value per file:
//
//	$XDG_CONFIG_HOME/cosmic/<component>/v<version>/<key>
//
// with system defaults under $XDG_DATA_DIRS/cosmic using the same layout.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	themeerr "github.com/kyleking/cutecosmic/internal/errors"
)

// Components read by the theme provider.
const (
	ToolkitComponent      = "com.system76.CosmicTk"
	ModeComponent         = "com.system76.CosmicTheme.Mode"
	DarkBuilderComponent  = "com.system76.CosmicTheme.Dark.Builder"
	LightBuilderComponent = "com.system76.CosmicTheme.Light.Builder"
)

// DefaultSystemDirs is used when XDG_DATA_DIRS is unset.
const DefaultSystemDirs = "/usr/local/share:/usr/share"

// Store locates cosmic-config entries under a user directory and a list of
// system directories. User entries win.
type Store struct {
	userDir    string
	systemDirs []string
}

// NewStore creates a store rooted at userDir (the "cosmic" directory itself)
// with optional system fallbacks, also "cosmic" directories.
func NewStore(userDir string, systemDirs []string) *Store {
	return &Store{
		userDir:    userDir,
		systemDirs: systemDirs,
	}
}

// UserDir returns $XDG_CONFIG_HOME/cosmic, falling back to ~/.config/cosmic.
func UserDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cosmic")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", "cosmic")
}

// SystemDirs returns the cosmic directory under each XDG_DATA_DIRS entry.
func SystemDirs() []string {
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = DefaultSystemDirs
	}

	var dirs []string
	for _, d := range strings.Split(dataDirs, ":") {
		if d == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(d, "cosmic"))
	}

	return dirs
}

// UserDir returns the user root of the store.
func (s *Store) UserDir() string {
	return s.userDir
}

// Component returns a handle on one versioned config component.
func (s *Store) Component(name string, version uint64) Component {
	return Component{Name: name, Version: version, store: s}
}

// Component is a versioned set of keys, e.g. com.system76.CosmicTk v1.
type Component struct {
	Name    string
	Version uint64
	store   *Store
}

// Path returns the user path for key.
func (c Component) Path(key string) string {
	return c.pathIn(c.store.userDir, key)
}

func (c Component) pathIn(root, key string) string {
	return filepath.Join(root, c.Name, "v"+strconv.FormatUint(c.Version, 10), key)
}

// Get decodes key into v. Any failure is returned as *errors.EntryError; a
// key present in neither the user nor the system directories wraps
// fs.ErrNotExist.
func (c Component) Get(key string, v any) error {
	data, err := c.read(key)
	if err != nil {
		return &themeerr.EntryError{Component: c.Name, Key: key, Err: err}
	}

	normalized, err := NormalizeRON(data)
	if err != nil {
		return &themeerr.EntryError{Component: c.Name, Key: key, Err: fmt.Errorf("failed to parse entry: %w", err)}
	}

	if err := yaml.Unmarshal(normalized, v); err != nil {
		return &themeerr.EntryError{Component: c.Name, Key: key, Err: fmt.Errorf("failed to decode entry: %w", err)}
	}

	return nil
}

func (c Component) read(key string) ([]byte, error) {
	roots := append([]string{c.store.userDir}, c.store.systemDirs...)

	for _, root := range roots {
		if root == "" {
			continue
		}

		data, err := os.ReadFile(c.pathIn(root, key))
		if err == nil {
			return data, nil
		}

		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read entry: %w", err)
		}
	}

	return nil, fs.ErrNotExist
}
