package bridge

import (
	"sync"

	themeerr "github.com/kyleking/cutecosmic/internal/errors"
	"github.com/kyleking/cutecosmic/internal/logging"
	"github.com/kyleking/cutecosmic/internal/theme"
)

// Cache holds the active theme and toolkit settings.
//
// Each slot has its own lock and Load replaces them one after the other, so
// a reader racing a reload may pair an old theme with a new toolkit. Every
// consumer reads the two independently.
type Cache struct {
	provider theme.Provider
	logger   *logging.Logger

	themeMu sync.RWMutex
	theme   *theme.Theme

	toolkitMu sync.RWMutex
	toolkit   *theme.Toolkit
}

// NewCache creates an empty cache. A nil logger uses the global logger.
func NewCache(provider theme.Provider, logger *logging.Logger) *Cache {
	if logger == nil {
		logger = logging.Get()
	}

	return &Cache{
		provider: provider,
		logger:   logger.With("component", "cache"),
	}
}

// Load computes the theme for mode and reloads the toolkit settings,
// replacing both slots. Toolkit errors are logged and the best-effort value
// is kept.
func (c *Cache) Load(mode theme.Mode) {
	th := c.provider.Theme(mode)

	tk, err := c.provider.Toolkit()
	if err != nil {
		if themeerr.IsNotFound(err) {
			c.logger.Debug("toolkit keys not configured, using defaults", "error", err)
		} else {
			c.logger.Warn("toolkit configuration partially loaded", "error", err)
		}
	}

	c.themeMu.Lock()
	c.theme = th
	c.themeMu.Unlock()

	c.toolkitMu.Lock()
	c.toolkit = &tk
	c.toolkitMu.Unlock()

	c.logger.Debug("theme loaded", "mode", mode.String(), "theme", th.Name, "toolkit", tk.String())
}

// Theme returns the cached theme. It panics with *errors.ContractError if
// nothing has been loaded.
func (c *Cache) Theme() *theme.Theme {
	c.themeMu.RLock()
	defer c.themeMu.RUnlock()

	if c.theme == nil {
		panic(&themeerr.ContractError{Slot: "theme"})
	}

	return c.theme
}

// Toolkit returns the cached toolkit settings. It panics with
// *errors.ContractError if nothing has been loaded.
func (c *Cache) Toolkit() theme.Toolkit {
	c.toolkitMu.RLock()
	defer c.toolkitMu.RUnlock()

	if c.toolkit == nil {
		panic(&themeerr.ContractError{Slot: "toolkit configuration"})
	}

	return *c.toolkit
}
