package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kyleking/cutecosmic/internal/config"
)

// CosmicTree is a throwaway cosmic-config root for tests.
type CosmicTree struct {
	t    *testing.T
	Root string
}

// NewCosmicTree creates an empty cosmic-config root under t.TempDir().
func NewCosmicTree(t *testing.T) *CosmicTree {
	t.Helper()

	return &CosmicTree{t: t, Root: t.TempDir()}
}

// Store returns a store reading only from this tree.
func (c *CosmicTree) Store() *config.Store {
	return config.NewStore(c.Root, nil)
}

// Write stores a raw RON value for component (version 1) and key.
func (c *CosmicTree) Write(component, key, ron string) *CosmicTree {
	c.t.Helper()

	dir := filepath.Join(c.Root, component, "v1")
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.t.Fatalf("failed to create component dir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, key), []byte(ron), 0644); err != nil {
		c.t.Fatalf("failed to write entry %s/%s: %v", component, key, err)
	}

	return c
}

// Toolkit writes a toolkit key.
func (c *CosmicTree) Toolkit(key, ron string) *CosmicTree {
	c.t.Helper()
	return c.Write(config.ToolkitComponent, key, ron)
}

// Dark writes the COSMIC mode setting.
func (c *CosmicTree) Dark(isDark bool) *CosmicTree {
	c.t.Helper()

	value := "false"
	if isDark {
		value = "true"
	}

	return c.Write(config.ModeComponent, "is_dark", value)
}

// FullToolkit writes a complete, valid toolkit configuration.
func (c *CosmicTree) FullToolkit() *CosmicTree {
	c.t.Helper()

	return c.
		Toolkit("apply_theme_global", "true").
		Toolkit("show_minimize", "false").
		Toolkit("show_maximize", "true").
		Toolkit("icon_theme", `"Papirus-Dark"`).
		Toolkit("header_size", "Compact").
		Toolkit("interface_density", "Spacious").
		Toolkit("interface_font", `(
    family: "Inter",
    weight: Semibold,
    stretch: SemiCondensed,
    style: Normal,
)`).
		Toolkit("monospace_font", `(
    family: "JetBrains Mono",
    weight: Light,
    stretch: Expanded,
    style: Italic,
)`)
}
