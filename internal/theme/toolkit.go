package theme

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kyleking/cutecosmic/internal/config"
)

// ToolkitVersion is the com.system76.CosmicTk config version.
const ToolkitVersion = 1

// Density controls widget spacing.
type Density int

const (
	DensityCompact Density = iota
	DensityStandard
	DensitySpacious
)

var densityNames = []string{"Compact", "Standard", "Spacious"}

func (d Density) String() string { return enumName(densityNames, int(d)) }

// UnmarshalYAML decodes a variant name such as "Compact".
func (d *Density) UnmarshalYAML(value *yaml.Node) error {
	i, err := enumIndex(densityNames, "density", value.Value)
	if err != nil {
		return err
	}
	*d = Density(i)
	return nil
}

// Toolkit holds toolkit-level preferences shared by COSMIC applications.
type Toolkit struct {
	// ApplyThemeGlobal asks non-COSMIC toolkits to adopt the theme colors.
	ApplyThemeGlobal bool
	ShowMinimize     bool
	ShowMaximize     bool
	IconTheme        string
	HeaderSize       Density
	InterfaceDensity Density
	InterfaceFont    Font
	MonospaceFont    Font
}

// DefaultToolkit returns the values COSMIC uses when nothing is configured.
func DefaultToolkit() Toolkit {
	return Toolkit{
		ApplyThemeGlobal: false,
		ShowMinimize:     true,
		ShowMaximize:     true,
		IconTheme:        "Cosmic",
		HeaderSize:       DensityStandard,
		InterfaceDensity: DensityStandard,
		InterfaceFont: Font{
			Family:  "Open Sans",
			Weight:  WeightNormal,
			Stretch: StretchNormal,
			Style:   StyleNormal,
		},
		MonospaceFont: Font{
			Family:  "Noto Sans Mono",
			Weight:  WeightNormal,
			Stretch: StretchNormal,
			Style:   StyleNormal,
		},
	}
}

// LoadToolkit reads every toolkit key from c. Keys that cannot be read keep
// their default value; their errors are joined into the returned error, so
// the Toolkit is always usable.
func LoadToolkit(c config.Component) (Toolkit, error) {
	tk := DefaultToolkit()

	errs := []error{
		getEntry(c, "apply_theme_global", &tk.ApplyThemeGlobal),
		getEntry(c, "show_minimize", &tk.ShowMinimize),
		getEntry(c, "show_maximize", &tk.ShowMaximize),
		getEntry(c, "icon_theme", &tk.IconTheme),
		getEntry(c, "header_size", &tk.HeaderSize),
		getEntry(c, "interface_density", &tk.InterfaceDensity),
		getEntry(c, "interface_font", &tk.InterfaceFont),
		getEntry(c, "monospace_font", &tk.MonospaceFont),
	}

	return tk, errors.Join(errs...)
}

// getEntry decodes key into a copy of *dst and only stores it on success.
func getEntry[T any](c config.Component, key string, dst *T) error {
	var v T
	if err := c.Get(key, &v); err != nil {
		return err
	}

	*dst = v

	return nil
}

func (tk Toolkit) String() string {
	return fmt.Sprintf("icon_theme=%s interface=%q monospace=%q apply_theme_global=%t",
		tk.IconTheme, tk.InterfaceFont.Family, tk.MonospaceFont.Family, tk.ApplyThemeGlobal)
}
