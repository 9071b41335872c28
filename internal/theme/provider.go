package theme

import (
	"fmt"
	"strings"

	"github.com/kyleking/cutecosmic/internal/config"
	"github.com/kyleking/cutecosmic/internal/logging"
)

// BuilderVersion is the com.system76.CosmicTheme.*.Builder config version.
const BuilderVersion = 1

// Mode selects which theme to compute.
type Mode int

const (
	ModeSystemPreference Mode = iota
	ModeDark
	ModeLight
)

var modeNames = []string{"system", "dark", "light"}

func (m Mode) String() string { return enumName(modeNames, int(m)) }

// ParseMode accepts "system", "dark" or "light".
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, s) {
			return Mode(i), nil
		}
	}

	return ModeSystemPreference, fmt.Errorf("unknown theme mode %q (expected system, dark or light)", s)
}

// Provider computes themes and loads toolkit settings.
type Provider interface {
	// Theme computes the theme for mode. It never fails.
	Theme(mode Mode) *Theme
	// Toolkit loads the toolkit settings. When err is non-nil the returned
	// Toolkit is still a usable best-effort value.
	Toolkit() (Toolkit, error)
}

// ConfigProvider reads COSMIC settings from a cosmic-config store.
type ConfigProvider struct {
	store *config.Store
}

// NewConfigProvider creates a provider backed by store.
func NewConfigProvider(store *config.Store) *ConfigProvider {
	return &ConfigProvider{store: store}
}

// Theme computes the theme for mode.
func (p *ConfigProvider) Theme(mode Mode) *Theme {
	switch mode {
	case ModeDark:
		return p.build(true)
	case ModeLight:
		return p.build(false)
	default:
		return p.build(Detect(p.store))
	}
}

// Toolkit loads com.system76.CosmicTk.
func (p *ConfigProvider) Toolkit() (Toolkit, error) {
	return LoadToolkit(p.store.Component(config.ToolkitComponent, ToolkitVersion))
}

// build applies the user's builder overrides on top of the default builder.
// Unreadable overrides are skipped.
func (p *ConfigProvider) build(dark bool) *Theme {
	b, component := LightBuilder(), config.LightBuilderComponent
	if dark {
		b, component = DarkBuilder(), config.DarkBuilderComponent
	}

	c := p.store.Component(component, BuilderVersion)

	if err := getEntry(c, "accent", &b.Accent); err != nil {
		logging.Debug("using default accent", "error", err)
	}

	if err := getEntry(c, "is_high_contrast", &b.IsHighContrast); err != nil {
		logging.Debug("using default contrast", "error", err)
	}

	return b.Build()
}
