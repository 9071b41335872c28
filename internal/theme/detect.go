package theme

import (
	"os"
	"strings"

	"github.com/kyleking/cutecosmic/internal/config"
	"github.com/kyleking/cutecosmic/internal/logging"
)

// EnvOverride forces dark or light for the system-preference mode.
const EnvOverride = "CUTECOSMIC_THEME"

// ModeVersion is the com.system76.CosmicTheme.Mode config version.
const ModeVersion = 1

// Detect reports whether the desktop prefers a dark theme, checking the
// environment override, then the COSMIC mode setting. COSMIC defaults to
// dark when neither says otherwise.
func Detect(store *config.Store) bool {
	if env := os.Getenv(EnvOverride); env != "" {
		switch strings.ToLower(env) {
		case "dark":
			return true
		case "light":
			return false
		default:
			logging.Warn("ignoring unknown theme override", "env", EnvOverride, "value", env)
		}
	}

	var isDark bool
	if err := store.Component(config.ModeComponent, ModeVersion).Get("is_dark", &isDark); err != nil {
		logging.Debug("theme mode not configured, defaulting to dark", "error", err)
		return true
	}

	return isDark
}
