// Command libcutecosmic builds the C shared library that native toolkits
// load to follow the COSMIC theme:
//
//	go build -buildmode=c-shared -o libcutecosmic.so ./cmd/libcutecosmic
//
// Every exported function may be called from any thread. Strings returned to
// the caller must be released with libcosmic_theme_free_string. Reading any
// value before the first libcosmic_theme_load aborts the process.
package main

/*
#include <stdbool.h>
#include <stdint.h>

typedef enum {
	CosmicThemeKind_SystemPreference,
	CosmicThemeKind_Dark,
	CosmicThemeKind_Light,
} CosmicThemeKind;

typedef struct {
	uint8_t red;
	uint8_t green;
	uint8_t blue;
	uint8_t alpha;
} CosmicColor;

typedef struct {
	CosmicColor window;
	CosmicColor window_text;
	CosmicColor window_text_disabled;
	CosmicColor window_component;
	CosmicColor background;
	CosmicColor text;
	CosmicColor text_disabled;
	CosmicColor component;
	CosmicColor component_text;
	CosmicColor component_text_disabled;
	CosmicColor button;
	CosmicColor button_text;
	CosmicColor button_text_disabled;
	CosmicColor tooltip;
	CosmicColor accent;
	CosmicColor accent_text;
	CosmicColor accent_disabled;
} CosmicPalette;

typedef struct {
	CosmicColor success;
	CosmicColor destructive;
	CosmicColor warning;
} CosmicExtendedPalette;

typedef enum {
	CosmicFontKind_Interface,
	CosmicFontKind_Monospace,
} CosmicFontKind;

typedef enum {
	CosmicFontStyle_Normal,
	CosmicFontStyle_Italic,
	CosmicFontStyle_Oblique,
} CosmicFontStyle;

typedef struct {
	char *family;
	CosmicFontStyle style;
	int weight;
	int stretch;
} CosmicFont;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/kyleking/cutecosmic/internal/bridge"
	"github.com/kyleking/cutecosmic/internal/config"
	"github.com/kyleking/cutecosmic/internal/cstring"
	"github.com/kyleking/cutecosmic/internal/logging"
	"github.com/kyleking/cutecosmic/internal/theme"
)

// The Go records are reinterpreted as the C structs above, so their sizes
// must match exactly.
var (
	_ [unsafe.Sizeof(C.CosmicColor{}) - unsafe.Sizeof(bridge.Color{})]struct{}
	_ [unsafe.Sizeof(bridge.Color{}) - unsafe.Sizeof(C.CosmicColor{})]struct{}
	_ [unsafe.Sizeof(C.CosmicPalette{}) - unsafe.Sizeof(bridge.Palette{})]struct{}
	_ [unsafe.Sizeof(bridge.Palette{}) - unsafe.Sizeof(C.CosmicPalette{})]struct{}
	_ [unsafe.Sizeof(C.CosmicExtendedPalette{}) - unsafe.Sizeof(bridge.ExtendedPalette{})]struct{}
	_ [unsafe.Sizeof(bridge.ExtendedPalette{}) - unsafe.Sizeof(C.CosmicExtendedPalette{})]struct{}
	_ [unsafe.Sizeof(C.CosmicFont{}) - unsafe.Sizeof(bridge.Font{})]struct{}
	_ [unsafe.Sizeof(bridge.Font{}) - unsafe.Sizeof(C.CosmicFont{})]struct{}
)

// builder is created on first use. The host process owns main, so there is
// no earlier point to read settings.
var builder = sync.OnceValue(func() *bridge.Builder {
	settings, err := config.LoadSettings(config.NewViper())

	logging.Init(logging.FromSettings(settings.Log))
	if err != nil {
		logging.Warn("ignoring unreadable settings", "error", err)
	}

	provider := theme.NewConfigProvider(settings.Store())

	return bridge.NewBuilder(bridge.NewCache(provider, nil))
})

func themeMode(kind C.CosmicThemeKind) theme.Mode {
	switch kind {
	case C.CosmicThemeKind_SystemPreference:
		return theme.ModeSystemPreference
	case C.CosmicThemeKind_Dark:
		return theme.ModeDark
	case C.CosmicThemeKind_Light:
		return theme.ModeLight
	default:
		logging.Warn("unknown theme kind, using system preference", "kind", int(kind))
		return theme.ModeSystemPreference
	}
}

//export libcosmic_theme_load
func libcosmic_theme_load(kind C.CosmicThemeKind) {
	b := builder()
	b.Cache().Load(themeMode(kind))
}

//export libcosmic_theme_is_dark
func libcosmic_theme_is_dark() C.bool {
	return C.bool(builder().IsDark())
}

//export libcosmic_theme_is_high_contrast
func libcosmic_theme_is_high_contrast() C.bool {
	return C.bool(builder().IsHighContrast())
}

//export libcosmic_theme_should_apply_colors
func libcosmic_theme_should_apply_colors() C.bool {
	return C.bool(builder().ShouldApplyColors())
}

//export libcosmic_theme_icon_theme
func libcosmic_theme_icon_theme() *C.char {
	return (*C.char)(builder().IconTheme())
}

//export libcosmic_theme_get_palette
func libcosmic_theme_get_palette(target *C.CosmicPalette) {
	builder().Palette((*bridge.Palette)(unsafe.Pointer(target)))
}

//export libcosmic_theme_get_extended_palette
func libcosmic_theme_get_extended_palette(target *C.CosmicExtendedPalette) {
	builder().ExtendedPalette((*bridge.ExtendedPalette)(unsafe.Pointer(target)))
}

//export libcosmic_theme_get_font
func libcosmic_theme_get_font(kind C.CosmicFontKind, target *C.CosmicFont) {
	builder().Font(bridge.FontKind(kind), (*bridge.Font)(unsafe.Pointer(target)))
}

//export libcosmic_theme_free_string
func libcosmic_theme_free_string(ptr *C.char) {
	cstring.Release(unsafe.Pointer(ptr))
}

func main() {}
