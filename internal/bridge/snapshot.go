package bridge

import (
	"unsafe"

	"github.com/kyleking/cutecosmic/internal/cstring"
)

// Builder fills caller-owned records from a Cache. A nil target is ignored
// without touching the cache.
type Builder struct {
	cache *Cache
}

// NewBuilder creates a builder reading from cache.
func NewBuilder(cache *Cache) *Builder {
	return &Builder{cache: cache}
}

// Cache returns the cache the builder reads from.
func (b *Builder) Cache() *Cache {
	return b.cache
}

// Palette fills out with the native palette roles.
func (b *Builder) Palette(out *Palette) {
	if out == nil {
		return
	}

	t := b.cache.Theme()

	out.Window = NewColor(t.Background.Base)
	out.WindowText = NewColor(t.Background.On)
	out.WindowTextDisabled = NewColor(t.Background.Component.OnDisabled)
	out.WindowComponent = NewColor(t.Background.Component.Base)
	out.Background = NewColor(t.Primary.Base)
	out.Text = NewColor(t.Primary.On)
	out.TextDisabled = NewColor(t.Primary.Component.OnDisabled)
	out.Component = NewColor(t.Primary.Component.Base)
	out.ComponentText = NewColor(t.Primary.Component.On)
	out.ComponentTextDisabled = NewColor(t.Primary.Component.OnDisabled)
	out.Button = NewColor(t.Button.Base)
	out.ButtonText = NewColor(t.Button.On)
	out.ButtonTextDisabled = NewColor(t.Button.OnDisabled)
	out.Accent = NewColor(t.Accent.Base)
	out.AccentText = NewColor(t.Accent.On)
	out.AccentDisabled = NewColor(t.Accent.Disabled)

	// libcosmic's own tooltip style draws on neutral_2, not a semantic role.
	out.Tooltip = NewColor(t.Palette.Neutral2)
}

// ExtendedPalette fills out with the severity colors.
func (b *Builder) ExtendedPalette(out *ExtendedPalette) {
	if out == nil {
		return
	}

	t := b.cache.Theme()

	out.Success = NewColor(t.Palette.BrightGreen)
	out.Destructive = NewColor(t.Palette.BrightRed)
	out.Warning = NewColor(t.Palette.BrightOrange)
}

// Font fills out with the configured font of kind. out.Family is a new C
// string the caller must release with cstring.Release; it is nil if the
// family could not be exported. An unknown kind leaves out untouched.
func (b *Builder) Font(kind FontKind, out *Font) {
	if out == nil {
		return
	}

	tk := b.cache.Toolkit()

	font := tk.InterfaceFont
	switch kind {
	case FontInterface:
	case FontMonospace:
		font = tk.MonospaceFont
	default:
		b.cache.logger.Warn("ignoring unknown font kind", "kind", int32(kind))
		return
	}

	out.Family = cstring.Export(font.Family)
	out.Style = MapStyle(font.Style)
	out.Weight = MapWeight(font.Weight)
	out.Stretch = MapStretch(font.Stretch)
}

// IconTheme returns the icon theme name as a C string owned by the caller.
func (b *Builder) IconTheme() unsafe.Pointer {
	return cstring.Export(b.cache.Toolkit().IconTheme)
}

// IsDark reports whether the cached theme is dark.
func (b *Builder) IsDark() bool {
	return b.cache.Theme().IsDark
}

// IsHighContrast reports whether the cached theme is high contrast.
func (b *Builder) IsHighContrast() bool {
	return b.cache.Theme().IsHighContrast
}

// ShouldApplyColors reports whether other toolkits should adopt the theme
// colors.
func (b *Builder) ShouldApplyColors() bool {
	return b.cache.Toolkit().ApplyThemeGlobal
}
