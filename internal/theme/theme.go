// Package theme resolves COSMIC themes and toolkit settings.
package theme

// Component holds the colors of one interactive widget family.
type Component struct {
	Base       Color
	Hover      Color
	Pressed    Color
	Selected   Color
	Divider    Color
	On         Color // text and icons drawn on Base
	Disabled   Color
	OnDisabled Color
	Border     Color
}

// Container is a surface with content drawn on it.
type Container struct {
	Base      Color
	On        Color
	Divider   Color
	Component Component // widgets placed in this container
}

// Theme is a fully resolved theme. It is never mutated after Build.
type Theme struct {
	Name           string
	IsDark         bool
	IsHighContrast bool

	Background Container // window
	Primary    Container // views and lists
	Secondary  Container // sidebars and popovers

	Accent      Component
	Success     Component
	Destructive Component
	Warning     Component
	Button      Component

	Palette Palette
}

var (
	black = RGBA(0, 0, 0, 1)
	white = RGBA(1, 1, 1, 1)
)

// Builder derives a Theme from a palette and a handful of user choices.
type Builder struct {
	Palette        Palette
	IsDark         bool
	IsHighContrast bool
	// Accent overrides Palette.AccentBlue when set.
	Accent *Color
}

// DarkBuilder returns the builder for the default dark theme.
func DarkBuilder() Builder {
	return Builder{Palette: DarkPalette(), IsDark: true}
}

// LightBuilder returns the builder for the default light theme.
func LightBuilder() Builder {
	return Builder{Palette: LightPalette(), IsDark: false}
}

// Build resolves every role of the theme.
func (b Builder) Build() *Theme {
	p := b.Palette

	text := p.Neutral9
	disabledAlpha := float32(0.5)
	borderAlpha := float32(0.3)
	if b.IsHighContrast {
		text = p.Neutral10
		disabledAlpha = 0.7
		borderAlpha = 1
	}

	derive := func(base, on Color) Component {
		return Component{
			Base:       base,
			Hover:      base.Mix(on, 0.1),
			Pressed:    base.Mix(on, 0.2),
			Selected:   base.Mix(on, 0.1),
			Divider:    on.WithAlpha(0.2),
			On:         on,
			Disabled:   base.WithAlpha(disabledAlpha),
			OnDisabled: on.WithAlpha(disabledAlpha),
			Border:     on.WithAlpha(borderAlpha),
		}
	}

	container := func(base Color) Container {
		return Container{
			Base:      base,
			On:        text,
			Divider:   text.WithAlpha(0.2),
			Component: derive(base.Mix(text, 0.08), text),
		}
	}

	accent := p.AccentBlue
	if b.Accent != nil {
		accent = b.Accent.WithAlpha(1)
	}

	name := p.Name
	if b.IsHighContrast {
		name += "-high-contrast"
	}

	return &Theme{
		Name:           name,
		IsDark:         b.IsDark,
		IsHighContrast: b.IsHighContrast,

		Background: container(p.Gray1),
		Primary:    container(p.Gray2),
		Secondary:  container(p.Gray2.Mix(text, 0.05)),

		Accent:      derive(accent, contrastOn(accent)),
		Success:     derive(p.BrightGreen, contrastOn(p.BrightGreen)),
		Destructive: derive(p.BrightRed, contrastOn(p.BrightRed)),
		Warning:     derive(p.BrightOrange, contrastOn(p.BrightOrange)),
		Button:      derive(p.Gray2.Mix(text, 0.12), text),

		Palette: p,
	}
}

// contrastOn picks black or white text for a background.
func contrastOn(bg Color) Color {
	if bg.Lightness() > 0.6 {
		return black
	}

	return white
}
