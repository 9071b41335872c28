package theme_test

import (
	"testing"

	"github.com/kyleking/cutecosmic/internal/config"
	"github.com/kyleking/cutecosmic/internal/testutil"
	"github.com/kyleking/cutecosmic/internal/theme"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    theme.Mode
		wantErr bool
	}{
		{"system", theme.ModeSystemPreference, false},
		{"Dark", theme.ModeDark, false},
		{"light", theme.ModeLight, false},
		{"sepia", theme.ModeSystemPreference, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := theme.ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParseMode(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		isDark *bool
		want   bool
	}{
		{name: "nothing configured", want: true},
		{name: "config light", isDark: boolPtr(false), want: false},
		{name: "config dark", isDark: boolPtr(true), want: true},
		{name: "env light wins", env: "light", isDark: boolPtr(true), want: false},
		{name: "env dark wins", env: "DARK", isDark: boolPtr(false), want: true},
		{name: "unknown env ignored", env: "sepia", isDark: boolPtr(false), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(theme.EnvOverride, tt.env)

			tree := testutil.NewCosmicTree(t)
			if tt.isDark != nil {
				tree.Dark(*tt.isDark)
			}

			if got := theme.Detect(tree.Store()); got != tt.want {
				t.Errorf("Detect: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigProvider_Theme(t *testing.T) {
	t.Setenv(theme.EnvOverride, "")

	tree := testutil.NewCosmicTree(t).Dark(false)
	p := theme.NewConfigProvider(tree.Store())

	if !p.Theme(theme.ModeDark).IsDark {
		t.Error("ModeDark should produce a dark theme")
	}

	if p.Theme(theme.ModeLight).IsDark {
		t.Error("ModeLight should produce a light theme")
	}

	if p.Theme(theme.ModeSystemPreference).IsDark {
		t.Error("system preference should follow is_dark=false")
	}
}

func TestConfigProvider_BuilderOverrides(t *testing.T) {
	tree := testutil.NewCosmicTree(t).
		Write(config.DarkBuilderComponent, "accent", `Some((red: 1.0, green: 0.0, blue: 0.0))`).
		Write(config.DarkBuilderComponent, "is_high_contrast", `true`).
		Write(config.LightBuilderComponent, "accent", `None`)

	p := theme.NewConfigProvider(tree.Store())

	dark := p.Theme(theme.ModeDark)
	testutil.AssertColorNear(t, "dark accent", dark.Accent.Base, theme.RGBA(1, 0, 0, 1))

	if !dark.IsHighContrast {
		t.Error("expected high contrast dark theme")
	}

	light := p.Theme(theme.ModeLight)
	if light.Accent.Base != light.Palette.AccentBlue {
		t.Error("None accent should keep the palette accent")
	}
}

func TestConfigProvider_Toolkit(t *testing.T) {
	tree := testutil.NewCosmicTree(t).Toolkit("icon_theme", `"Adwaita"`)

	tk, err := theme.NewConfigProvider(tree.Store()).Toolkit()
	if err == nil {
		t.Error("expected not-found errors for the remaining keys")
	}

	if tk.IconTheme != "Adwaita" {
		t.Errorf("IconTheme: got %q", tk.IconTheme)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
