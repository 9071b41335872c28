package cli

import (
	"gopkg.in/yaml.v3"

	"github.com/kyleking/cutecosmic/internal/bridge"
	"github.com/kyleking/cutecosmic/internal/cstring"
)

// Snapshot is everything a native caller can read after a load.
type Snapshot struct {
	Theme             string    `yaml:"theme"`
	Mode              string    `yaml:"mode"`
	IsDark            bool      `yaml:"is_dark"`
	IsHighContrast    bool      `yaml:"is_high_contrast"`
	ShouldApplyColors bool      `yaml:"should_apply_colors"`
	IconTheme         string    `yaml:"icon_theme"`
	Palette           roleList  `yaml:"palette"`
	ExtendedPalette   roleList  `yaml:"extended_palette"`
	Fonts             FontsInfo `yaml:"fonts"`
}

// FontsInfo holds both configured fonts.
type FontsInfo struct {
	Interface FontInfo `yaml:"interface"`
	Monospace FontInfo `yaml:"monospace"`
}

// FontInfo is a font descriptor with its family copied out of C memory.
type FontInfo struct {
	Family  string `yaml:"family"`
	Style   string `yaml:"style"`
	Weight  int32  `yaml:"weight"`
	Stretch int32  `yaml:"stretch"`
}

// roleList marshals as an ordered mapping of role name to "#rrggbbaa".
type roleList bridge.Roles

func (r roleList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, role := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: role.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: role.Color.Hex(), Style: yaml.DoubleQuotedStyle},
		)
	}

	return node, nil
}

// capture reads the loaded cache through the same calls the C library makes,
// including the string export and release round trip.
func capture(b *bridge.Builder, mode string) Snapshot {
	var (
		p   bridge.Palette
		ext bridge.ExtendedPalette
	)

	b.Palette(&p)
	b.ExtendedPalette(&ext)

	icon := b.IconTheme()
	defer cstring.Release(icon)

	return Snapshot{
		Theme:             b.Cache().Theme().Name,
		Mode:              mode,
		IsDark:            b.IsDark(),
		IsHighContrast:    b.IsHighContrast(),
		ShouldApplyColors: b.ShouldApplyColors(),
		IconTheme:         cstring.String(icon),
		Palette:           roleList(p.Roles()),
		ExtendedPalette:   roleList(ext.Roles()),
		Fonts: FontsInfo{
			Interface: captureFont(b, bridge.FontInterface),
			Monospace: captureFont(b, bridge.FontMonospace),
		},
	}
}

func captureFont(b *bridge.Builder, kind bridge.FontKind) FontInfo {
	var f bridge.Font
	b.Font(kind, &f)
	defer cstring.Release(f.Family)

	return FontInfo{
		Family:  cstring.String(f.Family),
		Style:   f.Style.String(),
		Weight:  f.Weight,
		Stretch: f.Stretch,
	}
}
