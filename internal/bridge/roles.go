package bridge

import "fmt"

// Role is a named palette entry, named as in the C header.
type Role struct {
	Name  string
	Color Color
}

// Roles is an ordered list of named colors. It satisfies fuzzy.Source.
type Roles []Role

func (r Roles) String(i int) string { return r[i].Name }

func (r Roles) Len() int { return len(r) }

// Roles lists the palette entries in field order.
func (p *Palette) Roles() Roles {
	return Roles{
		{"window", p.Window},
		{"window_text", p.WindowText},
		{"window_text_disabled", p.WindowTextDisabled},
		{"window_component", p.WindowComponent},
		{"background", p.Background},
		{"text", p.Text},
		{"text_disabled", p.TextDisabled},
		{"component", p.Component},
		{"component_text", p.ComponentText},
		{"component_text_disabled", p.ComponentTextDisabled},
		{"button", p.Button},
		{"button_text", p.ButtonText},
		{"button_text_disabled", p.ButtonTextDisabled},
		{"tooltip", p.Tooltip},
		{"accent", p.Accent},
		{"accent_text", p.AccentText},
		{"accent_disabled", p.AccentDisabled},
	}
}

// Roles lists the extended palette entries in field order.
func (p *ExtendedPalette) Roles() Roles {
	return Roles{
		{"success", p.Success},
		{"destructive", p.Destructive},
		{"warning", p.Warning},
	}
}

// Roles snapshots the palette and the extended palette, in that order.
func (b *Builder) Roles() Roles {
	var (
		p   Palette
		ext ExtendedPalette
	)

	b.Palette(&p)
	b.ExtendedPalette(&ext)

	return append(p.Roles(), ext.Roles()...)
}

// Hex returns "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red, c.Green, c.Blue, c.Alpha)
}

// RGBHex returns "#rrggbb", dropping alpha.
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}
