package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FontStyle is the slant of a font face.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
	StyleOblique

	// NumFontStyles is the number of FontStyle variants.
	NumFontStyles = iota
)

// FontWeight is the boldness of a font face.
type FontWeight int

const (
	WeightThin FontWeight = iota
	WeightExtraLight
	WeightLight
	WeightNormal
	WeightMedium
	WeightSemibold
	WeightBold
	WeightExtraBold
	WeightBlack

	// NumFontWeights is the number of FontWeight variants.
	NumFontWeights = iota
)

// FontStretch is the width of a font face.
type FontStretch int

const (
	StretchUltraCondensed FontStretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded

	// NumFontStretches is the number of FontStretch variants.
	NumFontStretches = iota
)

var styleNames = [NumFontStyles]string{"Normal", "Italic", "Oblique"}

var weightNames = [NumFontWeights]string{
	"Thin", "ExtraLight", "Light", "Normal", "Medium", "Semibold", "Bold", "ExtraBold", "Black",
}

var stretchNames = [NumFontStretches]string{
	"UltraCondensed", "ExtraCondensed", "Condensed", "SemiCondensed", "Normal",
	"SemiExpanded", "Expanded", "ExtraExpanded", "UltraExpanded",
}

func (s FontStyle) String() string { return enumName(styleNames[:], int(s)) }

func (w FontWeight) String() string { return enumName(weightNames[:], int(w)) }

func (s FontStretch) String() string { return enumName(stretchNames[:], int(s)) }

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}

	return names[i]
}

func enumIndex(names []string, kind, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unknown font %s %q", kind, name)
}

// UnmarshalYAML decodes a variant name such as "Italic".
func (s *FontStyle) UnmarshalYAML(value *yaml.Node) error {
	i, err := enumIndex(styleNames[:], "style", value.Value)
	if err != nil {
		return err
	}
	*s = FontStyle(i)
	return nil
}

// UnmarshalYAML decodes a variant name such as "Semibold".
func (w *FontWeight) UnmarshalYAML(value *yaml.Node) error {
	i, err := enumIndex(weightNames[:], "weight", value.Value)
	if err != nil {
		return err
	}
	*w = FontWeight(i)
	return nil
}

// UnmarshalYAML decodes a variant name such as "Condensed".
func (s *FontStretch) UnmarshalYAML(value *yaml.Node) error {
	i, err := enumIndex(stretchNames[:], "stretch", value.Value)
	if err != nil {
		return err
	}
	*s = FontStretch(i)
	return nil
}

// Font describes a configured font face.
type Font struct {
	Family  string      `yaml:"family"`
	Weight  FontWeight  `yaml:"weight"`
	Stretch FontStretch `yaml:"stretch"`
	Style   FontStyle   `yaml:"style"`
}

// UnmarshalYAML decodes a font, keeping Normal for omitted properties.
func (f *Font) UnmarshalYAML(value *yaml.Node) error {
	type plain Font
	raw := plain{Weight: WeightNormal, Stretch: StretchNormal, Style: StyleNormal}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Family == "" {
		return fmt.Errorf("font family must not be empty")
	}
	*f = Font(raw)
	return nil
}
