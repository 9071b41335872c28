package bridge

import "github.com/kyleking/cutecosmic/internal/theme"

// Numeric codes follow the QFont::Weight and QFont::Stretch conventions.
var (
	styleCodes = [...]FontStyle{
		theme.StyleNormal:  FontStyleNormal,
		theme.StyleItalic:  FontStyleItalic,
		theme.StyleOblique: FontStyleOblique,
	}

	weightCodes = [...]int32{
		theme.WeightThin:       100,
		theme.WeightExtraLight: 200,
		theme.WeightLight:      300,
		theme.WeightNormal:     400,
		theme.WeightMedium:     500,
		theme.WeightSemibold:   600,
		theme.WeightBold:       700,
		theme.WeightExtraBold:  800,
		theme.WeightBlack:      900,
	}

	stretchCodes = [...]int32{
		theme.StretchUltraCondensed: 50,
		theme.StretchExtraCondensed: 62,
		theme.StretchCondensed:      75,
		theme.StretchSemiCondensed:  87,
		theme.StretchNormal:         100,
		theme.StretchSemiExpanded:   112,
		theme.StretchExpanded:       125,
		theme.StretchExtraExpanded:  150,
		theme.StretchUltraExpanded:  200,
	}
)

// Each table must have exactly one entry per variant; a new variant in the
// theme package fails the build here until it is mapped.
var (
	_ [len(styleCodes) - theme.NumFontStyles]struct{}
	_ [theme.NumFontStyles - len(styleCodes)]struct{}
	_ [len(weightCodes) - theme.NumFontWeights]struct{}
	_ [theme.NumFontWeights - len(weightCodes)]struct{}
	_ [len(stretchCodes) - theme.NumFontStretches]struct{}
	_ [theme.NumFontStretches - len(stretchCodes)]struct{}
)

// MapStyle returns the native style code for s.
func MapStyle(s theme.FontStyle) FontStyle {
	return styleCodes[s]
}

// MapWeight returns the native weight code for w.
func MapWeight(w theme.FontWeight) int32 {
	return weightCodes[w]
}

// MapStretch returns the native stretch code for s.
func MapStretch(s theme.FontStretch) int32 {
	return stretchCodes[s]
}
