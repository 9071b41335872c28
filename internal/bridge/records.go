// Package bridge snapshots the cached theme and toolkit settings into
// fixed-layout records for native callers.
//
// The records mirror C structs field for field. Do not reorder fields or add
// unexported ones.
package bridge

import (
	"fmt"
	"unsafe"
)

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha uint8
}

// Palette is the set of colors a native toolkit palette is built from.
type Palette struct {
	Window                Color
	WindowText            Color
	WindowTextDisabled    Color
	WindowComponent       Color
	Background            Color
	Text                  Color
	TextDisabled          Color
	Component             Color
	ComponentText         Color
	ComponentTextDisabled Color
	Button                Color
	ButtonText            Color
	ButtonTextDisabled    Color
	Tooltip               Color
	Accent                Color
	AccentText            Color
	AccentDisabled        Color
}

// ExtendedPalette holds severity colors with no native palette role.
type ExtendedPalette struct {
	Success     Color
	Destructive Color
	Warning     Color
}

// FontStyle is a C enum: 0 normal, 1 italic, 2 oblique.
type FontStyle int32

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleNames = [...]string{"normal", "italic", "oblique"}

func (s FontStyle) String() string {
	if s < 0 || int(s) >= len(fontStyleNames) {
		return fmt.Sprintf("FontStyle(%d)", int32(s))
	}

	return fontStyleNames[s]
}

// FontKind selects a configured font. It is a C enum.
type FontKind int32

const (
	FontInterface FontKind = iota
	FontMonospace
)

// Font describes a font face. Family is a C string owned by the caller once
// filled in; it must be released with cstring.Release.
type Font struct {
	Family  unsafe.Pointer
	Style   FontStyle
	Weight  int32
	Stretch int32
}
