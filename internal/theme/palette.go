package theme

// Palette is the raw color library a theme is derived from. Neutral0 is the
// end of the neutral ramp furthest from the text color.
type Palette struct {
	Name string

	BrightRed    Color
	BrightGreen  Color
	BrightOrange Color

	Gray1 Color // window background
	Gray2 Color // content background

	Neutral0  Color
	Neutral1  Color
	Neutral2  Color
	Neutral3  Color
	Neutral4  Color
	Neutral5  Color
	Neutral6  Color
	Neutral7  Color
	Neutral8  Color
	Neutral9  Color
	Neutral10 Color

	AccentBlue     Color
	AccentRed      Color
	AccentGreen    Color
	AccentWarmGrey Color
	AccentOrange   Color
	AccentYellow   Color
	AccentPurple   Color
	AccentPink     Color
	AccentIndigo   Color
}

// DarkPalette returns the default COSMIC dark palette.
func DarkPalette() Palette {
	return Palette{
		Name: "cosmic-dark",

		BrightRed:    mustHex("#ffa090"),
		BrightGreen:  mustHex("#5edb8c"),
		BrightOrange: mustHex("#ffa37d"),

		Gray1: mustHex("#1b1b1b"),
		Gray2: mustHex("#262626"),

		Neutral0:  mustHex("#000000"),
		Neutral1:  mustHex("#1b1b1b"),
		Neutral2:  mustHex("#303030"),
		Neutral3:  mustHex("#474747"),
		Neutral4:  mustHex("#5e5e5e"),
		Neutral5:  mustHex("#777777"),
		Neutral6:  mustHex("#919191"),
		Neutral7:  mustHex("#ababab"),
		Neutral8:  mustHex("#c6c6c6"),
		Neutral9:  mustHex("#e2e2e2"),
		Neutral10: mustHex("#ffffff"),

		AccentBlue:     mustHex("#63d0df"),
		AccentRed:      mustHex("#fda1a0"),
		AccentGreen:    mustHex("#92cf9c"),
		AccentWarmGrey: mustHex("#cabab4"),
		AccentOrange:   mustHex("#ffad00"),
		AccentYellow:   mustHex("#f7e062"),
		AccentPurple:   mustHex("#e79cfe"),
		AccentPink:     mustHex("#ff9cb1"),
		AccentIndigo:   mustHex("#a1c0eb"),
	}
}

// LightPalette returns the default COSMIC light palette.
func LightPalette() Palette {
	return Palette{
		Name: "cosmic-light",

		BrightRed:    mustHex("#a0252b"),
		BrightGreen:  mustHex("#3b6e43"),
		BrightOrange: mustHex("#a44d00"),

		Gray1: mustHex("#dbdbdb"),
		Gray2: mustHex("#e8e8e8"),

		Neutral0:  mustHex("#ffffff"),
		Neutral1:  mustHex("#e2e2e2"),
		Neutral2:  mustHex("#c6c6c6"),
		Neutral3:  mustHex("#ababab"),
		Neutral4:  mustHex("#919191"),
		Neutral5:  mustHex("#777777"),
		Neutral6:  mustHex("#5e5e5e"),
		Neutral7:  mustHex("#474747"),
		Neutral8:  mustHex("#303030"),
		Neutral9:  mustHex("#1b1b1b"),
		Neutral10: mustHex("#000000"),

		AccentBlue:     mustHex("#00525a"),
		AccentRed:      mustHex("#78292e"),
		AccentGreen:    mustHex("#185529"),
		AccentWarmGrey: mustHex("#554742"),
		AccentOrange:   mustHex("#624000"),
		AccentYellow:   mustHex("#534800"),
		AccentPurple:   mustHex("#68217a"),
		AccentPink:     mustHex("#86043a"),
		AccentIndigo:   mustHex("#2e496d"),
	}
}
