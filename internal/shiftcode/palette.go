package shiftcode

import "strconv"

// Color is a "#RRGGBB" hex color; the empty Color means "no styling".
type Color string

// Palette holds every color the presenter may emit.
type Palette struct {
	KindLabel Color
	Neutral   Color
	Saturday  Color
	Holiday   Color
	Filled    Color

	// Specials maps a special keyword to its cell background. Keywords in
	// the parser vocabulary but missing here render bold without background.
	Specials map[Kind]Color
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		KindLabel: "#7F7F7F",
		Neutral:   "#000000",
		Saturday:  "#E6F2FF",
		Holiday:   "#FFE6E6",
		Filled:    "#D9D9D9",
		Specials: map[Kind]Color{
			KindDayOff:   "#FFC7CE",
			KindKanoya:   "#C6EFCE",
			KindKagoKita: "#FFEB9C",
			KindRecruit:  "#BDD7EE",
		},
	}
}

// RGB splits c into its components. ok is false for the empty color or a
// value that is not #RRGGBB.
func (c Color) RGB() (r, g, b int, ok bool) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// Valid reports whether c is a well-formed #RRGGBB value.
func (c Color) Valid() bool {
	_, _, _, ok := c.RGB()
	return ok
}
