package xlsfmt

import "fmt"

// Color is an ARGB colour with an explicit validity flag.
//
// The zero value is the invalid "no colour" state. Getters on Format
// return the zero Color when a colour has never been set, or when only a
// theme colour reference is present: resolving theme references against
// the workbook theme is left to the caller.
type Color struct {
	a, r, g, b uint8
	valid      bool
}

// RGB returns a fully opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{a: 0xff, r: r, g: g, b: b, valid: true}
}

// ARGB returns a colour with an explicit alpha channel.
func ARGB(a, r, g, b uint8) Color {
	return Color{a: a, r: r, g: g, b: b, valid: true}
}

// Valid reports whether the colour carries a concrete value.
func (c Color) Valid() bool {
	return c.valid
}

// ARGB returns the packed 0xAARRGGBB value. Invalid colours pack to 0.
func (c Color) ARGB() uint32 {
	if !c.valid {
		return 0
	}
	return uint32(c.a)<<24 | uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
}

// String returns the colour as "#AARRGGBB", or "" for an invalid colour.
func (c Color) String() string {
	if !c.valid {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.a, c.r, c.g, c.b)
}
