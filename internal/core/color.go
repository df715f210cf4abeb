package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Terminals get the ANSI 256-color code, the window frontend the RGBA value.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	colorCount
)

type paletteEntry struct {
	name string
	ansi string
	rgba color.RGBA
}

var palette = [colorCount]paletteEntry{
	ColorDefault:       {"default", "", color.RGBA{0xd0, 0xd0, 0xd0, 0xff}},
	ColorRed:           {"red", "1", color.RGBA{0xc0, 0x39, 0x2b, 0xff}},
	ColorGreen:         {"green", "2", color.RGBA{0x53, 0x8a, 0x2e, 0xff}},
	ColorYellow:        {"yellow", "3", color.RGBA{0xde, 0xd8, 0x95, 0xff}},
	ColorBlue:          {"blue", "4", color.RGBA{0x1f, 0x3a, 0x68, 0xff}},
	ColorMagenta:       {"magenta", "5", color.RGBA{0x8e, 0x44, 0xad, 0xff}},
	ColorCyan:          {"cyan", "6", color.RGBA{0x4e, 0xc0, 0xca, 0xff}},
	ColorWhite:         {"white", "7", color.RGBA{0xe0, 0xe0, 0xe0, 0xff}},
	ColorBrightRed:     {"bright-red", "9", color.RGBA{0xf5, 0x4b, 0x3c, 0xff}},
	ColorBrightGreen:   {"bright-green", "10", color.RGBA{0x73, 0xbf, 0x2e, 0xff}},
	ColorBrightYellow:  {"bright-yellow", "11", color.RGBA{0xf8, 0xd8, 0x20, 0xff}},
	ColorBrightBlue:    {"bright-blue", "12", color.RGBA{0x3b, 0x8e, 0xea, 0xff}},
	ColorBrightMagenta: {"bright-magenta", "13", color.RGBA{0xd9, 0x6c, 0xf5, 0xff}},
	ColorBrightCyan:    {"bright-cyan", "14", color.RGBA{0x70, 0xe0, 0xf0, 0xff}},
	ColorBrightWhite:   {"bright-white", "15", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	ColorOrange:        {"orange", "208", color.RGBA{0xfc, 0xa0, 0x48, 0xff}},
	ColorGray:          {"gray", "245", color.RGBA{0x8a, 0x8a, 0x8a, 0xff}},
}

func (c Color) entry() paletteEntry {
	if c >= colorCount {
		return palette[ColorDefault]
	}
	return palette[c]
}

// String returns the color name.
func (c Color) String() string {
	return c.entry().name
}

// ANSI returns the 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	return c.entry().ansi
}

// RGBA returns the color used by pixel frontends.
func (c Color) RGBA() color.RGBA {
	return c.entry().rgba
}

// Fade returns the color with alpha scaled to a in [0, 255].
func (c Color) Fade(a float64) color.RGBA {
	rgba := c.RGBA()
	k := ClampF(a, 0, 255) / 255
	return color.RGBA{
		R: uint8(float64(rgba.R) * k),
		G: uint8(float64(rgba.G) * k),
		B: uint8(float64(rgba.B) * k),
		A: uint8(float64(rgba.A) * k),
	}
}
