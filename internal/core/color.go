package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBlack
	ColorDarkGreen
)

// palette holds an RGB reference for every named color except ColorDefault.
var palette = []struct {
	c       Color
	r, g, b int
}{
	{ColorRed, 170, 0, 0},
	{ColorGreen, 0, 170, 0},
	{ColorYellow, 170, 170, 0},
	{ColorBlue, 0, 0, 170},
	{ColorMagenta, 170, 0, 170},
	{ColorCyan, 0, 170, 170},
	{ColorWhite, 200, 200, 200},
	{ColorBrightRed, 255, 85, 85},
	{ColorBrightGreen, 85, 255, 85},
	{ColorBrightYellow, 255, 255, 85},
	{ColorBrightBlue, 85, 85, 255},
	{ColorBrightMagenta, 255, 85, 255},
	{ColorBrightCyan, 85, 255, 255},
	{ColorBrightWhite, 255, 255, 255},
	{ColorOrange, 255, 135, 0},
	{ColorGray, 138, 138, 138},
	{ColorBlack, 0, 0, 0},
	{ColorDarkGreen, 0, 95, 0},
}

// NearestColor maps an arbitrary color to the closest named terminal color.
func NearestColor(c color.Color) Color {
	r32, g32, b32, _ := c.RGBA()
	r, g, b := int(r32>>8), int(g32>>8), int(b32>>8)

	best := ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best = p.c
			bestDist = dist
		}
	}
	return best
}

// RGBA returns the reference RGB value of a named color.
// ColorDefault maps to white.
func (c Color) RGBA() color.RGBA {
	for _, p := range palette {
		if p.c == c {
			return color.RGBA{R: uint8(p.r), G: uint8(p.g), B: uint8(p.b), A: 0xff}
		}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
