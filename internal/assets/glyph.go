package assets

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// glyphPalette maps glyph-art characters to pixel colors.
// '.' and ' ' are transparent.
var glyphPalette = map[rune]color.RGBA{
	'K': {0, 0, 0, 255},
	'W': {255, 255, 255, 255},
	'Y': {250, 220, 60, 255},
	'O': {250, 130, 10, 255},
	'R': {230, 60, 40, 255},
	'G': {0, 170, 0, 255},
	'D': {0, 95, 0, 255},
	'L': {120, 230, 80, 255},
	'B': {80, 190, 230, 255},
}

// ParseGlyphs decodes glyph art: one text row per pixel row, one character
// per pixel. Short rows are padded with transparency.
func ParseGlyphs(r io.Reader) (*image.RGBA, error) {
	var rows []string
	width := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("assets: failed to read glyphs: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("assets: empty glyph art")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if ch == '.' || ch == ' ' {
				continue
			}
			c, ok := glyphPalette[ch]
			if !ok {
				return nil, fmt.Errorf("assets: unknown glyph %q at %d,%d", ch, x, y)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// Decode reads a sprite, choosing the format from the file name.
func Decode(name string, r io.Reader) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		img, err := png.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("assets: failed to decode %s: %w", name, err)
		}
		return img, nil
	case ".txt":
		return ParseGlyphs(r)
	default:
		return nil, fmt.Errorf("assets: unsupported sprite format %q", name)
	}
}

// Scale resizes src to w by h with nearest-neighbour sampling, keeping
// pixel art crisp.
func Scale(src image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
