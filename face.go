package psfont

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// face adapts a Font to golang.org/x/image/font.Face so extracted console
// fonts can be used with font.Drawer and friends. Cells are fixed-advance
// and the baseline sits on the bottom row of the cell.
type face struct {
	font *Font
}

// NewFace returns a font.Face backed by f.
func NewFace(f *Font) font.Face {
	return &face{f}
}

func (a *face) Close() error { return nil }

func (a *face) Metrics() font.Metrics {
	h := fixed.I(a.font.height)
	return font.Metrics{
		Height:     h,
		Ascent:     h,
		Descent:    0,
		XHeight:    fixed.I(a.font.height / 2),
		CapHeight:  h,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (a *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (a *face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if _, ok := a.font.Glyph(int(r)); !ok {
		return 0, false
	}
	return fixed.I(a.font.width), true
}

func (a *face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	if _, ok := a.font.Glyph(int(r)); !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds := fixed.R(0, -a.font.height, a.font.width, 0)
	return bounds, fixed.I(a.font.width), true
}

func (a *face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	g, ok := a.font.Glyph(int(r))
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	w, h := a.font.width, a.font.height
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for yy := 0; yy < h && yy < len(g); yy++ {
		for xx := 0; xx < w; xx++ {
			if g[yy]&(0x80>>uint(xx)) != 0 {
				mask.SetAlpha(xx, yy, color.Alpha{A: 0xFF})
			}
		}
	}

	x, y := dot.X.Floor(), dot.Y.Floor()
	dr := image.Rect(x, y-h, x+w, y)
	return dr, mask, image.Point{}, fixed.I(w), true
}
