// Package psfont is a small bitmap font library for PSF-style console fonts,
// where every glyph is a fixed-size cell of one byte-wide row bitmaps. It
// supports text drawing in the standard image and image/draw packages and is
// the in-memory model produced by the psfgen extraction tool.
//
// See the included psfgen tool to extract a font from a PSF1 file and emit it
// as a source-code table for use in other projects.
package psfont

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
)

// NumGlyphs is the number of glyph slots in a PSF1 font.
const NumGlyphs = 256

// ErrBadRange reports a code point range that does not describe a non-empty
// interval within the font's glyph table.
var ErrBadRange = errors.New("bad code point range")

// Glyph is the bitmap of a single character cell: one byte per row, bit 7 is
// the leftmost pixel.
type Glyph []byte

// Range is a half-open interval [Start, End) of code points.
type Range struct {
	Start, End int
}

// Printable covers the 96 printable ASCII characters, space through tilde.
var Printable = Range{0x20, 0x7F}

// Len returns the number of code points in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Validate reports whether the range is a usable slice of a glyph table.
func (r Range) Validate() error {
	if r.Start < 0 || r.End > NumGlyphs || r.Start >= r.End {
		return fmt.Errorf("%w: [%#02x, %#02x)", ErrBadRange, r.Start, r.End)
	}
	return nil
}

// Drawable is an interface which supports setting an x,y coordinate to a color.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// Font is a fixed-cell bitmap font: a table of glyphs indexed by code point,
// each exactly Height rows of Width pixels. A Font is immutable after
// construction.
type Font struct {
	width  int
	height int
	glyphs []Glyph
}

// New creates a Font with the provided cell width/height and glyph table.
// Glyphs are indexed by code point; the table need not have all 256 entries.
func New(w, h int, glyphs []Glyph) *Font {
	return &Font{w, h, glyphs}
}

// Width returns the cell width in pixels.
func (f *Font) Width() int { return f.width }

// Height returns the cell height in rows.
func (f *Font) Height() int { return f.height }

// Glyph returns the bitmap for the given code point. It returns false if the
// code point has no entry in the table. The returned slice aliases the font's
// data and must not be modified.
func (f *Font) Glyph(cp int) (Glyph, bool) {
	if cp < 0 || cp >= len(f.glyphs) {
		return nil, false
	}
	return f.glyphs[cp], true
}

// Slice returns the glyphs for the code points in r, in ascending order. The
// result is deterministic for a given font and range.
func (f *Font) Slice(r Range) ([]Glyph, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.End > len(f.glyphs) {
		return nil, fmt.Errorf("%w: font has only %d glyphs", ErrBadRange, len(f.glyphs))
	}
	return f.glyphs[r.Start:r.End], nil
}

// DrawRune uses this Font to display a single code point in the provided color
// and position in Drawable. The x,y position represents the top-left corner of
// the cell. Drawable.Set is called for each opaque pixel in the glyph, leaving
// all other pixels in the Drawable as-is. If the code point has no glyph,
// DrawRune returns false and no drawing is done.
func (f *Font) DrawRune(dr Drawable, x, y int, cp int, clr color.Color) bool {
	g, ok := f.Glyph(cp)
	if !ok {
		return false
	}
	for yy := 0; yy < f.height && yy < len(g); yy++ {
		row := g[yy]
		for xx := 0; xx < f.width; xx++ {
			if row&(0x80>>uint(xx)) != 0 {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
	return true
}

// DrawString displays text in the provided color at the specified start
// position in Drawable. The x,y position represents the top-left corner of the
// first character's cell. Cells are advanced by the font width; PSF cells
// carry their own inter-character spacing.
func (f *Font) DrawString(dr Drawable, x, y int, s string, clr color.Color) {
	for _, c := range s {
		f.DrawRune(dr, x, y, int(c), clr)
		x += f.width
	}
}

///////

// StringDrawable implements Drawable using a text grid, with an 'X' for every
// set pixel. Useful for eyeballing extracted glyphs on a terminal.
type StringDrawable struct {
	lines [][]byte
}

func (s *StringDrawable) Set(x, y int, c color.Color) {
	for len(s.lines) <= y {
		s.lines = append(s.lines, nil)
	}
	for len(s.lines[y]) <= x {
		s.lines[y] = append(s.lines[y], ' ')
	}
	s.lines[y][x] = 'X'
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable with
// a user-provided prefix before each line. Useful for adding output in code
// comments.
func (s *StringDrawable) PrefixString(p string) string {
	var b bytes.Buffer
	for _, line := range s.lines {
		b.WriteString(p)
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
