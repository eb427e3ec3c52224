// Package psf decodes PSF1 console fonts: a 4-byte header followed by a flat
// table of 256 fixed-size glyph bitmaps, one byte per row. The header (magic,
// mode, charsize) is skipped rather than validated, matching the fonts this
// tool is pointed at.
package psf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"psfont"
)

// HeaderSize is the size in bytes of the PSF1 header.
const HeaderSize = 4

// ErrMalformedFont reports an input too short to hold a full glyph table.
var ErrMalformedFont = errors.New("malformed PSF font")

// Options control the assumed glyph geometry.
type Options struct {
	// Height is the number of rows (and bytes) per glyph. Defaults to 16.
	Height int
	// Width is the number of pixel columns per row, at most 8. Defaults to 8.
	Width int
}

func (o *Options) geometry() (w, h int) {
	w, h = 8, 16
	if o != nil {
		if o.Width > 0 {
			w = o.Width
		}
		if o.Height > 0 {
			h = o.Height
		}
	}
	return w, h
}

// Decode reads a PSF1 font from r. The input must contain the full header and
// glyph table; anything shorter yields ErrMalformedFont rather than a partial
// font.
func Decode(r io.Reader, opts *Options) (*psfont.Font, error) {
	w, h := opts.geometry()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	need := HeaderSize + psfont.NumGlyphs*h
	if len(data) < need {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedFont, len(data), need)
	}

	// The table is immutable from here on, so glyphs may alias the buffer.
	table := data[HeaderSize:]
	glyphs := make([]psfont.Glyph, psfont.NumGlyphs)
	for cp := range glyphs {
		glyphs[cp] = psfont.Glyph(table[cp*h : (cp+1)*h])
	}

	return psfont.New(w, h, glyphs), nil
}

// Load opens and decodes the PSF1 font at path. The file is closed on every
// return path.
func Load(path string, opts *Options) (*psfont.Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	font, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return font, nil
}
