package psf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psfont"
)

// fontFile builds a synthetic PSF1 file: a 4-byte header followed by a
// 256-glyph table whose bytes are a function of their absolute offset.
func fontFile(height int) []byte {
	data := make([]byte, HeaderSize+psfont.NumGlyphs*height)
	data[0], data[1] = 0x36, 0x04 // PSF1 magic, skipped by the decoder
	for i := HeaderSize; i < len(data); i++ {
		data[i] = byte(i * 7)
	}
	return data
}

func TestDecodeOffsets(t *testing.T) {
	raw := fontFile(16)
	font, err := Decode(bytes.NewReader(raw), nil)
	require.NoError(t, err)

	assert.Equal(t, 8, font.Width())
	assert.Equal(t, 16, font.Height())

	for cp := 0; cp < psfont.NumGlyphs; cp++ {
		g, ok := font.Glyph(cp)
		require.True(t, ok, "glyph %#02x", cp)
		require.Len(t, g, 16, "glyph %#02x", cp)
		for row := 0; row < 16; row++ {
			require.Equal(t, raw[HeaderSize+cp*16+row], g[row],
				"glyph %#02x row %d", cp, row)
		}
	}

	// spot-check the printable boundaries against absolute file offsets
	space, _ := font.Glyph(0x20)
	assert.Equal(t, raw[516], space[0])
	tilde, _ := font.Glyph(0x7E)
	assert.Equal(t, raw[2020], tilde[0])
}

func TestDecodePrintableSubset(t *testing.T) {
	font, err := Decode(bytes.NewReader(fontFile(16)), nil)
	require.NoError(t, err)

	glyphs, err := font.Slice(psfont.Printable)
	require.NoError(t, err)
	require.Len(t, glyphs, 96)
	for _, g := range glyphs {
		assert.Len(t, []byte(g), 16)
	}
}

func TestDecodeShort(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, 10)), nil)
	require.ErrorIs(t, err, ErrMalformedFont)

	// one byte short of a full table
	raw := fontFile(16)
	_, err = Decode(bytes.NewReader(raw[:len(raw)-1]), nil)
	require.ErrorIs(t, err, ErrMalformedFont)

	// exactly full is fine
	_, err = Decode(bytes.NewReader(raw), nil)
	require.NoError(t, err)
}

func TestDecodeGeometry(t *testing.T) {
	font, err := Decode(bytes.NewReader(fontFile(8)), &Options{Height: 8, Width: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, font.Width())
	assert.Equal(t, 8, font.Height())

	g, ok := font.Glyph(0xFF)
	require.True(t, ok)
	assert.Len(t, []byte(g), 8)

	// a 16-row table read with the default geometry must not fit an 8-row file
	_, err = Decode(bytes.NewReader(fontFile(8)), nil)
	require.ErrorIs(t, err, ErrMalformedFont)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.psf")
	require.NoError(t, os.WriteFile(path, fontFile(16), 0644))

	font, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 16, font.Height())

	_, err = Load(filepath.Join(dir, "missing.psf"), nil)
	require.Error(t, err)
}
