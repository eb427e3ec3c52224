package psfont

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestFaceMetrics(t *testing.T) {
	face := NewFace(testFont())
	m := face.Metrics()
	assert.Equal(t, fixed.I(16), m.Height)
	assert.Equal(t, fixed.I(16), m.Ascent)
	assert.Equal(t, fixed.Int26_6(0), m.Descent)
}

func TestFaceGlyphAdvance(t *testing.T) {
	face := NewFace(testFont())

	adv, ok := face.GlyphAdvance('A')
	require.True(t, ok)
	assert.Equal(t, fixed.I(8), adv)

	_, ok = face.GlyphAdvance('☃')
	assert.False(t, ok)

	assert.Equal(t, fixed.Int26_6(0), face.Kern('A', 'B'))
}

func TestFaceGlyph(t *testing.T) {
	glyphs := make([]Glyph, NumGlyphs)
	g := make(Glyph, 16)
	g[0] = 0b10000001
	glyphs['A'] = g
	face := NewFace(New(8, 16, glyphs))

	dot := fixed.P(10, 20)
	dr, mask, maskp, adv, ok := face.Glyph(dot, 'A')
	require.True(t, ok)

	assert.Equal(t, image.Rect(10, 4, 18, 20), dr)
	assert.Equal(t, image.Point{}, maskp)
	assert.Equal(t, fixed.I(8), adv)

	alpha := mask.(*image.Alpha)
	assert.EqualValues(t, 0xFF, alpha.AlphaAt(0, 0).A)
	assert.EqualValues(t, 0xFF, alpha.AlphaAt(7, 0).A)
	assert.EqualValues(t, 0, alpha.AlphaAt(1, 0).A)
	assert.EqualValues(t, 0, alpha.AlphaAt(0, 1).A)

	_, _, _, _, ok = face.Glyph(dot, '☃')
	assert.False(t, ok)
}
