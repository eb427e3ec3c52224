package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"psfont"
)

const previewColumns = 16

// writePreview renders the selected glyphs as a grid sheet PNG, one pixel of
// gutter around each cell, so the extraction can be checked by eye.
func writePreview(path string, font *psfont.Font, rng psfont.Range) error {
	cw, ch := font.Width()+1, font.Height()+1
	rows := (rng.Len() + previewColumns - 1) / previewColumns

	img := image.NewRGBA(image.Rect(0, 0, 1+previewColumns*cw, 1+rows*ch))
	background := color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	foreground := color.RGBA{0x10, 0x10, 0x10, 0xFF}
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, cp := 0, rng.Start; cp < rng.End; i, cp = i+1, cp+1 {
		x := 1 + (i%previewColumns)*cw
		y := 1 + (i/previewColumns)*ch
		font.DrawRune(img, x, y, cp, foreground)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
