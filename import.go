package snespal

import (
	"image"
	"image/color"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/palette"
	"github.com/ericpauley/go-quantize/quantize"
)

// Use the image's own palette if it fits, otherwise quantize down to n colors
func imagePalette(m image.Image, n int) color.Palette {
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= n {
		return pm.Palette
	}
	if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= n {
		return cp
	}
	q := quantize.MedianCutQuantizer{}
	return q.Quantize(make(color.Palette, 0, n), m)
}

// FromImage builds a palette from the colors in m. Unused entries are black.
func FromImage(m image.Image) *palette.Table {
	var colors [palette.Size]bgr15.Color
	for i, c := range imagePalette(m, palette.Size) {
		if i == len(colors) {
			break
		}
		colors[i] = bgr15.Model.Convert(c).(bgr15.Color)
	}

	t := palette.New()
	t.Replace(colors)
	return t
}

// SubPaletteFromImage reduces m to at most 16 colors. Unused entries are
// black.
func SubPaletteFromImage(m image.Image) [palette.ColorsPerPalette]bgr15.Color {
	var colors [palette.ColorsPerPalette]bgr15.Color
	for i, c := range imagePalette(m, palette.ColorsPerPalette) {
		if i == len(colors) {
			break
		}
		colors[i] = bgr15.Model.Convert(c).(bgr15.Color)
	}
	return colors
}
