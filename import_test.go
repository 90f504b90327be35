package snespal

import (
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/snespal/bgr15"
	"github.com/stretchr/testify/assert"
)

func TestFromImagePaletted(t *testing.T) {
	p := color.Palette{
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0xff, 0x00, 0xff},
		color.RGBA{0x00, 0x00, 0xff, 0xff},
	}
	m := image.NewPaletted(image.Rect(0, 0, 4, 4), p)

	tbl := FromImage(m)
	colors := tbl.Colors()
	assert.Equal(t, []bgr15.Color{0x001f, 0x03e0, 0x7c00, 0x0000}, colors[:4])
}

func TestSubPaletteFromImage(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			m.Set(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), 0x80, 0xff})
		}
	}

	sub := SubPaletteFromImage(m)
	distinct := make(map[bgr15.Color]struct{})
	for _, c := range sub {
		distinct[c] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
	assert.LessOrEqual(t, len(distinct), len(sub))
}
