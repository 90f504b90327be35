package bgr15

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandContract(t *testing.T) {
	for v := uint16(0); v < Levels; v++ {
		assert.Equal(t, v, uint16(expand(v))>>3, "level %d", v)
	}
}

func TestFromRGB(t *testing.T) {
	tables := []struct {
		r, g, b uint8
		c       Color
	}{
		{0xf8, 0xf8, 0xf8, 0x7fff},
		{0xff, 0xff, 0xff, 0x7fff},
		{0x00, 0x00, 0x00, 0x0000},
		{0xff, 0x00, 0x00, 0x001f},
		{0x00, 0xff, 0x00, 0x03e0},
		{0x00, 0x00, 0xff, 0x7c00},
		{0x07, 0x07, 0x07, 0x0000},
		{0x08, 0x10, 0x18, 0x0c41},
	}

	for _, table := range tables {
		assert.Equal(t, table.c, FromRGB(table.r, table.g, table.b))
	}
}

func TestRGB(t *testing.T) {
	r, g, b := Color(0x7fff).RGB()
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	r, g, b = Color(0x0c41).RGB()
	assert.Equal(t, [3]uint8{8, 16, 24}, [3]uint8{r, g, b})
}

func TestRoundTrip(t *testing.T) {
	for c := Color(0); c <= Mask; c++ {
		if !assert.Equal(t, c, FromRGB(c.RGB())) {
			break
		}
	}
}

func TestLossy(t *testing.T) {
	r, g, b := FromRGB(0x0f, 0x80, 0xfe).RGB()
	assert.NotEqual(t, [3]uint8{0x0f, 0x80, 0xfe}, [3]uint8{r, g, b})
}

func TestModel(t *testing.T) {
	assert.Equal(t, Color(0x001f), Model.Convert(color.RGBA{0xff, 0x00, 0x00, 0xff}))
	assert.Equal(t, Color(0x1234), Model.Convert(Color(0x1234)))

	r, g, b, a := Color(0x7fff).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestString(t *testing.T) {
	assert.Equal(t, "$7FFF", Color(0x7fff).String())
	assert.Equal(t, "$0001", Color(1).String())
}
