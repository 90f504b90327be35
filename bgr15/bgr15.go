/*
Package bgr15 implements the packed 15-bit color format used by the Super
Nintendo graphics hardware.

Each color is stored as a 16-bit value laid out as 0BBBBBGGGGGRRRRR, five bits
per channel with red in the least significant bits. Bit 15 is always clear.
*/
package bgr15

import (
	"fmt"
	"image/color"
)

const (
	// Mask covers the 15 bits that carry color information
	Mask = 0x7fff

	// Levels is the number of intensity levels per channel
	Levels = 1 << 5

	channelMask = Levels - 1
)

// Color is a packed 15-bit color. It implements the color.Color interface.
type Color uint16

// FromRGB packs the 8-bit channels r, g and b into a Color. The low three bits
// of each channel are discarded.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(b>>3)<<10 | uint16(g>>3)<<5 | uint16(r>>3))
}

func expand(v uint16) uint8 {
	return uint8(v * 255 / 31)
}

// RGB unpacks c into 8-bit channels, scaling each 5-bit field to the range
// 0-255. Packing the result again with FromRGB returns c.
func (c Color) RGB() (r, g, b uint8) {
	r = expand(uint16(c) & channelMask)
	g = expand(uint16(c) >> 5 & channelMask)
	b = expand(uint16(c) >> 10 & channelMask)
	return
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	a = 0xffff
	return
}

// String returns c in the "$7FFF" hexadecimal notation.
func (c Color) String() string {
	return fmt.Sprintf("$%04X", uint16(c))
}

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(model)
