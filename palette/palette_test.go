package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/bodgit/snespal/bgr15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, tbl *Table, p int, c bgr15.Color) {
	for i := 0; i < ColorsPerPalette; i++ {
		require.NoError(t, tbl.Set(p*ColorsPerPalette+i, c))
	}
}

func TestGetSet(t *testing.T) {
	tbl := New()

	require.NoError(t, tbl.Set(42, 0x1234))
	c, err := tbl.Get(42)
	require.NoError(t, err)
	assert.Equal(t, bgr15.Color(0x1234), c)

	require.NoError(t, tbl.Set(43, 0xffff))
	c, err = tbl.Get(43)
	require.NoError(t, err)
	assert.Equal(t, bgr15.Color(0x7fff), c)
}

func TestBounds(t *testing.T) {
	tbl := New()

	_, err := tbl.Get(256)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = tbl.Get(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.Is(tbl.Set(256, 1), ErrOutOfRange))

	assert.True(t, errors.Is(tbl.CopySubPalette(16, 0), ErrInvalidArgument))
	assert.True(t, errors.Is(tbl.CopySubPalette(0, 16), ErrInvalidArgument))
	assert.True(t, errors.Is(tbl.RotateSubPalette(-1), ErrInvalidArgument))

	assert.Equal(t, [Size]bgr15.Color{}, tbl.Colors())
}

func TestCopySubPalette(t *testing.T) {
	tbl := New()
	fill(t, tbl, 0, 0x0001)
	fill(t, tbl, 5, 0x0002)

	require.NoError(t, tbl.CopySubPalette(0, 5))

	src, err := tbl.SubPalette(0)
	require.NoError(t, err)
	dst, err := tbl.SubPalette(5)
	require.NoError(t, err)

	for i := 0; i < ColorsPerPalette; i++ {
		assert.Equal(t, bgr15.Color(0x0001), src[i])
		assert.Equal(t, bgr15.Color(0x0001), dst[i])
	}
}

func TestCopySubPaletteAdjacent(t *testing.T) {
	tbl := New()
	for i := 0; i < 2*ColorsPerPalette; i++ {
		require.NoError(t, tbl.Set(i, bgr15.Color(i)))
	}
	before := tbl.Colors()

	require.NoError(t, tbl.CopySubPalette(0, 1))
	require.NoError(t, tbl.CopySubPalette(1, 1))

	after := tbl.Colors()
	assert.Equal(t, before[:ColorsPerPalette], after[:ColorsPerPalette])
	assert.Equal(t, before[:ColorsPerPalette], after[ColorsPerPalette:2*ColorsPerPalette])
}

func TestRotateSubPalette(t *testing.T) {
	tbl := New()
	for i := 0; i < ColorsPerPalette; i++ {
		require.NoError(t, tbl.Set(3*ColorsPerPalette+i, bgr15.Color(i)))
	}

	require.NoError(t, tbl.RotateSubPalette(3))

	sub, err := tbl.SubPalette(3)
	require.NoError(t, err)
	assert.Equal(t, [ColorsPerPalette]bgr15.Color{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 1}, sub)

	// Sub-palettes either side are untouched
	c, _ := tbl.Get(2*ColorsPerPalette + 15)
	assert.Equal(t, bgr15.Color(0), c)
	c, _ = tbl.Get(4 * ColorsPerPalette)
	assert.Equal(t, bgr15.Color(0), c)
}

func TestSetSubPalette(t *testing.T) {
	tbl := New()
	var sub [ColorsPerPalette]bgr15.Color
	for i := range sub {
		sub[i] = 0x7c00
	}
	require.NoError(t, tbl.SetSubPalette(15, sub))

	c, _ := tbl.Get(255)
	assert.Equal(t, bgr15.Color(0x7c00), c)
	c, _ = tbl.Get(239)
	assert.Equal(t, bgr15.Color(0), c)
	assert.True(t, errors.Is(tbl.SetSubPalette(16, sub), ErrInvalidArgument))
}

func TestLoadClear(t *testing.T) {
	tbl := New()
	colors := make([]bgr15.Color, Size)
	for i := range colors {
		colors[i] = bgr15.Color(i)
	}

	assert.True(t, errors.Is(tbl.Load(colors[:10]), ErrInvalidArgument))
	assert.Equal(t, [Size]bgr15.Color{}, tbl.Colors())

	require.NoError(t, tbl.Load(colors))
	exported := tbl.Colors()
	assert.Equal(t, colors, exported[:])

	dup := tbl.Clone()
	assert.True(t, dup.Equal(tbl))

	tbl.Clear()
	assert.Equal(t, [Size]bgr15.Color{}, tbl.Colors())
	assert.False(t, dup.Equal(tbl))
}

func TestPalette(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Set(1, 0x001f))

	p := tbl.Palette()
	assert.Len(t, p, Size)
	assert.Equal(t, 1, p.Index(color.RGBA{0xff, 0x00, 0x00, 0xff}))
}

func TestReplaceMasksBit15(t *testing.T) {
	tbl := New()
	var colors [Size]bgr15.Color
	colors[0] = 0xffff
	colors[255] = 0x8001

	tbl.Replace(colors)

	c, err := tbl.Get(0)
	require.NoError(t, err)
	assert.Equal(t, bgr15.Color(0x7fff), c)
	c, err = tbl.Get(255)
	require.NoError(t, err)
	assert.Equal(t, bgr15.Color(0x0001), c)
}
