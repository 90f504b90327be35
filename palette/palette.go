/*
Package palette implements the 256 color table edited by snespal.

The table is split into 16 sub-palettes of 16 colors; sub-palette p occupies
indices p*16 through p*16+15. Every index is validated, an out of range index
is reported as an error rather than wrapping.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/bodgit/snespal/bgr15"
)

const (
	// ColorsPerPalette is the number of colors in a sub-palette
	ColorsPerPalette = 16
	// SubPalettes is the number of sub-palettes in a table
	SubPalettes = 16
	// Size is the number of colors in a table
	Size = ColorsPerPalette * SubPalettes
)

var (
	// ErrOutOfRange is returned for a color index outside 0-255
	ErrOutOfRange = errors.New("palette: index out of range")
	// ErrInvalidArgument is returned for a sub-palette index outside 0-15
	// or a malformed bulk load
	ErrInvalidArgument = errors.New("palette: invalid argument")
	// ErrTruncated is returned by decoders when a file holds fewer
	// colors than a full table
	ErrTruncated = errors.New("palette: truncated data")
)

// Table is a fixed size table of packed colors. The zero value is a table of
// black.
type Table struct {
	colors [Size]bgr15.Color
}

// New returns an empty table.
func New() *Table {
	return new(Table)
}

func checkIndex(i int) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return nil
}

func checkSubPalette(p int) error {
	if p < 0 || p >= SubPalettes {
		return fmt.Errorf("%w: sub-palette %d", ErrInvalidArgument, p)
	}
	return nil
}

// Get returns the color at index i.
func (t *Table) Get(i int) (bgr15.Color, error) {
	if err := checkIndex(i); err != nil {
		return 0, err
	}
	return t.colors[i], nil
}

// Set replaces the color at index i. Bit 15 of c is discarded.
func (t *Table) Set(i int, c bgr15.Color) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	t.colors[i] = c & bgr15.Mask
	return nil
}

// CopySubPalette replaces sub-palette dst with the contents of sub-palette
// src.
func (t *Table) CopySubPalette(src, dst int) error {
	if err := checkSubPalette(src); err != nil {
		return err
	}
	if err := checkSubPalette(dst); err != nil {
		return err
	}

	var tmp [ColorsPerPalette]bgr15.Color
	copy(tmp[:], t.colors[src*ColorsPerPalette:])
	copy(t.colors[dst*ColorsPerPalette:], tmp[:])

	return nil
}

// RotateSubPalette shifts colors 1 to 15 of sub-palette p one place towards
// the start, the first of them wrapping around to the end. Color 0 is the
// transparent slot and is left alone.
func (t *Table) RotateSubPalette(p int) error {
	if err := checkSubPalette(p); err != nil {
		return err
	}

	s := t.colors[p*ColorsPerPalette+1 : (p+1)*ColorsPerPalette]
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first

	return nil
}

// SubPalette returns a copy of the 16 colors in sub-palette p.
func (t *Table) SubPalette(p int) ([ColorsPerPalette]bgr15.Color, error) {
	var sub [ColorsPerPalette]bgr15.Color
	if err := checkSubPalette(p); err != nil {
		return sub, err
	}
	copy(sub[:], t.colors[p*ColorsPerPalette:])
	return sub, nil
}

// SetSubPalette replaces the colors in sub-palette p.
func (t *Table) SetSubPalette(p int, colors [ColorsPerPalette]bgr15.Color) error {
	if err := checkSubPalette(p); err != nil {
		return err
	}
	for i, c := range colors {
		t.colors[p*ColorsPerPalette+i] = c & bgr15.Mask
	}
	return nil
}

// Clear resets every color to black.
func (t *Table) Clear() {
	t.colors = [Size]bgr15.Color{}
}

// Load replaces the whole table with colors, which must hold exactly Size
// entries. The table is untouched on error.
func (t *Table) Load(colors []bgr15.Color) error {
	if len(colors) != Size {
		return fmt.Errorf("%w: %d colors, need %d", ErrInvalidArgument, len(colors), Size)
	}
	for i, c := range colors {
		t.colors[i] = c & bgr15.Mask
	}
	return nil
}

// Replace is the infallible form of Load.
func (t *Table) Replace(colors [Size]bgr15.Color) {
	for i, c := range colors {
		t.colors[i] = c & bgr15.Mask
	}
}

// Colors returns a copy of the whole table.
func (t *Table) Colors() [Size]bgr15.Color {
	return t.colors
}

// Palette returns the table as a color.Palette, for use with image.Paletted.
func (t *Table) Palette() color.Palette {
	p := make(color.Palette, Size)
	for i, c := range t.colors {
		p[i] = c
	}
	return p
}

// Equal reports whether t and o hold the same colors.
func (t *Table) Equal(o *Table) bool {
	return t.colors == o.colors
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	dup := *t
	return &dup
}
