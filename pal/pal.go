/*
Package pal implements the raw RGB palette format.

A file is exactly 768 bytes: 256 red, green, blue triples of one byte each in
palette index order. Colors are converted to and from packed 15-bit form, so
the low three bits of each channel are lost on load.
*/
package pal

import (
	"errors"
	"io"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/palette"
)

const (
	// Extension is the file extension used for this format
	Extension = ".pal"

	// FileSize is the exact size of a file in bytes
	FileSize = palette.Size * 3
)

var errTooMuch = errors.New("pal: too much palette data")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return palette.ErrTruncated
	}
	return err
}

// Decode reads a palette from r. Trailing data after the 768 bytes is an
// error.
func Decode(r io.Reader) (*palette.Table, error) {
	var tmp [FileSize]byte
	if err := readFull(r, tmp[:]); err != nil {
		return nil, err
	}

	if n, err := r.Read(tmp[:1]); n != 0 || (err != nil && err != io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTooMuch
	}

	colors := make([]bgr15.Color, palette.Size)
	for i := range colors {
		colors[i] = bgr15.FromRGB(tmp[i*3], tmp[i*3+1], tmp[i*3+2])
	}

	t := palette.New()
	if err := t.Load(colors); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode writes t to w.
func Encode(w io.Writer, t *palette.Table) error {
	var tmp [FileSize]byte
	for i, c := range t.Colors() {
		tmp[i*3], tmp[i*3+1], tmp[i*3+2] = c.RGB()
	}
	_, err := w.Write(tmp[:])
	return err
}
