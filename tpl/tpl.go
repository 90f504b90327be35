/*
Package tpl implements the Tile Layer Pro palette format as used for Super
Nintendo palettes.

A file starts with a 4 byte signature, the characters "TPL" followed by a
format byte, then 256 packed 15-bit colors stored as little-endian 16-bit
values. Colors are stored verbatim so no precision is lost.
*/
package tpl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/palette"
)

const (
	// Extension is the file extension used for this format
	Extension = ".tpl"

	// FormatSNES is the format byte written after the signature
	FormatSNES = 0x02

	signatureSize = 4
	// FileSize is the size in bytes of a file written by Encode
	FileSize = signatureSize + palette.Size*2
)

var magic = []byte("TPL")

// ErrBadSignature is returned when a file doesn't start with "TPL"
var ErrBadSignature = errors.New("tpl: invalid signature")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return palette.ErrTruncated
	}
	return err
}

// Decode reads a palette from r. Only the "TPL" part of the signature is
// checked, the format byte is ignored. Any data after the colors is ignored.
func Decode(r io.Reader) (*palette.Table, error) {
	var tmp [FileSize]byte
	if err := readFull(r, tmp[:]); err != nil {
		return nil, err
	}

	if !bytes.Equal(tmp[:len(magic)], magic) {
		return nil, ErrBadSignature
	}

	colors := make([]bgr15.Color, palette.Size)
	for i := range colors {
		colors[i] = bgr15.Color(binary.LittleEndian.Uint16(tmp[signatureSize+i*2:]))
	}

	t := palette.New()
	if err := t.Load(colors); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode writes t to w.
func Encode(w io.Writer, t *palette.Table) error {
	b := new(bytes.Buffer)
	b.Grow(FileSize)

	b.Write(magic)
	b.WriteByte(FormatSNES)

	colors := t.Colors()
	if err := binary.Write(b, binary.LittleEndian, &colors); err != nil {
		return err
	}

	_, err := w.Write(b.Bytes())
	return err
}
