package tpl

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tbl := palette.New()
	require.NoError(t, tbl.Set(0, 0x7fff))
	require.NoError(t, tbl.Set(255, 0x1234))

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, tbl))
	require.Equal(t, FileSize, b.Len())

	assert.Equal(t, []byte{'T', 'P', 'L', FormatSNES, 0xff, 0x7f}, b.Bytes()[:6])
	assert.Equal(t, []byte{0x34, 0x12}, b.Bytes()[FileSize-2:])
}

func TestRoundTrip(t *testing.T) {
	tbl := palette.New()
	for i := 0; i < palette.Size; i++ {
		require.NoError(t, tbl.Set(i, bgr15.Color(i*97)))
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, tbl))

	got, err := Decode(b)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(got))
}

func TestDecodeLoose(t *testing.T) {
	raw := make([]byte, FileSize+8)
	copy(raw, "TPL\x00")
	raw[4], raw[5] = 0xff, 0xff

	tbl, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	c, _ := tbl.Get(0)
	assert.Equal(t, bgr15.Color(0x7fff), c)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, FileSize)))
	assert.Equal(t, ErrBadSignature, err)

	raw := make([]byte, FileSize-1)
	copy(raw, "TPL\x02")
	_, err = Decode(bytes.NewReader(raw))
	assert.True(t, errors.Is(err, palette.ErrTruncated))

	_, err = Decode(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, palette.ErrTruncated))
}
