package snespal

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/pal"
	"github.com/bodgit/snespal/palette"
	"github.com/bodgit/snespal/tpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *palette.Table {
	tbl := palette.New()
	for i := 0; i < palette.Size; i++ {
		require.NoError(t, tbl.Set(i, bgr15.Color(i*131)))
	}
	return tbl
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	tbl := testTable(t)

	for _, ext := range []string{pal.Extension, tpl.Extension} {
		file := filepath.Join(dir, "test"+ext)
		require.NoError(t, Save(tbl, file))

		got, err := Load(file)
		require.NoError(t, err)
		assert.Equal(t, tbl.Colors(), got.Colors(), ext)
	}

	info, err := os.Stat(filepath.Join(dir, "test.pal"))
	require.NoError(t, err)
	assert.Equal(t, int64(pal.FileSize), info.Size())

	info, err = os.Stat(filepath.Join(dir, "test.tpl"))
	require.NoError(t, err)
	assert.Equal(t, int64(tpl.FileSize), info.Size())
}

func TestUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	tbl := testTable(t)

	for _, name := range []string{"test.PAL", "test.bmp", "test"} {
		file := filepath.Join(dir, name)
		assert.True(t, errors.Is(Save(tbl, file), ErrUnsupportedExtension), name)
		_, err := os.Stat(file)
		assert.True(t, os.IsNotExist(err), name)

		_, err = Load(file)
		assert.True(t, errors.Is(err, ErrUnsupportedExtension), name)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.pal"))
	assert.True(t, os.IsNotExist(err))

	file := filepath.Join(dir, "short.pal")
	require.NoError(t, ioutil.WriteFile(file, make([]byte, 100), 0644))
	_, err = Load(file)
	assert.True(t, errors.Is(err, palette.ErrTruncated))
}
