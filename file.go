package snespal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bodgit/snespal/pal"
	"github.com/bodgit/snespal/palette"
	"github.com/bodgit/snespal/tpl"
)

// ErrUnsupportedExtension is returned for a file that is neither ".pal" nor
// ".tpl". Extensions are matched case-sensitively.
var ErrUnsupportedExtension = errors.New("snespal: unsupported file extension")

// Supported reports whether ext names a supported palette format.
func Supported(ext string) bool {
	switch ext {
	case pal.Extension, tpl.Extension:
		return true
	}
	return false
}

func checkExtension(file string) (string, error) {
	ext := filepath.Ext(file)
	if !Supported(ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return ext, nil
}

// Decode reads a palette from r in the format named by ext.
func Decode(r io.Reader, ext string) (*palette.Table, error) {
	switch ext {
	case pal.Extension:
		return pal.Decode(r)
	case tpl.Extension:
		return tpl.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
}

// Encode writes t to w in the format named by ext.
func Encode(w io.Writer, t *palette.Table, ext string) error {
	switch ext {
	case pal.Extension:
		return pal.Encode(w, t)
	case tpl.Extension:
		return tpl.Encode(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
}

// Load reads the palette stored in file, choosing the format by extension.
// The extension is checked before the file is opened.
func Load(file string) (*palette.Table, error) {
	ext, err := checkExtension(file)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, ext)
}

// Save writes t to file, choosing the format by extension. The extension is
// checked before the file is created.
func Save(t *palette.Table, file string) error {
	ext, err := checkExtension(file)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := Encode(b, t, ext); err != nil {
		return err
	}

	return ioutil.WriteFile(file, b.Bytes(), 0644)
}
