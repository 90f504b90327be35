/*
Package snespal is a library for editing Super Nintendo palettes.

A palette is a table of 256 packed 15-bit colors split into 16 sub-palettes.
Palettes are edited through a Session which tracks undo and redo history, and
are stored either as raw 768 byte RGB ".pal" files or as Tile Layer Pro ".tpl"
files.
*/
package snespal

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

func newLogger(logger logrus.FieldLogger, component string) logrus.FieldLogger {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(ioutil.Discard)
		logger = l
	}
	return logger.WithField("component", component)
}
