package snespal

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/palette"
)

// Command identifies what an Event asks a Session to do.
type Command int

// Commands understood by Session.Dispatch.
const (
	CommandNew Command = iota
	CommandOpen
	CommandSave
	CommandPointerDown
	CommandPointerMove
	CommandPointerUp
	CommandPick
	CommandToggleDrawMode
	CommandCopyPalette
	CommandRotatePalette
	CommandSetColor
	CommandUndo
	CommandRedo
	CommandImport
)

var commandNames = map[Command]string{
	CommandNew:            "new",
	CommandOpen:           "open",
	CommandSave:           "save",
	CommandPointerDown:    "down",
	CommandPointerMove:    "move",
	CommandPointerUp:      "up",
	CommandPick:           "pick",
	CommandToggleDrawMode: "draw",
	CommandCopyPalette:    "copy",
	CommandRotatePalette:  "rotate",
	CommandSetColor:       "set",
	CommandUndo:           "undo",
	CommandRedo:           "redo",
	CommandImport:         "import",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Event is a single input from the user interface. Only the fields relevant
// to the Command are used.
type Event struct {
	Command Command

	// Pointer position for pointer and pick commands
	X, Y int

	// Color for CommandPointerDown outside draw mode and CommandSetColor
	Color bgr15.Color

	// Index for CommandSetColor
	Index int

	// Sub-palettes for CommandCopyPalette. CommandRotatePalette and
	// CommandImport only use Src
	Src, Dst int

	// File for CommandOpen and CommandSave
	Path string

	// Image for CommandImport
	Image image.Image
}

var errUnknownCommand = errors.New("snespal: unknown command")

type handler func(*Session, Event) error

var handlers = map[Command]handler{
	CommandNew: func(s *Session, _ Event) error {
		s.New()
		return nil
	},
	CommandOpen: func(s *Session, e Event) error {
		return s.Open(e.Path)
	},
	CommandSave: func(s *Session, e Event) error {
		return s.Save(e.Path)
	},
	CommandPointerDown: func(s *Session, e Event) error {
		return s.PointerDown(e.X, e.Y, e.Color)
	},
	CommandPointerMove: func(s *Session, e Event) error {
		return s.PointerMove(e.X, e.Y)
	},
	CommandPointerUp: func(s *Session, _ Event) error {
		s.PointerUp()
		return nil
	},
	CommandPick: func(s *Session, e Event) error {
		return s.Pick(e.X, e.Y)
	},
	CommandToggleDrawMode: func(s *Session, _ Event) error {
		s.ToggleDrawMode()
		return nil
	},
	CommandCopyPalette: func(s *Session, e Event) error {
		return s.CopyPalette(e.Src, e.Dst)
	},
	CommandRotatePalette: func(s *Session, e Event) error {
		return s.RotatePalette(e.Src)
	},
	CommandSetColor: func(s *Session, e Event) error {
		return s.SetColor(e.Index, e.Color)
	},
	CommandUndo: func(s *Session, _ Event) error {
		s.Undo()
		return nil
	},
	CommandRedo: func(s *Session, _ Event) error {
		s.Redo()
		return nil
	},
	CommandImport: func(s *Session, e Event) error {
		if e.Image == nil {
			return fmt.Errorf("%w: no image", palette.ErrInvalidArgument)
		}
		return s.Import(e.Image, e.Src)
	},
}

// Dispatch routes e to the handler for its Command. The Notifier always
// receives a Status after a successful handler, with an empty Message if the
// handler had nothing to report.
func (s *Session) Dispatch(e Event) error {
	h, ok := handlers[e.Command]
	if !ok {
		return fmt.Errorf("%w: %v", errUnknownCommand, e.Command)
	}
	s.logger.WithField("command", e.Command).Debug("dispatch")

	n := s.notifications
	if err := h(s, e); err != nil {
		return err
	}
	if s.notifications == n {
		s.notify("")
	}
	return nil
}

// ParseSubPalette parses a sub-palette number typed by the user as
// hexadecimal, with or without a leading "$".
func ParseSubPalette(str string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(str), "$"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", palette.ErrInvalidArgument, str)
	}
	if n >= palette.SubPalettes {
		return 0, fmt.Errorf("%w: palette number must be [$00-$0F]", palette.ErrInvalidArgument)
	}
	return int(n), nil
}

// ParseColor parses a packed color written as hexadecimal, with or without a
// leading "$".
func ParseColor(str string) (bgr15.Color, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(str), "$"), 16, 16)
	if err != nil || n > bgr15.Mask {
		return 0, fmt.Errorf("%w: color %q", palette.ErrInvalidArgument, str)
	}
	return bgr15.Color(n), nil
}
