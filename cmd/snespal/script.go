package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bodgit/snespal"
	"github.com/bodgit/snespal/palette"
)

var errBadLine = errors.New("bad script line")

func show(w io.Writer, t *palette.Table) error {
	for p := 0; p < palette.SubPalettes; p++ {
		sub, err := t.SubPalette(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%02X:", p); err != nil {
			return err
		}
		for _, c := range sub {
			if _, err := fmt.Fprintf(w, " %04X", uint16(c)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func atoi(args []string) ([]int, error) {
	n := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 0, 0)
		if err != nil {
			return nil, err
		}
		n[i] = int(v)
	}
	return n, nil
}

// Turns one script line into an event
func parseLine(fields []string) (snespal.Event, error) {
	cmd, args := fields[0], fields[1:]

	want := map[string]int{
		"set": 2, "click": 3, "pick": 2, "down": 2, "move": 2,
		"copy": 2, "rotate": 1,
	}
	if n, ok := want[cmd]; ok && len(args) != n {
		return snespal.Event{}, fmt.Errorf("%w: %s takes %d arguments", errBadLine, cmd, n)
	}

	switch cmd {
	case "new":
		return snespal.Event{Command: snespal.CommandNew}, nil
	case "save":
		e := snespal.Event{Command: snespal.CommandSave}
		if len(args) > 0 {
			e.Path = args[0]
		}
		return e, nil
	case "undo":
		return snespal.Event{Command: snespal.CommandUndo}, nil
	case "redo":
		return snespal.Event{Command: snespal.CommandRedo}, nil
	case "draw":
		return snespal.Event{Command: snespal.CommandToggleDrawMode}, nil
	case "up":
		return snespal.Event{Command: snespal.CommandPointerUp}, nil
	case "set":
		i, err := atoi(args[:1])
		if err != nil {
			return snespal.Event{}, err
		}
		c, err := snespal.ParseColor(args[1])
		if err != nil {
			return snespal.Event{}, err
		}
		return snespal.Event{Command: snespal.CommandSetColor, Index: i[0], Color: c}, nil
	case "click":
		xy, err := atoi(args[:2])
		if err != nil {
			return snespal.Event{}, err
		}
		c, err := snespal.ParseColor(args[2])
		if err != nil {
			return snespal.Event{}, err
		}
		return snespal.Event{Command: snespal.CommandPointerDown, X: xy[0], Y: xy[1], Color: c}, nil
	case "pick", "down", "move":
		xy, err := atoi(args)
		if err != nil {
			return snespal.Event{}, err
		}
		command := map[string]snespal.Command{
			"pick": snespal.CommandPick,
			"down": snespal.CommandPointerDown,
			"move": snespal.CommandPointerMove,
		}[cmd]
		return snespal.Event{Command: command, X: xy[0], Y: xy[1]}, nil
	case "copy":
		src, err := snespal.ParseSubPalette(args[0])
		if err != nil {
			return snespal.Event{}, err
		}
		dst, err := snespal.ParseSubPalette(args[1])
		if err != nil {
			return snespal.Event{}, err
		}
		return snespal.Event{Command: snespal.CommandCopyPalette, Src: src, Dst: dst}, nil
	case "rotate":
		p, err := snespal.ParseSubPalette(args[0])
		if err != nil {
			return snespal.Event{}, err
		}
		return snespal.Event{Command: snespal.CommandRotatePalette, Src: p}, nil
	}

	return snespal.Event{}, fmt.Errorf("%w: unknown command %q", errBadLine, cmd)
}

// Dispatches each line read from r to s. Blank lines and lines starting with
// "#" are skipped.
func runScript(s *snespal.Session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		e, err := parseLine(fields)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := s.Dispatch(e); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}
