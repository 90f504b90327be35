package snespal

import (
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/grid"
	"github.com/bodgit/snespal/history"
	"github.com/bodgit/snespal/palette"
	"github.com/sirupsen/logrus"
)

var errNoFilename = errors.New("snespal: no filename")

// Status is pushed to the Notifier after every change to a Session.
type Status struct {
	Message  string
	CanUndo  bool
	CanRedo  bool
	DrawMode bool
}

// Notifier receives Status updates from a Session.
type Notifier interface {
	Notify(Status)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Status)

// Notify calls f(s).
func (f NotifierFunc) Notify(s Status) {
	f(s)
}

// CellInfo describes a single cell of the palette grid.
type CellInfo struct {
	Palette int
	Color   int
	Index   int
	Value   bgr15.Color
}

// Strings returns the three status bar fields for the cell.
func (c CellInfo) Strings() [3]string {
	return [3]string{
		fmt.Sprintf("Palette [%02X]", c.Palette),
		fmt.Sprintf("Color [%02X]: $%04X", c.Color, uint16(c.Value)),
		fmt.Sprintf("PAL-Index: [%02X]", c.Index),
	}
}

// Session is a single palette being edited. It owns the live table and its
// history and is not safe for concurrent use.
type Session struct {
	table    *palette.Table
	history  *history.History
	grid     grid.Grid
	drawMode bool
	selected bgr15.Color
	filename string

	pointerDown bool
	painted     bool

	notifier      Notifier
	notifications uint64
	logger   logrus.FieldLogger
}

// NewSession returns a Session with an empty palette keeping at most depth
// undo steps, zero meaning no limit.
func NewSession(depth int, logger logrus.FieldLogger) *Session {
	return &Session{
		table:   palette.New(),
		history: history.New(depth),
		grid:    grid.Default,
		logger:  newLogger(logger, "session"),
	}
}

// SetNotifier sets the sink for Status updates.
func (s *Session) SetNotifier(n Notifier) {
	s.notifier = n
}

// Table returns the live table. Callers should treat it as read-only and
// make changes through the Session so they are recorded.
func (s *Session) Table() *palette.Table {
	return s.table
}

// Filename returns the file the palette was last loaded from or saved to.
func (s *Session) Filename() string {
	return s.filename
}

// DrawMode reports whether draw mode is on.
func (s *Session) DrawMode() bool {
	return s.drawMode
}

// Selected returns the color used when drawing.
func (s *Session) Selected() bgr15.Color {
	return s.selected
}

// SetSelected sets the color used when drawing.
func (s *Session) SetSelected(c bgr15.Color) {
	s.selected = c & bgr15.Mask
	s.notify(fmt.Sprintf("Color: %s", s.selected))
}

// CanUndo reports whether there is anything to undo.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether there is anything to redo.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

func (s *Session) notify(msg string) {
	s.notifications++
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(Status{
		Message:  msg,
		CanUndo:  s.history.CanUndo(),
		CanRedo:  s.history.CanRedo(),
		DrawMode: s.drawMode,
	})
}

func (s *Session) record(description string) {
	snapshot := s.history.Record(description, s.table, s.drawMode)
	s.logger.WithField("sequence", snapshot.Sequence()).Debug(description)
}

func (s *Session) cell(x, y int) (int, error) {
	size := s.grid.Size(palette.SubPalettes)
	if !image.Pt(x, y).In(image.Rectangle{Max: size}) {
		return 0, fmt.Errorf("%w: point (%d, %d)", palette.ErrOutOfRange, x, y)
	}
	return s.grid.Index(s.grid.Resolve(x, y)), nil
}

// Inspect describes the cell under x, y.
func (s *Session) Inspect(x, y int) (CellInfo, error) {
	i, err := s.cell(x, y)
	if err != nil {
		return CellInfo{}, err
	}
	c, err := s.table.Get(i)
	if err != nil {
		return CellInfo{}, err
	}
	col, row := s.grid.Cell(i)
	return CellInfo{
		Palette: row,
		Color:   col,
		Index:   i,
		Value:   c,
	}, nil
}

// New clears the palette and starts a fresh history.
func (s *Session) New() {
	s.endStroke()
	s.table.Clear()
	s.history.Reset()
	s.filename = ""
	s.record("New palette.")
	s.notify("File closed.")
}

// Open replaces the palette with the contents of file and starts a fresh
// history. The palette is untouched if the file can't be read.
func (s *Session) Open(file string) error {
	t, err := Load(file)
	if err != nil {
		return err
	}

	s.endStroke()
	s.table.Replace(t.Colors())
	s.history.Reset()
	s.filename = file
	s.record("Loaded palette.")
	s.logger.WithField("file", file).Info("opened palette")
	s.notify("File opened successfully.")

	return nil
}

// Save writes the palette to file, or back to the file it was opened from
// if file is empty.
func (s *Session) Save(file string) error {
	if file == "" {
		file = s.filename
	}
	if file == "" {
		return errNoFilename
	}

	if err := Save(s.table, file); err != nil {
		return err
	}

	s.filename = file
	s.logger.WithField("file", file).Info("saved palette")
	s.notify("File saved.")

	return nil
}

// PointerDown handles a button press over the grid. In draw mode it starts a
// stroke painting the selected color, otherwise it assigns c to the cell.
func (s *Session) PointerDown(x, y int, c bgr15.Color) error {
	i, err := s.cell(x, y)
	if err != nil {
		return err
	}

	if s.drawMode {
		s.pointerDown = true
		return s.paint(i)
	}

	if err := s.table.Set(i, c); err != nil {
		return err
	}
	s.record("Change color.")
	s.notify("Change color.")

	return nil
}

// PointerMove paints the cell under x, y if a stroke is in progress.
func (s *Session) PointerMove(x, y int) error {
	if !s.drawMode || !s.pointerDown {
		return nil
	}
	i, err := s.cell(x, y)
	if err != nil {
		// Dragging off the grid isn't an error
		return nil
	}
	return s.paint(i)
}

func (s *Session) paint(i int) error {
	if err := s.table.Set(i, s.selected); err != nil {
		return err
	}
	s.painted = true
	return nil
}

// PointerUp ends a stroke, recording it if anything was painted.
func (s *Session) PointerUp() {
	if s.pointerDown && s.painted {
		s.record("Draw to palette.")
		s.notify("Draw to palette.")
	}
	s.endStroke()
}

// Abandon any stroke in progress without recording it
func (s *Session) endStroke() {
	s.pointerDown = false
	s.painted = false
}

// Pick copies the color of the cell under x, y into the selected color.
func (s *Session) Pick(x, y int) error {
	info, err := s.Inspect(x, y)
	if err != nil {
		return err
	}
	s.SetSelected(info.Value)
	return nil
}

// ToggleDrawMode switches draw mode on or off.
func (s *Session) ToggleDrawMode() {
	s.drawMode = !s.drawMode

	msg := "Drawing mode turned OFF."
	if s.drawMode {
		msg = "Drawing mode turned ON."
	}
	s.record(msg)
	s.notify(msg)
}

// CopyPalette copies sub-palette src over sub-palette dst.
func (s *Session) CopyPalette(src, dst int) error {
	if err := s.table.CopySubPalette(src, dst); err != nil {
		return err
	}

	msg := fmt.Sprintf("Palette $%02X copied to $%02X", src, dst)
	s.record(msg)
	s.notify(msg)

	return nil
}

// RotatePalette rotates colors 1 to 15 of sub-palette p.
func (s *Session) RotatePalette(p int) error {
	if err := s.table.RotateSubPalette(p); err != nil {
		return err
	}

	msg := fmt.Sprintf("Palette $%02X rotated.", p)
	s.record(msg)
	s.notify(msg)

	return nil
}

// SetColor assigns c to index i.
func (s *Session) SetColor(i int, c bgr15.Color) error {
	if err := s.table.Set(i, c); err != nil {
		return err
	}
	s.record("Change color.")
	s.notify("Change color.")
	return nil
}

// Import quantizes m to 16 colors and writes them to sub-palette p.
func (s *Session) Import(m image.Image, p int) error {
	if err := s.table.SetSubPalette(p, SubPaletteFromImage(m)); err != nil {
		return err
	}

	msg := fmt.Sprintf("Imported image to palette $%02X.", p)
	s.record(msg)
	s.notify(msg)

	return nil
}

// Undo restores the most recently recorded snapshot and its draw mode. It
// returns false if there was nothing to undo. A stroke in progress is
// abandoned.
func (s *Session) Undo() (history.Snapshot, bool) {
	s.endStroke()
	snapshot, ok := s.history.Undo(s.table)
	if !ok {
		return snapshot, false
	}
	s.drawMode = snapshot.DrawMode()
	s.notify(fmt.Sprintf("%d step(s) back. => %s", s.history.UndoDepth(), snapshot.Description()))
	return snapshot, true
}

// Redo reapplies the most recently undone snapshot. It returns false if
// there was nothing to redo.
func (s *Session) Redo() (history.Snapshot, bool) {
	s.endStroke()
	snapshot, ok := s.history.Redo(s.table)
	if !ok {
		return snapshot, false
	}
	s.drawMode = snapshot.DrawMode()
	s.notify(fmt.Sprintf("%d step(s) forward. => %s", s.history.RedoDepth(), snapshot.Description()))
	return snapshot, true
}
