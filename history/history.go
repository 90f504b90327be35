/*
Package history implements linear undo and redo of palette edits.

Every recorded operation captures a full copy of the palette table taken after
the edit was made. Undo pops the most recent snapshot, restores it into the
live table and moves it onto the redo stack; redo reverses that. Recording a
new operation discards anything waiting to be redone.
*/
package history

import (
	"github.com/bodgit/snespal/bgr15"
	"github.com/bodgit/snespal/palette"
)

// DefaultDepth is the undo depth used when none is configured.
const DefaultDepth = 100

// Snapshot is an immutable record of the editor after one operation.
type Snapshot struct {
	colors      [palette.Size]bgr15.Color
	drawMode    bool
	description string
	sequence    uint64
}

// Colors returns the palette captured by s.
func (s Snapshot) Colors() [palette.Size]bgr15.Color {
	return s.colors
}

// DrawMode returns the draw mode flag captured by s.
func (s Snapshot) DrawMode() bool {
	return s.drawMode
}

// Description returns the human readable description of the operation.
func (s Snapshot) Description() string {
	return s.description
}

// Sequence returns the number assigned to s when it was recorded.
func (s Snapshot) Sequence() uint64 {
	return s.sequence
}

// History holds the undo and redo stacks.
type History struct {
	undo, redo []Snapshot
	max        int
	sequence   uint64
}

// New returns an empty History keeping at most max snapshots on the undo
// stack, the oldest being discarded first. A max of zero or less means no
// limit.
func New(max int) *History {
	return &History{
		max: max,
	}
}

// Record captures t and drawMode as a new operation described by
// description. The redo stack is emptied. t is only read.
func (h *History) Record(description string, t *palette.Table, drawMode bool) Snapshot {
	h.sequence++
	s := Snapshot{
		colors:      t.Colors(),
		drawMode:    drawMode,
		description: description,
		sequence:    h.sequence,
	}

	h.undo = append(h.undo, s)
	if h.max > 0 && len(h.undo) > h.max {
		n := copy(h.undo, h.undo[len(h.undo)-h.max:])
		h.undo = h.undo[:n]
	}
	h.redo = h.redo[:0]

	return s
}

func move(from, to *[]Snapshot, t *palette.Table) (Snapshot, bool) {
	if len(*from) == 0 {
		return Snapshot{}, false
	}
	s := (*from)[len(*from)-1]
	*from = (*from)[:len(*from)-1]
	t.Replace(s.colors)
	*to = append(*to, s)
	return s, true
}

// Undo pops the most recent snapshot, writes its palette into t and pushes it
// onto the redo stack. It returns false and leaves t untouched if there is
// nothing to undo.
func (h *History) Undo(t *palette.Table) (Snapshot, bool) {
	return move(&h.undo, &h.redo, t)
}

// Redo is the reverse of Undo.
func (h *History) Redo(t *palette.Table) (Snapshot, bool) {
	return move(&h.redo, &h.undo, t)
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of snapshots on the undo stack.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of snapshots on the redo stack.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// Reset empties both stacks. Sequence numbers keep counting up.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}
