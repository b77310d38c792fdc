// Package drag tracks the primary pointer button across frames and moves the
// draggable piece to the cell under the cursor while the button is held.
package drag

import (
	"fmt"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/render"
)

// Pointer is the slice of input the tracker polls each frame.
// render.InputManager satisfies it.
type Pointer interface {
	CursorPosition() (x, y float64, ok bool)
	IsMouseButtonPressed(button render.MouseButton) bool
}

// Projector converts screen pixels into world coordinates.
// board.Camera satisfies it.
type Projector interface {
	ScreenToWorld(sx, sy float64) (wx, wy float64, ok bool)
}

// State is the button state of the tracker.
type State int

const (
	Released State = iota
	Pressed
)

func (s State) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// OutOfBounds selects what happens when the cursor is off the board.
type OutOfBounds int

const (
	// Clamp moves the piece to the nearest edge cell.
	Clamp OutOfBounds = iota
	// Ignore leaves the piece where it is.
	Ignore
)

func (o OutOfBounds) String() string {
	if o == Ignore {
		return "ignore"
	}
	return "clamp"
}

// ParseOutOfBounds parses "clamp" or "ignore". An empty string means Clamp.
func ParseOutOfBounds(s string) (OutOfBounds, error) {
	switch s {
	case "", "clamp":
		return Clamp, nil
	case "ignore":
		return Ignore, nil
	}
	return Clamp, fmt.Errorf("unknown out-of-bounds policy %q (want clamp or ignore)", s)
}

// Snapshot is the per-frame view of a tracker.
type Snapshot struct {
	State        State
	JustPressed  bool
	JustReleased bool
	Cell         board.GridPosition
	HasCell      bool
	OnBoard      bool
}

// Tracker is the Released/Pressed state machine. The zero value is not usable;
// create one with New. A nil *Tracker ignores updates.
type Tracker struct {
	layout board.Layout
	policy OutOfBounds
	button render.MouseButton

	state        State
	justPressed  bool
	justReleased bool

	cell    board.GridPosition
	hasCell bool
	onBoard bool
}

// New creates a tracker for the primary (left) mouse button.
func New(layout board.Layout, policy OutOfBounds) *Tracker {
	return &Tracker{
		layout: layout,
		policy: policy,
		button: render.MouseButtonLeft,
	}
}

// Update advances the state machine by one frame. While the button is held it
// writes the cell under the cursor into piece. A missing cursor, a failed
// projection or a nil piece skip the write; the last position is kept.
func (t *Tracker) Update(in Pointer, proj Projector, piece *board.Piece) {
	if t == nil {
		return
	}

	down := in != nil && in.IsMouseButtonPressed(t.button)
	t.justPressed = down && t.state == Released
	t.justReleased = !down && t.state == Pressed
	if down {
		t.state = Pressed
	} else {
		t.state = Released
	}

	if t.state != Pressed || in == nil || proj == nil {
		return
	}

	sx, sy, ok := in.CursorPosition()
	if !ok {
		return
	}
	wx, wy, ok := proj.ScreenToWorld(sx, sy)
	if !ok {
		return
	}

	cell, onBoard := t.layout.WorldToCell(wx, wy)
	t.onBoard = onBoard
	if !onBoard && t.policy == Ignore {
		return
	}
	t.cell = cell
	t.hasCell = true

	if piece != nil {
		piece.MoveTo(t.layout, cell)
	}
}

// State returns the current button state.
func (t *Tracker) State() State { return t.state }

// Held reports whether the button is down.
func (t *Tracker) Held() bool { return t.state == Pressed }

// JustPressed is true only on the frame the button went down.
func (t *Tracker) JustPressed() bool { return t.justPressed }

// JustReleased is true only on the frame the button went up.
func (t *Tracker) JustReleased() bool { return t.justReleased }

// Cell returns the last cell computed under the pointer.
func (t *Tracker) Cell() (board.GridPosition, bool) { return t.cell, t.hasCell }

// Snapshot copies the tracker state for logging and tests.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	return Snapshot{
		State:        t.state,
		JustPressed:  t.justPressed,
		JustReleased: t.justReleased,
		Cell:         t.cell,
		HasCell:      t.hasCell,
		OnBoard:      t.onBoard,
	}
}

// Reset forgets the held button and the last cell.
func (t *Tracker) Reset() {
	*t = Tracker{layout: t.layout, policy: t.policy, button: t.button}
}
