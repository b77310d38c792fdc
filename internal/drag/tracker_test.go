package drag

import (
	"testing"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/render/headless"
)

func newFixture(policy OutOfBounds) (*Tracker, *headless.Input, board.Camera, *board.Piece, board.Layout) {
	layout := board.DefaultLayout()
	piece := &board.Piece{Name: "pawn"}
	piece.MoveTo(layout, board.GridPosition{})
	return New(layout, policy), headless.NewInput(0, 0), board.NewCamera(800, 600), piece, layout
}

func TestPressHoldRelease(t *testing.T) {
	tr, in, cam, piece, layout := newFixture(Clamp)

	// Three frames held over different cells, then release.
	cursors := [][2]float64{{400, 300}, {472, 300}, {472, 228}}
	for frame, c := range cursors {
		in.Press(c[0], c[1])
		tr.Update(in, cam, piece)

		if got, want := tr.JustPressed(), frame == 0; got != want {
			t.Errorf("Frame %d: expected JustPressed=%v, got %v", frame+1, want, got)
		}
		if tr.JustReleased() {
			t.Errorf("Frame %d: expected no JustReleased while held", frame+1)
		}
		if tr.State() != Pressed {
			t.Errorf("Frame %d: expected pressed, got %s", frame+1, tr.State())
		}

		wx, wy, _ := cam.ScreenToWorld(c[0], c[1])
		want, _ := layout.WorldToCell(wx, wy)
		if piece.Cell != want {
			t.Errorf("Frame %d: expected piece at %v, got %v", frame+1, want, piece.Cell)
		}
		px, py := layout.CellToWorld(want)
		if piece.Transform.X != px || piece.Transform.Y != py {
			t.Errorf("Frame %d: expected transform snapped to (%v, %v), got (%v, %v)",
				frame+1, px, py, piece.Transform.X, piece.Transform.Y)
		}
	}

	in.Release()
	tr.Update(in, cam, piece)
	if !tr.JustReleased() || tr.JustPressed() || tr.Held() {
		t.Errorf("Frame 4: expected only JustReleased, got %+v", tr.Snapshot())
	}
	if piece.Cell != (board.GridPosition{X: 4, Y: 4}) {
		t.Errorf("Expected piece to stay at (4, 4) after release, got %v", piece.Cell)
	}

	tr.Update(in, cam, piece)
	if tr.JustReleased() {
		t.Error("Frame 5: expected JustReleased to last one frame")
	}
}

func TestMovingWhileReleasedDoesNothing(t *testing.T) {
	tr, in, cam, piece, _ := newFixture(Clamp)
	start := *piece

	in.MoveTo(472, 228)
	tr.Update(in, cam, piece)

	if *piece != start {
		t.Errorf("Expected piece untouched, got %+v", *piece)
	}
	if _, ok := tr.Cell(); ok {
		t.Error("Expected no cell before the first press")
	}
}

func TestCursorUnavailableKeepsLastPosition(t *testing.T) {
	tr, in, cam, piece, _ := newFixture(Clamp)

	in.Press(472, 228)
	tr.Update(in, cam, piece)
	held := *piece

	in.Leave()
	tr.Update(in, cam, piece)
	if *piece != held {
		t.Errorf("Expected %+v to persist, got %+v", held, *piece)
	}
	if !tr.Held() || tr.JustPressed() {
		t.Errorf("Expected held without a new edge, got %+v", tr.Snapshot())
	}

	// Outside the viewport the projection fails the same way.
	in.Press(-5, 10)
	tr.Update(in, cam, piece)
	if *piece != held {
		t.Errorf("Expected %+v to persist, got %+v", held, *piece)
	}
}

func TestOffBoardPolicies(t *testing.T) {
	tests := []struct {
		policy OutOfBounds
		want   board.GridPosition
	}{
		{Clamp, board.GridPosition{X: 0, Y: 5}},
		{Ignore, board.GridPosition{X: 3, Y: 3}},
	}

	for _, tt := range tests {
		tr, in, cam, piece, _ := newFixture(tt.policy)
		in.Press(400, 300)
		tr.Update(in, cam, piece)

		// Far top-left of the window, well off the board.
		in.Press(2, 2)
		tr.Update(in, cam, piece)

		if piece.Cell != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.policy, tt.want, piece.Cell)
		}
		if tr.Snapshot().OnBoard {
			t.Errorf("%s: expected the last reading to be off the board", tt.policy)
		}
	}
}

func TestNilCollaborators(t *testing.T) {
	tr, in, cam, _, _ := newFixture(Clamp)

	in.Press(472, 228)
	tr.Update(in, cam, nil)
	if cell, ok := tr.Cell(); !ok || cell != (board.GridPosition{X: 4, Y: 4}) {
		t.Errorf("Expected the tracker to record (4, 4) without a piece, got %v/%v", cell, ok)
	}

	tr.Update(nil, cam, nil)
	if !tr.JustReleased() {
		t.Error("Expected missing input to read as button up")
	}

	var none *Tracker
	none.Update(in, cam, nil)
	if s := none.Snapshot(); s != (Snapshot{}) {
		t.Errorf("Expected empty snapshot from nil tracker, got %+v", s)
	}
}

func TestParseOutOfBounds(t *testing.T) {
	for in, want := range map[string]OutOfBounds{"": Clamp, "clamp": Clamp, "ignore": Ignore} {
		got, err := ParseOutOfBounds(in)
		if err != nil || got != want {
			t.Errorf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseOutOfBounds("wrap"); err == nil {
		t.Error("Expected an error for an unknown policy")
	}
}

func TestReset(t *testing.T) {
	tr, in, cam, piece, _ := newFixture(Ignore)
	in.Press(472, 228)
	tr.Update(in, cam, piece)

	tr.Reset()
	if tr.Held() || tr.JustPressed() {
		t.Errorf("Expected a released tracker, got %+v", tr.Snapshot())
	}
	if _, ok := tr.Cell(); ok {
		t.Error("Expected Reset to forget the cell")
	}

	in.Press(2, 2)
	tr.Update(in, cam, piece)
	if piece.Cell != (board.GridPosition{X: 4, Y: 4}) {
		t.Errorf("Expected Reset to keep the ignore policy, got piece at %v", piece.Cell)
	}
}
