package game

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/config"
	"chosenoffset.com/pawnboard/internal/render"
	"chosenoffset.com/pawnboard/internal/render/headless"
)

const frameDelta = time.Second / 60

type fixture struct {
	game     *Game
	input    *headless.Input
	renderer *headless.Renderer
	sprites  *Sprites
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	f := &fixture{
		input:    headless.NewInput(0, 0),
		renderer: &headless.Renderer{},
		sprites: &Sprites{
			Dark:  headless.NewImage("dark", 32, 32),
			Light: headless.NewImage("light", 32, 32),
			Pawn:  headless.NewImage("pawn", 32, 32),
		},
	}
	g, err := New(Deps{
		Renderer: f.renderer,
		Input:    f.input,
		Clock:    headless.Clock{Step: frameDelta},
		Sprites:  f.sprites,
	}, cfg)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	f.game = g
	return f
}

func TestNewSpawnsScene(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game

	if len(g.Squares()) != 36 {
		t.Fatalf("Expected 36 squares, got %d", len(g.Squares()))
	}
	for _, sq := range g.Squares() {
		if (sq.Shade == board.ShadeDark) != (sq.Cell.X%2 == sq.Cell.Y%2) {
			t.Errorf("Square %v has the wrong shade %s", sq.Cell, sq.Shade)
		}
	}

	pawn := g.Pawn()
	if pawn.Cell != (board.GridPosition{}) {
		t.Errorf("Expected pawn at (0, 0), got %v", pawn.Cell)
	}
	if pawn.Transform.X != -180 || pawn.Transform.Y != -180 || pawn.Transform.Z != pawnZ {
		t.Errorf("Expected pawn transform (-180, -180, %d), got %+v", pawnZ, pawn.Transform)
	}
	if lvl, label := g.Level(); lvl != 1 || label != "Level 1" {
		t.Errorf("Expected Level 1, got %d/%q", lvl, label)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.CellSize = -1
	if _, err := New(Deps{}, cfg); err == nil {
		t.Error("Expected an invalid config to be rejected")
	}
}

func TestDragAcrossFrames(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game

	// Cursor positions in an 800x600 window; (400, 300) is the world origin.
	presses := []struct {
		sx, sy float64
		want   board.GridPosition
	}{
		{400, 300, board.GridPosition{X: 3, Y: 3}},
		{544, 300, board.GridPosition{X: 5, Y: 3}},
		{544, 480, board.GridPosition{X: 5, Y: 0}},
	}

	for i, p := range presses {
		f.input.Press(p.sx, p.sy)
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		d := g.Drag()
		if d.JustPressed != (i == 0) || d.JustReleased {
			t.Errorf("Frame %d: unexpected edges %+v", i+1, d)
		}
		pawn := g.Pawn()
		if pawn.Cell != p.want {
			t.Errorf("Frame %d: expected pawn at %v, got %v", i+1, p.want, pawn.Cell)
		}
		wx, wy := g.BoardLayout().CellToWorld(p.want)
		if pawn.Transform.X != wx || pawn.Transform.Y != wy {
			t.Errorf("Frame %d: transform (%v, %v) is not the centre of %v", i+1, pawn.Transform.X, pawn.Transform.Y, p.want)
		}
	}

	f.input.Release()
	f.input.MoveTo(400, 300)
	g.Update()
	if d := g.Drag(); !d.JustReleased || d.JustPressed {
		t.Errorf("Frame 4: expected only JustReleased, got %+v", d)
	}
	if g.Pawn().Cell != (board.GridPosition{X: 5, Y: 0}) {
		t.Errorf("Expected the pawn to stay at (5, 0), got %v", g.Pawn().Cell)
	}
	if hover, ok := g.Hover(); !ok || hover != (board.GridPosition{X: 3, Y: 3}) {
		t.Errorf("Expected hover over (3, 3), got %v/%v", hover, ok)
	}
	if g.FrameCount() != 4 {
		t.Errorf("Expected 4 frames, got %d", g.FrameCount())
	}
}

func TestLevelAdvancesWithUpdates(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game

	for i := 0; i < 120; i++ {
		g.Update()
	}
	if lvl, _ := g.Level(); lvl != 1 {
		t.Fatalf("Expected Level 1 just before 2s, got %d", lvl)
	}
	g.Update()
	if lvl, label := g.Level(); lvl != 2 || label != "Level 2" {
		t.Errorf("Expected Level 2, got %d/%q", lvl, label)
	}

	for i := 0; i < 120; i++ {
		g.Update()
	}
	if lvl, label := g.Level(); lvl != 3 || label != "Level 3" {
		t.Errorf("Expected Level 3, got %d/%q", lvl, label)
	}
}

func TestStepWithoutPointer(t *testing.T) {
	g, err := New(Deps{}, nil)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	g.Step(Frame{Delta: 2 * time.Second})
	if lvl, _ := g.Level(); lvl != 2 {
		t.Errorf("Expected Level 2, got %d", lvl)
	}
	if g.Pawn().Cell != (board.GridPosition{}) {
		t.Errorf("Expected the pawn to stay home, got %v", g.Pawn().Cell)
	}
	if err := g.Update(); err != nil {
		t.Errorf("Expected Update without collaborators to succeed, got %v", err)
	}
}

func TestKeys(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game

	f.input.Press(544, 300)
	g.Update()
	g.Step(Frame{Delta: 5 * time.Second, Pointer: f.input})

	f.input.Release()
	f.input.JustKeys[render.KeyR] = true
	g.Update()
	f.input.JustKeys[render.KeyR] = false

	if g.Pawn().Cell != (board.GridPosition{}) {
		t.Errorf("Expected reset to send the pawn home, got %v", g.Pawn().Cell)
	}
	if lvl, _ := g.Level(); lvl != 1 {
		t.Errorf("Expected reset to restart the level, got %d", lvl)
	}

	f.input.JustKeys[render.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, render.ErrTermination) {
		t.Errorf("Expected ErrTermination, got %v", err)
	}
}

func TestDraw(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game
	screen := headless.NewImage("screen", 800, 600)

	f.input.MoveTo(400, 300)
	g.Update()
	g.Draw(screen)

	if len(screen.Draws) != 37 {
		t.Fatalf("Expected 36 squares and a pawn, got %d draws", len(screen.Draws))
	}

	dark := 0
	for _, d := range screen.Draws[:36] {
		if d.Src == f.sprites.Dark {
			dark++
		}
	}
	if dark != 18 {
		t.Errorf("Expected 18 dark squares, got %d", dark)
	}

	last := screen.Draws[36]
	if last.Src != f.sprites.Pawn {
		t.Fatalf("Expected the pawn to be drawn last, got %v", last.Src)
	}
	// Pawn at (0, 0) sits at world (-180, -180), screen (220, 480).
	cx := last.GeoM.TX + 32*last.GeoM.SX/2
	cy := last.GeoM.TY + 32*last.GeoM.SY/2
	if math.Abs(cx-220) > 1e-9 || math.Abs(cy-480) > 1e-9 {
		t.Errorf("Expected pawn centred at (220, 480), got (%v, %v)", cx, cy)
	}
	if math.Abs(last.GeoM.SX*32-72*0.8) > 1e-9 {
		t.Errorf("Expected pawn width %v, got %v", 72*0.8, last.GeoM.SX*32)
	}

	if f.renderer.Rects != 1 {
		t.Errorf("Expected one hover outline, got %d", f.renderer.Rects)
	}
	if len(f.renderer.Texts) != 1 || f.renderer.Texts[0].Text != "Level 1" {
		t.Errorf("Expected the label 'Level 1', got %+v", f.renderer.Texts)
	}
}

func TestLayoutResizesCamera(t *testing.T) {
	f := newFixture(t, nil)
	w, h := f.game.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", w, h)
	}
	cam := f.game.Camera()
	if cam.ViewWidth != 1024 || cam.ViewHeight != 768 {
		t.Errorf("Expected camera view 1024x768, got %dx%d", cam.ViewWidth, cam.ViewHeight)
	}

	// The window centre is still the world origin.
	f.input.Press(512, 384)
	f.game.Update()
	if f.game.Pawn().Cell != (board.GridPosition{X: 3, Y: 3}) {
		t.Errorf("Expected (3, 3), got %v", f.game.Pawn().Cell)
	}
}

func TestLoadSpritesFallsBackToPlaceholders(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Assets.AtlasPath = filepath.Join(t.TempDir(), "missing.json")

	s, err := LoadSprites(cfg, &headless.Loader{}, &headless.Renderer{})
	if err != nil {
		t.Fatalf("Expected placeholder sprites, got %v", err)
	}
	for _, img := range []render.Image{s.Dark, s.Light, s.Pawn} {
		if w, h := img.Size(); w != 32 || h != 32 {
			t.Errorf("Expected 32x32 placeholder sprite, got %dx%d", w, h)
		}
	}
}

func TestHUDToggle(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game

	f.input.JustKeys[render.KeyH] = true
	g.Update()
	f.input.JustKeys[render.KeyH] = false
	if !g.HUD().Visible() {
		t.Fatal("Expected H to show the HUD")
	}

	for i := 0; i < 59; i++ {
		g.Update()
	}
	screen := headless.NewImage("screen", 800, 600)
	g.Draw(screen)

	found := false
	for _, tc := range f.renderer.Texts {
		if tc.Text == "Frame: 60" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the HUD to show the frame count, got %+v", f.renderer.Texts)
	}
	if progress := g.hudStats().Progress; math.Abs(progress-0.5) > 1e-6 {
		t.Errorf("Expected the level bar half full after 1s, got %v", progress)
	}
}
