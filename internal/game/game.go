package game

import (
	"time"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/config"
	"chosenoffset.com/pawnboard/internal/drag"
	"chosenoffset.com/pawnboard/internal/level"
	"chosenoffset.com/pawnboard/internal/render"
	"chosenoffset.com/pawnboard/internal/ui/hud"
)

// Z layers
const (
	squareZ = 0
	pawnZ   = 1
)

// Deps are the engine collaborators. Renderer and Sprites are only needed by
// Draw; Input and Clock only by Update. Step runs without any of them.
type Deps struct {
	Renderer render.Renderer
	Input    render.InputManager
	Clock    render.Clock
	Sprites  *Sprites
}

// Frame is the input for one update.
type Frame struct {
	Delta   time.Duration
	Pointer drag.Pointer
}

// Game holds all board state. It is the only owner of the pawn; within a
// frame only the drag tracker writes the pawn's cell.
type Game struct {
	cfg    *config.Config
	layout board.Layout
	camera board.Camera

	squares []board.Square
	pawn    board.Piece
	tracker *drag.Tracker
	counter *level.Counter

	hover   board.GridPosition
	hoverOK bool
	hud     *hud.HUD

	renderer render.Renderer
	input    render.InputManager
	clock    render.Clock
	sprites  *Sprites

	frame int
}

// New spawns the board squares, the pawn and the level counter.
func New(deps Deps, cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	layout := cfg.Layout()
	g := &Game{
		cfg:      cfg,
		layout:   layout,
		camera:   board.NewCamera(cfg.Window.Width, cfg.Window.Height),
		squares:  layout.Squares(),
		tracker:  drag.New(layout, cfg.OutOfBounds()),
		counter:  level.NewCounter(cfg.Level.Start, cfg.LevelInterval()),
		renderer: deps.Renderer,
		input:    deps.Input,
		clock:    deps.Clock,
		sprites:  deps.Sprites,
		hud:      hud.New(cfg.HUD, deps.Renderer, cfg.Window.Width, cfg.Window.Height),
	}
	for i := range g.squares {
		g.squares[i].Transform.Z = squareZ
	}
	g.pawn = board.Piece{Name: "pawn", Transform: board.Transform{Z: pawnZ}}
	g.pawn.MoveTo(layout, cfg.PawnStart())

	return g, nil
}

// Update reads the engine collaborators and runs one frame.
func (g *Game) Update() error {
	if g.input != nil {
		if g.input.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrTermination
		}
		if g.input.IsKeyJustPressed(render.KeyR) {
			g.Reset()
		}
		if g.input.IsKeyJustPressed(render.KeyH) {
			g.hud.Toggle()
		}
	}

	var delta time.Duration
	if g.clock != nil {
		delta = g.clock.DeltaTime()
	}
	var pointer drag.Pointer
	if g.input != nil {
		pointer = g.input
	}
	g.Step(Frame{Delta: delta, Pointer: pointer})
	return nil
}

// Step is the ordered per-frame update: level timer, drag tracker, hover.
func (g *Game) Step(f Frame) {
	g.frame++
	g.counter.Advance(f.Delta)
	g.tracker.Update(f.Pointer, g.camera, &g.pawn)
	g.updateHover(f.Pointer)
}

func (g *Game) updateHover(p drag.Pointer) {
	g.hoverOK = false
	if p == nil {
		return
	}
	sx, sy, ok := p.CursorPosition()
	if !ok {
		return
	}
	wx, wy, ok := g.camera.ScreenToWorld(sx, sy)
	if !ok {
		return
	}
	g.hover, g.hoverOK = g.layout.WorldToCell(wx, wy)
}

// Reset puts the pawn back on its start cell and restarts the level counter.
func (g *Game) Reset() {
	g.tracker.Reset()
	g.pawn.MoveTo(g.layout, g.cfg.PawnStart())
	g.counter.Reset(g.cfg.Level.Start)
}

// Layout keeps the logical screen equal to the window so one screen pixel is
// one world unit at zoom 1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Resize(outsideWidth, outsideHeight)
	g.hud.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Pawn returns a copy of the draggable piece.
func (g *Game) Pawn() board.Piece { return g.pawn }

// Squares returns the board squares.
func (g *Game) Squares() []board.Square { return g.squares }

// BoardLayout returns the board geometry.
func (g *Game) BoardLayout() board.Layout { return g.layout }

// Camera returns the active camera.
func (g *Game) Camera() board.Camera { return g.camera }

// Drag returns the tracker state for this frame.
func (g *Game) Drag() drag.Snapshot { return g.tracker.Snapshot() }

// Level returns the current level and its label.
func (g *Game) Level() (int, string) { return g.counter.Level(), g.counter.Label() }

// Hover returns the board cell under the cursor, if any.
func (g *Game) Hover() (board.GridPosition, bool) { return g.hover, g.hoverOK }

// HUD returns the debug overlay.
func (g *Game) HUD() *hud.HUD { return g.hud }

// FrameCount returns how many frames have run.
func (g *Game) FrameCount() int { return g.frame }
