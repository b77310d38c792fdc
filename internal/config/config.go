// Package config loads the board settings from a JSON file.
// Every field has a default so a partial file only overrides what it names.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"chosenoffset.com/pawnboard/internal/atlas"
	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/drag"
	"chosenoffset.com/pawnboard/internal/level"
	"chosenoffset.com/pawnboard/internal/ui/hud"
)

// Config holds all settings for the board window
type Config struct {
	Window WindowConfig `json:"window"`
	Board  BoardConfig  `json:"board"`
	Level  LevelConfig  `json:"level"`
	Drag   DragConfig   `json:"drag"`
	Assets AssetsConfig `json:"assets"`
	HUD    hud.Config   `json:"hud"`
}

// WindowConfig defines the window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// BoardConfig defines the board geometry and where the pawn starts
type BoardConfig struct {
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
	CellSize float64 `json:"cell_size"` // World units per cell
	// Cell coordinates placed on the world origin. Nil centres the board.
	OffsetX *float64 `json:"offset_x,omitempty"`
	OffsetY *float64 `json:"offset_y,omitempty"`
	// Sprite size relative to a cell (1 fills the cell)
	SquareScale float64 `json:"square_scale"`
	PawnScale   float64 `json:"pawn_scale"`
	PawnStartX  int     `json:"pawn_start_x"`
	PawnStartY  int     `json:"pawn_start_y"`
}

// LevelConfig defines the level counter
type LevelConfig struct {
	Start           int     `json:"start"`
	IntervalSeconds float64 `json:"interval_seconds"`
}

// DragConfig defines pointer dragging
type DragConfig struct {
	OutOfBounds string `json:"out_of_bounds"` // "clamp" or "ignore"
}

// AssetsConfig names the sprite atlas and the sprites inside it
type AssetsConfig struct {
	AtlasPath   string `json:"atlas_path"`
	DarkSquare  string `json:"dark_square"`
	LightSquare string `json:"light_square"`
	Pawn        string `json:"pawn"`
}

// DefaultConfig returns the 6x6 board with a 2 second level timer
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Pawnboard",
			Resizable: true,
		},
		Board: BoardConfig{
			Cols:        board.DefaultSize,
			Rows:        board.DefaultSize,
			CellSize:    board.DefaultCellSize,
			SquareScale: 1.0,
			PawnScale:   0.8,
		},
		Level: LevelConfig{
			Start:           level.DefaultStart,
			IntervalSeconds: level.DefaultInterval.Seconds(),
		},
		Drag: DragConfig{
			OutOfBounds: drag.Clamp.String(),
		},
		Assets: AssetsConfig{
			AtlasPath:   "assets/board.json",
			DarkSquare:  atlas.SpriteDarkSquare,
			LightSquare: atlas.SpriteLightSquare,
			Pawn:        atlas.SpritePawn,
		},
		HUD: hud.DefaultConfig(),
	}
}

// LoadConfig reads a JSON config on top of the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the board cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Board.Cols <= 0 || c.Board.Rows <= 0 || c.Board.Cols > board.MaxSize || c.Board.Rows > board.MaxSize {
		errs = append(errs, fmt.Errorf("invalid board size: %dx%d (1..%d per side)", c.Board.Cols, c.Board.Rows, board.MaxSize))
	}
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid cell size: %v", c.Board.CellSize))
	}
	if c.Board.SquareScale <= 0 || c.Board.PawnScale <= 0 {
		errs = append(errs, fmt.Errorf("invalid sprite scale: square %v, pawn %v", c.Board.SquareScale, c.Board.PawnScale))
	}
	if c.Board.PawnStartX < 0 || c.Board.PawnStartX >= c.Board.Cols ||
		c.Board.PawnStartY < 0 || c.Board.PawnStartY >= c.Board.Rows {
		errs = append(errs, fmt.Errorf("pawn start (%d, %d) is off the board", c.Board.PawnStartX, c.Board.PawnStartY))
	}
	if c.Level.IntervalSeconds <= 0 {
		errs = append(errs, fmt.Errorf("invalid level interval: %vs", c.Level.IntervalSeconds))
	}
	if _, err := drag.ParseOutOfBounds(c.Drag.OutOfBounds); err != nil {
		errs = append(errs, err)
	}
	if c.Assets.DarkSquare == "" || c.Assets.LightSquare == "" || c.Assets.Pawn == "" {
		errs = append(errs, errors.New("sprite names are required"))
	}
	if err := c.HUD.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Layout builds the board layout
func (c *Config) Layout() board.Layout {
	l := board.NewLayout(c.Board.Cols, c.Board.Rows, c.Board.CellSize)
	if c.Board.OffsetX != nil {
		l.OffsetX = *c.Board.OffsetX
	}
	if c.Board.OffsetY != nil {
		l.OffsetY = *c.Board.OffsetY
	}
	return l
}

// PawnStart returns the pawn's starting cell
func (c *Config) PawnStart() board.GridPosition {
	return board.GridPosition{X: uint8(c.Board.PawnStartX), Y: uint8(c.Board.PawnStartY)}
}

// LevelInterval returns the level timer period
func (c *Config) LevelInterval() time.Duration {
	return time.Duration(c.Level.IntervalSeconds * float64(time.Second))
}

// OutOfBounds returns the parsed drag policy, falling back to clamp
func (c *Config) OutOfBounds() drag.OutOfBounds {
	p, _ := drag.ParseOutOfBounds(c.Drag.OutOfBounds)
	return p
}
