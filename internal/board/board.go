// Package board maps between discrete board cells and continuous world
// coordinates, and holds the plain data of the squares and the draggable piece.
package board

import "math"

const (
	// DefaultSize is the number of cells along each side of the board.
	DefaultSize = 6
	// DefaultCellSize is the edge length of one cell in world units.
	DefaultCellSize = 72.0
	// MaxSize is the largest side a GridPosition can address.
	MaxSize = math.MaxUint8 + 1
)

// GridPosition addresses one cell. (0, 0) is the bottom-left cell.
type GridPosition struct {
	X, Y uint8
}

// Transform is a world-space placement. Z orders sprites; higher draws on top.
type Transform struct {
	X, Y, Z float64
}

// Shade is the checkerboard colour of a square.
type Shade int

const (
	ShadeLight Shade = iota
	ShadeDark
)

func (s Shade) String() string {
	if s == ShadeDark {
		return "dark"
	}
	return "light"
}

// Square is one board cell sprite.
type Square struct {
	Cell      GridPosition
	Shade     Shade
	Transform Transform
}

// Piece is the single draggable entity on the board. Its Transform is always
// the world position of Cell; use MoveTo to change both together.
type Piece struct {
	Name      string
	Cell      GridPosition
	Transform Transform
}

// MoveTo places the piece on a cell and snaps its transform to the cell centre.
func (p *Piece) MoveTo(l Layout, cell GridPosition) {
	p.Cell = cell
	p.Transform.X, p.Transform.Y = l.CellToWorld(cell)
}

// Layout describes the board geometry. OffsetX/OffsetY are the cell
// coordinates that sit on the world origin; for a centred board they are
// (Cols-1)/2 and (Rows-1)/2.
type Layout struct {
	Cols, Rows int
	CellSize   float64
	OffsetX    float64
	OffsetY    float64
}

// NewLayout returns a layout centred on the world origin.
func NewLayout(cols, rows int, cellSize float64) Layout {
	return Layout{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		OffsetX:  float64(cols-1) / 2,
		OffsetY:  float64(rows-1) / 2,
	}
}

// DefaultLayout is the 6x6 board with 72 unit cells.
func DefaultLayout() Layout {
	return NewLayout(DefaultSize, DefaultSize, DefaultCellSize)
}

// CellToWorld returns the world position of the centre of a cell.
// Cells off the board still map to well-defined positions.
func (l Layout) CellToWorld(p GridPosition) (x, y float64) {
	return (float64(p.X) - l.OffsetX) * l.CellSize, (float64(p.Y) - l.OffsetY) * l.CellSize
}

// WorldToCell returns the cell containing a world position. Positions off the
// board are clamped to the nearest edge cell and reported with ok == false.
func (l Layout) WorldToCell(wx, wy float64) (p GridPosition, ok bool) {
	x, okX := snapAxis(wx, l.CellSize, l.OffsetX, l.Cols)
	y, okY := snapAxis(wy, l.CellSize, l.OffsetY, l.Rows)
	return GridPosition{X: uint8(x), Y: uint8(y)}, okX && okY
}

// snapAxis rounds a world coordinate to a cell index in [0, n).
// The float is range-checked before conversion so it can never wrap.
func snapAxis(w, size, offset float64, n int) (int, bool) {
	if n <= 0 || size <= 0 || math.IsNaN(w) {
		return 0, false
	}
	f := math.Floor(w/size + offset + 0.5)
	switch {
	case f < 0:
		return 0, false
	case f >= float64(n):
		return n - 1, false
	}
	return int(f), true
}

// Contains reports whether a signed cell index lies on the board.
func (l Layout) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Cols && y < l.Rows
}

// ClampCell returns the on-board cell nearest to a signed cell index.
func (l Layout) ClampCell(x, y int) GridPosition {
	return GridPosition{X: uint8(clampInt(x, 0, l.Cols-1)), Y: uint8(clampInt(y, 0, l.Rows-1))}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsDark reports the checkerboard parity of a cell.
func (l Layout) IsDark(p GridPosition) bool {
	return p.X%2 == p.Y%2
}

// ShadeOf returns the square shade for a cell.
func (l Layout) ShadeOf(p GridPosition) Shade {
	if l.IsDark(p) {
		return ShadeDark
	}
	return ShadeLight
}

// Squares builds one square per cell, row by row from the bottom.
func (l Layout) Squares() []Square {
	if l.Cols <= 0 || l.Rows <= 0 {
		return nil
	}
	squares := make([]Square, 0, l.Cols*l.Rows)
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			cell := GridPosition{X: uint8(x), Y: uint8(y)}
			wx, wy := l.CellToWorld(cell)
			squares = append(squares, Square{
				Cell:      cell,
				Shade:     l.ShadeOf(cell),
				Transform: Transform{X: wx, Y: wy},
			})
		}
	}
	return squares
}

// Bounds returns the world rectangle covered by the board.
func (l Layout) Bounds() (minX, minY, maxX, maxY float64) {
	half := l.CellSize / 2
	minX, minY = l.CellToWorld(GridPosition{})
	maxX = (float64(l.Cols-1) - l.OffsetX) * l.CellSize
	maxY = (float64(l.Rows-1) - l.OffsetY) * l.CellSize
	return minX - half, minY - half, maxX + half, maxY + half
}
