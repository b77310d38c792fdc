// Package hud provides a debug heads-up display for the board: drag state,
// pawn and hover cells, and progress towards the next level.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/drag"
	"chosenoffset.com/pawnboard/internal/render"
)

// Panel corners
const (
	TopLeft     = "top-left"
	TopRight    = "top-right"
	BottomLeft  = "bottom-left"
	BottomRight = "bottom-right"
)

const (
	padding    = 10
	lineHeight = 16
	barHeight  = 12
)

// Config defines what to display in the HUD
type Config struct {
	Visible      bool    `json:"visible"`       // Shown at startup (H toggles)
	ShowDrag     bool    `json:"show_drag"`     // Drag state and edges
	ShowHover    bool    `json:"show_hover"`    // Cell under the cursor
	ShowProgress bool    `json:"show_progress"` // Bar filling towards the next level
	Position     string  `json:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 `json:"opacity"`       // Background opacity (0-1)
}

// DefaultConfig returns a hidden top-left panel with every section enabled
func DefaultConfig() Config {
	return Config{
		ShowDrag:     true,
		ShowHover:    true,
		ShowProgress: true,
		Position:     TopLeft,
		Opacity:      0.7,
	}
}

// Validate reports an unknown corner or an opacity outside 0-1.
func (c Config) Validate() error {
	switch c.Position {
	case TopLeft, TopRight, BottomLeft, BottomRight:
	default:
		return fmt.Errorf("invalid hud position: %q", c.Position)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("invalid hud opacity: %v", c.Opacity)
	}
	return nil
}

// Stats is what the HUD shows for one frame.
type Stats struct {
	Frame    int
	Label    string
	Progress float64 // 0-1 of the current level interval
	Pawn     board.GridPosition
	Drag     drag.Snapshot
	Hover    board.GridPosition
	HoverOK  bool
}

// HUD manages the heads-up display
type HUD struct {
	config       Config
	renderer     render.Renderer
	visible      bool
	screenWidth  int
	screenHeight int

	panelWidth  int
	panelHeight int
	panel       render.Image
}

// New creates a new HUD. A nil renderer draws nothing.
func New(config Config, r render.Renderer, screenWidth, screenHeight int) *HUD {
	return &HUD{
		config:       config,
		renderer:     r,
		visible:      config.Visible,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   180,
	}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether Draw will draw anything.
func (h *HUD) Visible() bool { return h.visible }

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Lines returns the text rows of the panel, without the progress bar.
func (h *HUD) Lines(s Stats) []string {
	lines := []string{
		s.Label,
		fmt.Sprintf("Pawn: %d, %d", s.Pawn.X, s.Pawn.Y),
	}
	if h.config.ShowDrag {
		line := "Drag: " + s.Drag.State.String()
		switch {
		case s.Drag.JustPressed:
			line += " (just pressed)"
		case s.Drag.JustReleased:
			line += " (just released)"
		}
		lines = append(lines, line)
		if s.Drag.HasCell && !s.Drag.OnBoard {
			lines = append(lines, "Cursor off board")
		}
	}
	if h.config.ShowHover {
		if s.HoverOK {
			lines = append(lines, fmt.Sprintf("Hover: %d, %d", s.Hover.X, s.Hover.Y))
		} else {
			lines = append(lines, "Hover: -")
		}
	}
	lines = append(lines, fmt.Sprintf("Frame: %d", s.Frame))
	return lines
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, s Stats) {
	if !h.visible || h.renderer == nil {
		return
	}

	lines := h.Lines(s)
	h.panelHeight = h.calculatePanelHeight(len(lines))
	x, y := h.calculatePosition()
	h.drawPanel(screen, x, y)

	currentY := y + 8
	h.drawText(screen, lines[0], x+8, currentY, color.RGBA{255, 255, 200, 255})
	currentY += lineHeight

	if h.config.ShowProgress {
		currentY = h.drawProgressBar(screen, x+8, currentY, s.Progress)
		currentY += 8
	}

	for _, line := range lines[1:] {
		h.drawText(screen, line, x+8, currentY, color.RGBA{200, 200, 200, 255})
		currentY += lineHeight
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	switch h.config.Position {
	case TopRight:
		return h.screenWidth - h.panelWidth - padding, padding
	case BottomLeft:
		return padding, h.screenHeight - h.panelHeight - padding
	case BottomRight:
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default:
		return padding, padding
	}
}

// calculatePanelHeight calculates the height needed for all HUD rows
func (h *HUD) calculatePanelHeight(lines int) int {
	height := 8 + lines*lineHeight
	if h.config.ShowProgress {
		height += barHeight + 4 + 8
	}
	return height + 8
}

// drawPanel draws the semi-transparent background panel. The panel image is
// reused until its height changes.
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	if h.panel != nil {
		if _, ph := h.panel.Size(); ph != h.panelHeight {
			h.panel.Dispose()
			h.panel = nil
		}
	}
	alpha := uint8(h.config.Opacity * 255)
	if h.panel == nil {
		h.panel = h.renderer.NewImage(h.panelWidth, h.panelHeight)
		h.panel.Fill(color.RGBA{20, 20, 30, alpha})
	}

	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.panel, op)

	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(h.panelHeight), 1, color.RGBA{60, 60, 80, alpha})
}

// drawProgressBar draws the level timer as a bar filling left to right
func (h *HUD) drawProgressBar(screen render.Image, x, y int, progress float64) int {
	barWidth := h.panelWidth - 24

	bg := h.renderer.NewImage(barWidth, barHeight)
	defer bg.Dispose()
	bg.Fill(color.RGBA{40, 40, 60, 255})
	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(bg, op)

	if progress > 1 {
		progress = 1
	}
	if fillWidth := int(float64(barWidth-2) * progress); fillWidth > 0 {
		fill := h.renderer.NewImage(fillWidth, barHeight-2)
		defer fill.Dispose()
		fill.Fill(color.RGBA{80, 160, 220, 255})
		op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		op.GeoM.Translate(float64(x+1), float64(y+1))
		screen.DrawImage(fill, op)
	}

	return y + barHeight + 4
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.Color) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 200}, 1)
	h.renderer.DrawText(screen, text, x, y, clr, 1)
}
