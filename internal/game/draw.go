package game

import (
	"image/color"

	"chosenoffset.com/pawnboard/internal/board"
	"chosenoffset.com/pawnboard/internal/render"
	"chosenoffset.com/pawnboard/internal/ui/hud"
)

var (
	backgroundColor = color.RGBA{24, 26, 30, 255}
	labelColor      = color.RGBA{230, 230, 230, 255}
	hoverColor      = color.RGBA{240, 200, 60, 255}
)

// labelScale is the upscale factor of the 7x13 label font.
const labelScale = 2.0

// Draw draws the squares, the hover outline, the pawn, the level label and
// the HUD, in that order.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	if g.sprites != nil {
		for _, sq := range g.squares {
			img := g.sprites.Light
			if sq.Shade == board.ShadeDark {
				img = g.sprites.Dark
			}
			g.drawSprite(screen, img, sq.Transform, g.cfg.Board.SquareScale)
		}
	}

	g.drawHover(screen)

	if g.sprites != nil {
		g.drawSprite(screen, g.sprites.Pawn, g.pawn.Transform, g.cfg.Board.PawnScale)
	}

	g.drawLabel(screen)
	g.hud.Draw(screen, g.hudStats())
}

func (g *Game) hudStats() hud.Stats {
	timer := g.counter.Timer()
	return hud.Stats{
		Frame:    g.frame,
		Label:    g.counter.Label(),
		Progress: float64(timer.Elapsed()) / float64(timer.Period()),
		Pawn:     g.pawn.Cell,
		Drag:     g.tracker.Snapshot(),
		Hover:    g.hover,
		HoverOK:  g.hoverOK,
	}
}

// drawSprite draws img centred on a world transform, scaled to scale cells wide.
func (g *Game) drawSprite(dst, img render.Image, t board.Transform, scale float64) {
	if img == nil {
		return
	}
	w, h := img.Size()
	if w == 0 || h == 0 {
		return
	}

	s := g.layout.CellSize * scale * g.camera.Zoom / float64(w)
	sx, sy := g.camera.WorldToScreen(t.X, t.Y)

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(s, s)
	opts.GeoM.Translate(sx-float64(w)*s/2, sy-float64(h)*s/2)
	dst.DrawImage(img, opts)
}

// drawHover outlines the cell under an idle cursor.
func (g *Game) drawHover(dst render.Image) {
	if g.renderer == nil || !g.hoverOK || g.tracker.Held() {
		return
	}
	size := g.layout.CellSize * g.camera.Zoom
	cx, cy := g.layout.CellToWorld(g.hover)
	sx, sy := g.camera.WorldToScreen(cx, cy)
	g.renderer.StrokeRect(dst, float32(sx-size/2), float32(sy-size/2), float32(size), float32(size), 2, hoverColor)
}

// drawLabel centres the level label half a cell above the board.
func (g *Game) drawLabel(dst render.Image) {
	if g.renderer == nil {
		return
	}
	label := g.counter.Label()
	_, _, _, maxY := g.layout.Bounds()
	sx, sy := g.camera.WorldToScreen(0, maxY+g.layout.CellSize/2)
	w, h := g.renderer.MeasureText(label, labelScale)
	g.renderer.DrawText(dst, label, int(sx)-w/2, int(sy)-h/2, labelColor, labelScale)
}
