package board

// Camera is a 2D orthographic camera. World y points up and the camera
// position sits in the middle of the view.
type Camera struct {
	X, Y       float64
	Zoom       float64
	ViewWidth  int
	ViewHeight int
}

// NewCamera returns a camera at the world origin with no zoom.
func NewCamera(viewWidth, viewHeight int) Camera {
	return Camera{Zoom: 1, ViewWidth: viewWidth, ViewHeight: viewHeight}
}

// ScreenToWorld projects a screen pixel into world space. ok is false when the
// camera has no usable view or the point lies outside it.
func (c Camera) ScreenToWorld(sx, sy float64) (wx, wy float64, ok bool) {
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 || c.Zoom <= 0 {
		return 0, 0, false
	}
	if sx < 0 || sy < 0 || sx >= float64(c.ViewWidth) || sy >= float64(c.ViewHeight) {
		return 0, 0, false
	}
	wx = (sx-float64(c.ViewWidth)/2)/c.Zoom + c.X
	wy = (float64(c.ViewHeight)/2-sy)/c.Zoom + c.Y
	return wx, wy, true
}

// WorldToScreen is the inverse of ScreenToWorld without the viewport check.
func (c Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx = (wx-c.X)*zoom + float64(c.ViewWidth)/2
	sy = float64(c.ViewHeight)/2 - (wy-c.Y)*zoom
	return sx, sy
}

// Resize updates the view size, e.g. after the window changes.
func (c *Camera) Resize(viewWidth, viewHeight int) {
	c.ViewWidth = viewWidth
	c.ViewHeight = viewHeight
}
