package board

import "testing"

func TestScreenToWorld(t *testing.T) {
	c := NewCamera(800, 600)

	tests := []struct {
		sx, sy float64
		wx, wy float64
	}{
		{400, 300, 0, 0},
		{0, 0, -400, 300},
		{472, 228, 72, 72},
		{799, 599, 399, -299},
	}

	for _, tt := range tests {
		wx, wy, ok := c.ScreenToWorld(tt.sx, tt.sy)
		if !ok {
			t.Errorf("(%v, %v): expected projection to succeed", tt.sx, tt.sy)
			continue
		}
		if wx != tt.wx || wy != tt.wy {
			t.Errorf("(%v, %v): expected (%v, %v), got (%v, %v)", tt.sx, tt.sy, tt.wx, tt.wy, wx, wy)
		}
		sx, sy := c.WorldToScreen(wx, wy)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("Expected WorldToScreen to invert, got (%v, %v)", sx, sy)
		}
	}
}

func TestScreenToWorldUnavailable(t *testing.T) {
	c := NewCamera(800, 600)
	for _, p := range [][2]float64{{-1, 10}, {10, -1}, {800, 10}, {10, 600}} {
		if _, _, ok := c.ScreenToWorld(p[0], p[1]); ok {
			t.Errorf("Expected %v to be outside the view", p)
		}
	}

	var empty Camera
	if _, _, ok := empty.ScreenToWorld(0, 0); ok {
		t.Error("Expected a camera without a view to reject projection")
	}
}

func TestCameraZoomAndPan(t *testing.T) {
	c := Camera{X: 100, Y: -50, Zoom: 2, ViewWidth: 200, ViewHeight: 200}
	wx, wy, ok := c.ScreenToWorld(150, 50)
	if !ok {
		t.Fatal("Expected projection to succeed")
	}
	if wx != 125 || wy != -25 {
		t.Errorf("Expected (125, -25), got (%v, %v)", wx, wy)
	}

	c.Resize(400, 100)
	if c.ViewWidth != 400 || c.ViewHeight != 100 {
		t.Errorf("Expected resized view 400x100, got %dx%d", c.ViewWidth, c.ViewHeight)
	}
}
