package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 240)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 240)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(0, 0)
	if math.Abs(sx-640) > 0.01 || math.Abs(sy-360) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := New(1280, 720, 240)

	// One unit up in the world is 240 pixels up the screen
	_, sy := cam.WorldToScreen(0, 1)
	if math.Abs(sy-120) > 0.01 {
		t.Errorf("expected sy = 120, got %f", sy)
	}

	sx, _ := cam.WorldToScreen(1, 0)
	if math.Abs(sx-880) > 0.01 {
		t.Errorf("expected sx = 880, got %f", sx)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 240)
	cam.X, cam.Y = 0.5, -0.25
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float64 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(sx-tc.sx) > 0.01 || math.Abs(sy-tc.sy) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPan(t *testing.T) {
	cam := New(1280, 720, 240)

	cam.Pan(240, 240)

	if math.Abs(cam.X-1) > 1e-9 || math.Abs(cam.Y+1) > 1e-9 {
		t.Errorf("expected camera at (1, -1), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 240)

	cam.ZoomBy(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	cam.SetZoom(0.001)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.Reset()
	if cam.Zoom != 1 || cam.X != 0 || cam.Y != 0 {
		t.Errorf("Reset left camera at (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 240)

	// Visible half-extents are (2.667, 1.5) world units
	tests := []struct {
		name           string
		wx, wy, hw, hh float64
		want           bool
	}{
		{"origin", 0, 0, 0.1, 0.1, true},
		{"far right", 10, 0, 0.1, 0.1, false},
		{"overlapping edge", 2.7, 0, 0.1, 0.1, true},
		{"below view", 0, -2, 0.1, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.IsVisible(tt.wx, tt.wy, tt.hw, tt.hh); got != tt.want {
				t.Errorf("IsVisible(%v, %v) = %v, want %v", tt.wx, tt.wy, got, tt.want)
			}
		})
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(480, 240, 240)
	cam.Follow(1, 1)

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX != 0 || maxX != 2 || minY != 0.5 || maxY != 1.5 {
		t.Errorf("bounds = (%v, %v, %v, %v), want (0, 0.5, 2, 1.5)", minX, minY, maxX, maxY)
	}
}

func TestRectToScreen(t *testing.T) {
	cam := New(1280, 720, 240)

	// Ground slab from the sample level
	x, y, w, h := cam.RectToScreen(0, -0.25, 1, 0.125)
	if math.Abs(x-400) > 0.01 || math.Abs(y-390) > 0.01 {
		t.Errorf("top-left = (%f, %f), want (400, 390)", x, y)
	}
	if math.Abs(w-480) > 0.01 || math.Abs(h-60) > 0.01 {
		t.Errorf("size = (%f, %f), want (480, 60)", w, h)
	}
}
