package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 200, 500)

	if cam.X != 200 || cam.Y != 500 {
		t.Errorf("expected camera at (200, 500), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 640, 360)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(640, 360)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 400, 300)
	cam.Zoom = 2.0

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestFollowConverges(t *testing.T) {
	cam := New(1280, 720, 0, 0)

	// Repeated follow calls should close most of a large distance.
	for i := 0; i < 600; i++ {
		cam.Follow(5000, 0)
	}
	if cam.X < 4000 {
		t.Errorf("camera failed to approach target: x=%f", cam.X)
	}

	// A camera already near its target should barely move (the log curve
	// fades out instead of oscillating).
	cam2 := New(1280, 720, 100, 100)
	cam2.Follow(101, 100)
	if math.Abs(float64(cam2.X-100)) > 1 {
		t.Errorf("near-target follow overshot: x=%f", cam2.X)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 640, 360)

	if !cam.IsVisible(640, 360, 10, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(640+2000, 360, 10, 10) {
		t.Error("far-off point should not be visible")
	}
	// Just outside the edge but within the half-extent margin.
	if !cam.IsVisible(640+650, 360, 20, 20) {
		t.Error("box straddling the right edge should be visible")
	}
}

func TestParallaxDisplacement(t *testing.T) {
	var p Parallax
	p.AddLayer(0, 100, 0.5)
	p.AddLayer(0, 200, 0.0)

	// First update anchors; no displacement yet.
	p.Update(1000, 500)
	layers := p.Layers()
	if layers[0].X != 0 || layers[0].Y != 100 {
		t.Errorf("layer displaced before camera travel: %+v", layers[0])
	}

	// Camera travels +200 on x: half-factor layer moves +100, static stays.
	p.Update(1200, 500)
	layers = p.Layers()
	if layers[0].X != 100 {
		t.Errorf("layer 0 x = %f, want 100", layers[0].X)
	}
	if layers[1].X != 0 {
		t.Errorf("static layer moved: x = %f", layers[1].X)
	}
}
