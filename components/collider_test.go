package components

import "testing"

func TestNewColliderRejectsNegativeExtents(t *testing.T) {
	tests := []struct {
		name         string
		halfW, halfH float32
		wantErr      bool
	}{
		{"positive extents", 4, 4, false},
		{"zero extents", 0, 0, false},
		{"negative width", -1, 4, true},
		{"negative height", 4, -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCollider(0, 0, tc.halfW, tc.halfH)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewCollider(%g, %g) error = %v, wantErr %v", tc.halfW, tc.halfH, err, tc.wantErr)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	box := func(x, y, hw, hh float32) AABB {
		c := Collider{HalfW: hw, HalfH: hh}
		return c.WorldBox(Position{X: x, Y: y})
	}

	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"identical boxes", box(0, 0, 1, 1), box(0, 0, 1, 1), true},
		{"clear overlap", box(0, 0, 2, 2), box(1, 1, 2, 2), true},
		{"disjoint on x", box(0, 0, 1, 1), box(5, 0, 1, 1), false},
		{"disjoint on y", box(0, 0, 1, 1), box(0, 5, 1, 1), false},
		// Coincident edges must not count as collision, otherwise actors
		// could never rest flush against solids.
		{"touching on x", box(0, 0, 1, 1), box(2, 0, 1, 1), false},
		{"touching on y", box(0, 0, 1, 1), box(0, 2, 1, 1), false},
		{"touching corner", box(0, 0, 1, 1), box(2, 2, 1, 1), false},
		{"zero extent inside other", box(0, 0, 0, 0), box(0, 0, 5, 5), false},
		{"zero width only inside other", box(0, 0, 0, 2), box(0, 0, 5, 5), false},
		{"zero extent vs zero extent", box(0, 0, 0, 0), box(0, 0, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWorldBox(t *testing.T) {
	c := Collider{OffsetX: 1, OffsetY: -2, HalfW: 3, HalfH: 4}
	got := c.WorldBox(Position{X: 10, Y: 20})
	want := AABB{MinX: 8, MinY: 14, MaxX: 14, MaxY: 22}
	if got != want {
		t.Errorf("WorldBox = %+v, want %+v", got, want)
	}
}
