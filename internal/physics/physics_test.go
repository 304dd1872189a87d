package physics

import "testing"

func TestIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 25, Y: 25, W: 10, H: 10}, true},
		{"contained", Rect{X: 15, Y: 15, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 5, H: 5}, false},
		{"left of", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"above", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"empty", Rect{X: 15, Y: 15, W: 0, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestClampInto(t *testing.T) {
	bounds := Rect{W: 480, H: 640}
	tests := []struct {
		in, want Rect
	}{
		{Rect{X: -3, Y: 10, W: 50, H: 50}, Rect{X: 0, Y: 10, W: 50, H: 50}},
		{Rect{X: 440, Y: 600, W: 50, H: 50}, Rect{X: 430, Y: 590, W: 50, H: 50}},
		{Rect{X: 100, Y: 100, W: 50, H: 50}, Rect{X: 100, Y: 100, W: 50, H: 50}},
	}
	for _, tt := range tests {
		if got := tt.in.ClampInto(bounds); got != tt.want {
			t.Errorf("ClampInto(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11, 0, 10) = %d, want 10", got)
	}
	if got := Clamp(5, 0, -10); got != 0 {
		t.Fatalf("Clamp(5, 0, -10) = %d, want 0", got)
	}
}
