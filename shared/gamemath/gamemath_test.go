package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestHomingDirection(t *testing.T) {
	tests := []struct {
		name           string
		fx, fy, tx, ty float64
		wantX, wantY   float64
	}{
		{"right", 0, 0, 10, 0, 1, 0},
		{"up", 5, 5, 5, -5, 0, -1},
		{"diagonal", 0, 0, 3, 4, 0.6, 0.8},
		{"on target", 7, 7, 7, 7, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := HomingDirection(tt.fx, tt.fy, tt.tx, tt.ty)
			if math.Abs(x-tt.wantX) > eps || math.Abs(y-tt.wantY) > eps {
				t.Fatalf("HomingDirection = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestHomingVelocityScales(t *testing.T) {
	vx, vy := HomingVelocity(0, 0, 0, 100, 3)
	if vx != 0 || math.Abs(vy-3) > eps {
		t.Fatalf("HomingVelocity = (%v, %v), want (0, 3)", vx, vy)
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		neg, pos bool
		want     float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 1},
	}
	for _, tt := range tests {
		if got := Axis(tt.neg, tt.pos); got != tt.want {
			t.Fatalf("Axis(%v, %v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		dist         float64
		sizeA, sizeB float64
		want         bool
	}{
		{"player and enemy touching", 49.9, 50, 50, true},
		{"player and enemy at threshold", 50, 50, 50, false},
		{"bullet and enemy", 34, 20, 50, true},
		{"bullet and enemy apart", 35, 20, 50, false},
		{"player and item", 39, 50, 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(100, 100, 100+tt.dist, 100, tt.sizeA, tt.sizeB); got != tt.want {
				t.Fatalf("Overlaps at %v = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestFanOffsets(t *testing.T) {
	tests := []struct {
		count int
		want  []float64
	}{
		{1, []float64{0}},
		{2, []float64{-5, 5}},
		{3, []float64{-10, 0, 10}},
	}
	for _, tt := range tests {
		got := FanOffsets(tt.count, 10)
		if len(got) != len(tt.want) {
			t.Fatalf("FanOffsets(%d) len = %d, want %d", tt.count, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("FanOffsets(%d)[%d] = %v, want %v", tt.count, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRadialDirections(t *testing.T) {
	dirs := RadialDirections(8)
	if len(dirs) != 8 {
		t.Fatalf("len = %d, want 8", len(dirs))
	}
	for i, d := range dirs {
		want := float64(i) * math.Pi / 4
		got := math.Atan2(d[1], d[0])
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("direction %d angle = %v, want %v", i, got, want)
		}
		if math.Abs(math.Hypot(d[0], d[1])-1) > eps {
			t.Fatalf("direction %d is not unit length", i)
		}
	}
}

func TestPointOnRing(t *testing.T) {
	x, y := PointOnRing(600, 400, 650, math.Pi/2)
	if math.Abs(x-600) > 1e-6 || math.Abs(y-1050) > 1e-6 {
		t.Fatalf("PointOnRing = (%v, %v), want (600, 1050)", x, y)
	}
}

func TestWrapTile(t *testing.T) {
	// Window of three 200-wide tiles centered on 600 spans [300, 900].
	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{"inside", 600, 600},
		{"at low edge", 300, 300},
		{"at high edge", 900, 900},
		{"past low edge", 299, 899},
		{"past high edge", 901, 301},
		{"several windows low", 300 - 1300, 900 - 100},
		{"several windows high", 900 + 1300, 300 + 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapTile(tt.pos, 600, 200); got != tt.want {
				t.Fatalf("WrapTile(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-1, 0, 5) != 0 || ClampInt(9, 0, 5) != 5 || ClampInt(3, 0, 5) != 3 {
		t.Fatal("ClampInt did not clamp to range")
	}
}

func TestInRect(t *testing.T) {
	if !InRect(0, 800, 1200, 800) {
		t.Fatal("edge point should be inside")
	}
	if InRect(-0.1, 10, 1200, 800) || InRect(10, 800.1, 1200, 800) {
		t.Fatal("outside point reported inside")
	}
}
