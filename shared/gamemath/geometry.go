package gamemath

import "math"

// FanOffsets spreads count shots symmetrically around zero, spacing apart.
func FanOffsets(count int, spacing float64) []float64 {
	offsets := make([]float64, count)
	mid := float64(count-1) / 2
	for i := range offsets {
		offsets[i] = (float64(i) - mid) * spacing
	}
	return offsets
}

// PointOnRing returns the point at angle radians on a circle around (cx, cy).
func PointOnRing(cx, cy, radius, angle float64) (x, y float64) {
	return cx + math.Cos(angle)*radius, cy + math.Sin(angle)*radius
}

// RadialDirections returns n unit vectors at even angular steps starting at 0 rad.
func RadialDirections(n int) [][2]float64 {
	dirs := make([][2]float64, n)
	for i := range dirs {
		a := float64(i) * 2 * math.Pi / float64(n)
		dirs[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	return dirs
}

// WrapTile keeps a tile coordinate within a three-tile window centered on
// center, stepping it by whole windows.
func WrapTile(pos, center, tile float64) float64 {
	if tile <= 0 {
		return pos
	}
	for pos-center < -1.5*tile {
		pos += 3 * tile
	}
	for pos-center > 1.5*tile {
		pos -= 3 * tile
	}
	return pos
}
