package gamemath

import "math"

// minHomingDistance keeps the direction finite when a chaser sits on its target.
const minHomingDistance = 0.01

// HomingDirection returns the unit vector pointing from (fromX, fromY) to (toX, toY).
func HomingDirection(fromX, fromY, toX, toY float64) (dirX, dirY float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Max(math.Hypot(dx, dy), minHomingDistance)
	return dx / dist, dy / dist
}

// HomingVelocity returns velocity components to home toward a target at speed.
func HomingVelocity(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	dirX, dirY := HomingDirection(fromX, fromY, toX, toY)
	return dirX * speed, dirY * speed
}

// Normalize scales (x, y) to unit length. The zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
