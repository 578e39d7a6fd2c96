package headless

import (
	"math"

	"github.com/automoto/survivor/shared/gamemath"
	"github.com/automoto/survivor/shared/sim"
)

// steerDeadZone ignores the minor axis of a mostly straight heading.
const steerDeadZone = 0.38

// Autopilot flees the nearest enemy inside SafeDistance, otherwise walks to the
// nearest item. Every FireEvery ticks it turns toward the nearest enemy for one
// tick and shoots on the next.
type Autopilot struct {
	FireEvery    int
	SafeDistance float64

	tick int
}

func NewAutopilot(fireEvery int) *Autopilot {
	return &Autopilot{FireEvery: fireEvery, SafeDistance: 220}
}

func (a *Autopilot) Next(g *sim.Game) Command {
	defer func() { a.tick++ }()

	p := g.Player.Pos
	enemy, enemyDist := nearest(p, enemyPositions(g))
	var cmd Command

	if a.FireEvery > 0 && enemyDist < math.Inf(1) {
		phase := a.tick % a.FireEvery
		if phase == 0 {
			cmd.Fire = true
		} else if phase == a.FireEvery-1 {
			cmd.Input = steer(gamemath.HomingDirection(p.X, p.Y, enemy.X, enemy.Y))
			return cmd
		}
	}

	if enemyDist < a.SafeDistance {
		dx, dy := gamemath.HomingDirection(p.X, p.Y, enemy.X, enemy.Y)
		cmd.Input = steer(-dx, -dy)
		return cmd
	}
	if item, d := nearest(p, itemPositions(g)); d < math.Inf(1) {
		cmd.Input = steer(gamemath.HomingDirection(p.X, p.Y, item.X, item.Y))
	}
	return cmd
}

func steer(dx, dy float64) sim.Input {
	return sim.Input{
		Left:  dx < -steerDeadZone,
		Right: dx > steerDeadZone,
		Up:    dy < -steerDeadZone,
		Down:  dy > steerDeadZone,
	}
}

func enemyPositions(g *sim.Game) []sim.Vec2 {
	out := make([]sim.Vec2, len(g.Enemies))
	for i, e := range g.Enemies {
		out[i] = e.Pos
	}
	return out
}

func itemPositions(g *sim.Game) []sim.Vec2 {
	out := make([]sim.Vec2, len(g.Items))
	for i, it := range g.Items {
		out[i] = it.Pos
	}
	return out
}

func nearest(from sim.Vec2, candidates []sim.Vec2) (sim.Vec2, float64) {
	best, bestDist := sim.Vec2{}, math.Inf(1)
	for _, c := range candidates {
		if d := math.Hypot(c.X-from.X, c.Y-from.Y); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}
