package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/survivor/shared/gamemath"
)

type kindWeight struct {
	kind   EnemyKind
	weight float64
}

// kindBands picks enemy kinds by elapsed time; the last band is open ended.
var kindBands = []struct {
	until   time.Duration
	weights []kindWeight
}{
	{20 * time.Second, []kindWeight{{EnemyBasic, 1}}},
	{60 * time.Second, []kindWeight{{EnemyBasic, 0.7}, {EnemyDasher, 0.3}}},
	{0, []kindWeight{{EnemyBasic, 0.6}, {EnemyDasher, 0.3}, {EnemyBoss, 0.1}}},
}

// SpawnInterval is the number of ticks between spawns given the seconds left.
func SpawnInterval(remaining int) int {
	switch {
	case remaining > 120:
		return 50
	case remaining > 60:
		return 35
	}
	return 15
}

// SpawnSpeed is the chase speed of enemies spawned after elapsed.
func SpawnSpeed(elapsed time.Duration) float64 {
	switch {
	case elapsed < 60*time.Second:
		return 2
	case elapsed < 120*time.Second:
		return 3
	}
	return 4
}

// ChooseKind draws an enemy kind for elapsed. The first band is fixed and
// consumes no randomness.
func ChooseKind(elapsed time.Duration, rng *rand.Rand) EnemyKind {
	weights := kindBands[len(kindBands)-1].weights
	for _, band := range kindBands[:len(kindBands)-1] {
		if elapsed < band.until {
			weights = band.weights
			break
		}
	}
	if len(weights) == 1 {
		return weights[0].kind
	}
	total := 0.0
	for _, w := range weights {
		total += w.weight
	}
	r := rng.Float64() * total
	for _, w := range weights {
		r -= w.weight
		if r < 0 {
			return w.kind
		}
	}
	return weights[len(weights)-1].kind
}

// spawnRadius puts new enemies just beyond the farthest screen edge.
func (g *Game) spawnRadius() float64 {
	return math.Max(g.Rules.Width, g.Rules.Height)/2 + g.Rules.EnemySize
}

// spawn counts the tick and adds an enemy on the ring when the interval hits.
func (g *Game) spawn(elapsed time.Duration) {
	g.Ticks++
	if g.Ticks%SpawnInterval(g.Remaining) != 0 {
		return
	}
	kind := ChooseKind(elapsed, g.rng)
	angle := g.rng.Float64() * 2 * math.Pi
	c := g.Player.Pos
	x, y := gamemath.PointOnRing(c.X, c.Y, g.spawnRadius(), angle)
	g.AddEnemy(kind, Vec2{X: x, Y: y}, SpawnSpeed(elapsed))
}
