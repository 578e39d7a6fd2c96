package sim

import "github.com/automoto/survivor/shared/gamemath"

// AddEnemy registers an enemy of kind at pos with its kind's starting stats.
func (g *Game) AddEnemy(kind EnemyKind, pos Vec2, speed float64) *Enemy {
	r := g.Rules.Enemies[kind]
	e := &Enemy{
		Pos:            pos,
		Speed:          speed,
		Kind:           kind,
		HP:             r.HP,
		DashCooldown:   r.DashCooldown,
		AttackCooldown: r.AttackCooldown,
	}
	e.obj = g.bp.add(pos, g.Rules.EnemySize, e, tagEnemy)
	g.Enemies = append(g.Enemies, e)
	g.Stats.Spawned++
	return e
}

// advanceEnemies chases the player and runs each kind's cooldown moves.
func (g *Game) advanceEnemies() {
	target := g.Player.Pos
	for _, e := range g.Enemies {
		from := e.Pos
		vx, vy := gamemath.HomingVelocity(from.X, from.Y, target.X, target.Y, e.Speed)
		e.Pos.X += vx
		e.Pos.Y += vy

		r := g.Rules.Enemies[e.Kind]
		if r.AttackCooldown > 0 {
			e.AttackCooldown--
			if e.AttackCooldown <= 0 {
				g.volley(e.Pos, r.VolleySize)
				e.AttackCooldown = r.AttackCooldown
			}
		}
		if r.DashCooldown > 0 {
			e.DashCooldown--
			if e.DashCooldown <= 0 {
				// The dash follows the same line as this tick's step
				dx, dy := gamemath.HomingVelocity(from.X, from.Y, target.X, target.Y, r.DashImpulse)
				e.Pos.X += dx
				e.Pos.Y += dy
				e.DashCooldown = r.DashCooldown
			}
		}
		e.Frame++
	}
}

// volley fires n enemy bullets outward from pos at even angular steps.
func (g *Game) volley(pos Vec2, n int) {
	for _, d := range gamemath.RadialDirections(n) {
		g.AddBullet(pos, Vec2{X: d[0], Y: d[1]}, SideEnemy)
	}
}
