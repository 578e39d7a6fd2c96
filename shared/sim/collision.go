package sim

import "github.com/automoto/survivor/shared/gamemath"

// hitPlayer applies one hit, spending the shield first.
func (g *Game) hitPlayer() {
	p := &g.Player
	if p.Shield {
		p.Shield = false
		g.Stats.ShieldBlocks++
		g.presenter.Play(CueShieldDown)
		return
	}
	p.HP = max(p.HP-1, 0)
	g.Stats.DamageTaken++
	g.presenter.Play(CuePlayerHurt)
}

func (g *Game) touchesPlayer(pos Vec2, size float64) bool {
	p := g.Player.Pos
	return gamemath.Overlaps(p.X, p.Y, pos.X, pos.Y, g.Rules.PlayerSize, size)
}

func (g *Game) resolveEnemyBullets() {
	near := g.bp.near(g.Player.obj, tagEnemyBullet)
	if near == nil {
		return
	}
	for _, b := range g.EnemyBullets {
		if b.dead || !near[b.obj] {
			continue
		}
		if g.touchesPlayer(b.Pos, g.Rules.BulletSize) {
			g.hitPlayer()
			b.dead = true
		}
	}
}

// resolveContacts removes every enemy touching the player, shielded or not.
func (g *Game) resolveContacts() {
	near := g.bp.near(g.Player.obj, tagEnemy)
	if near == nil {
		return
	}
	for _, e := range g.Enemies {
		if e.dead || !near[e.obj] {
			continue
		}
		if g.touchesPlayer(e.Pos, g.Rules.EnemySize) {
			g.hitPlayer()
			e.dead = true
		}
	}
}

// resolveShots spends every player bullet overlapping an enemy, including
// one already removed by contact this tick. Only the hit that takes a live
// enemy to zero HP kills it and rolls a drop.
func (g *Game) resolveShots() {
	for _, e := range g.Enemies {
		near := g.bp.near(e.obj, tagPlayerBullet)
		if near == nil {
			continue
		}
		for _, b := range g.Bullets {
			if b.dead || !near[b.obj] {
				continue
			}
			if !gamemath.Overlaps(b.Pos.X, b.Pos.Y, e.Pos.X, e.Pos.Y, g.Rules.BulletSize, g.Rules.EnemySize) {
				continue
			}
			b.dead = true
			e.HP--
			if e.HP == 0 && !e.dead {
				e.dead = true
				g.Stats.Kills++
				g.rollDrop(e.Pos)
			}
		}
	}
}
