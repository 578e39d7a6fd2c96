package sim

import "github.com/automoto/survivor/shared/gamemath"

// Fire launches the player's fan of bullets along the facing direction.
func (g *Game) Fire() {
	if g.Over() {
		return
	}
	p := &g.Player
	dirX, dirY := gamemath.Normalize(p.Facing.X, p.Facing.Y)
	if dirX == 0 && dirY == 0 {
		dirY = -1
	}
	// The fan spreads along the perpendicular of the shot.
	perpX, perpY := -dirY, dirX
	for _, off := range gamemath.FanOffsets(p.BulletCount, g.Rules.FanSpacing) {
		pos := Vec2{X: p.Pos.X + perpX*off, Y: p.Pos.Y + perpY*off}
		g.AddBullet(pos, Vec2{X: dirX, Y: dirY}, SidePlayer)
	}
	g.Stats.ShotsFired++
	g.presenter.Play(CueFire)
}

// AddBullet registers a bullet for side at pos traveling along dir.
func (g *Game) AddBullet(pos, dir Vec2, side Side) *Bullet {
	b := &Bullet{Pos: pos, Dir: dir, Side: side}
	if side == SidePlayer {
		b.Speed = g.Rules.PlayerBulletSpeed
		b.obj = g.bp.add(pos, g.Rules.BulletSize, b, tagPlayerBullet)
		g.Bullets = append(g.Bullets, b)
		return b
	}
	b.Speed = g.Rules.EnemyBulletSpeed
	b.obj = g.bp.add(pos, g.Rules.BulletSize, b, tagEnemyBullet)
	g.EnemyBullets = append(g.EnemyBullets, b)
	return b
}

func (g *Game) advanceBullets() {
	for _, list := range [][]*Bullet{g.Bullets, g.EnemyBullets} {
		for _, b := range list {
			b.Pos.X += b.Dir.X * b.Speed
			b.Pos.Y += b.Dir.Y * b.Speed
			if !gamemath.InRect(b.Pos.X, b.Pos.Y, g.Rules.Width, g.Rules.Height) {
				b.dead = true
			}
		}
	}
}
