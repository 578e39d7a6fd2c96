package sim

import "github.com/automoto/survivor/shared/gamemath"

// AddItem places an item of kind at pos.
func (g *Game) AddItem(kind ItemKind, pos Vec2) *Item {
	it := &Item{Pos: pos, Kind: kind}
	it.obj = g.bp.add(pos, g.Rules.ItemSize, it, tagItem)
	g.Items = append(g.Items, it)
	return it
}

// rollDrop leaves a random item at pos with the configured chance.
func (g *Game) rollDrop(pos Vec2) bool {
	if g.rng.Float64() >= g.Rules.DropChance {
		return false
	}
	kind := ItemKinds[g.rng.Intn(len(ItemKinds))]
	g.AddItem(kind, pos)
	g.Stats.ItemsDropped++
	return true
}

func (g *Game) resolvePickups() {
	near := g.bp.near(g.Player.obj, tagItem)
	if near == nil {
		return
	}
	for _, it := range g.Items {
		if it.dead || !near[it.obj] {
			continue
		}
		if g.touchesPlayer(it.Pos, g.Rules.ItemSize) {
			g.apply(it.Kind)
			it.dead = true
		}
	}
}

// apply grants one item's effect, capped, and always cues the pickup.
func (g *Game) apply(kind ItemKind) {
	p := &g.Player
	switch kind {
	case ItemHeal:
		p.HP = gamemath.ClampInt(p.HP+1, 0, g.Rules.PlayerHP)
	case ItemSpeed:
		p.Speed = min(p.Speed+1, g.Rules.MaxPlayerSpeed)
	case ItemPower:
		p.BulletCount = gamemath.ClampInt(p.BulletCount+1, 1, g.Rules.MaxBulletCount)
	case ItemShield:
		if !p.Shield {
			p.Shield = true
			g.presenter.Play(CueShieldUp)
		}
	}
	g.Stats.ItemsPicked++
	g.presenter.Play(CueItemPickup)
}
