package systems

import (
	"image/color"

	"github.com/automoto/survivor/assets"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Entity positions are centers. Sprites are anchored on their middle and a
// missing sprite is replaced by a shape of the entity's collision size.

// DrawBackground tiles the background image over the scrolling window.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sprites.BackgroundColor)

	session, ok := sessionOf(e)
	if !ok {
		return
	}
	g := session.Game
	w, h := g.Rules.TileWidth, g.Rules.TileHeight

	for _, t := range g.Tiles {
		if bg := spritesOf(session).Background; bg != nil {
			b := bg.Bounds()
			drawCentered(screen, bg, t, w/float64(b.Dx()), h/float64(b.Dy()))
			continue
		}
		vector.StrokeRect(screen,
			float32(t.X-w/2), float32(t.Y-h/2), float32(w), float32(h),
			2, cfg.Sprites.TileLineColor, false)
	}
}

// DrawItems renders dropped power-ups.
func DrawItems(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := sessionOf(e)
	if !ok {
		return
	}
	sprites := spritesOf(session)
	size := session.Game.Rules.ItemSize

	for _, it := range session.Game.Items {
		if img := sprites.Items[it.Kind]; img != nil {
			drawCentered(screen, img, it.Pos, 1, 1)
			continue
		}
		fillSquare(screen, it.Pos, size, cfg.Sprites.ItemColors[it.Kind])
	}
}

// DrawEnemies renders enemies with their walk cycle.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := sessionOf(e)
	if !ok {
		return
	}
	sprites := spritesOf(session)
	size := session.Game.Rules.EnemySize

	for _, en := range session.Game.Enemies {
		if img := enemyFrame(sprites.Enemies[en.Kind], en.Frame); img != nil {
			drawCentered(screen, img, en.Pos, 1, 1)
			continue
		}
		fillSquare(screen, en.Pos, size, cfg.Sprites.EnemyColors[en.Kind])
	}
}

// enemyFrame picks the walk frame for an enemy that has lived frame ticks.
func enemyFrame(frames []*ebiten.Image, frame int) *ebiten.Image {
	if len(frames) == 0 {
		return nil
	}
	step := cfg.Sprites.EnemyFrameTicks
	if step <= 0 {
		step = 1
	}
	return frames[(frame/step)%len(frames)]
}

// DrawBullets renders both sides' bullets.
func DrawBullets(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := sessionOf(e)
	if !ok {
		return
	}
	sprites := spritesOf(session)
	r := float32(session.Game.Rules.BulletSize / 2)

	draw := func(list []*sim.Bullet, img *ebiten.Image, fallback color.Color) {
		for _, b := range list {
			if img != nil {
				drawCentered(screen, img, b.Pos, 1, 1)
				continue
			}
			vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), r, fallback, true)
		}
	}
	draw(session.Game.Bullets, sprites.Bullet, cfg.Sprites.BulletColor)
	draw(session.Game.EnemyBullets, sprites.EnemyBullet, cfg.Sprites.EnemyBullet)
}

// DrawPlayer renders the player and, while it is up, the pulsing shield.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := sessionOf(e)
	if !ok {
		return
	}
	sprites := spritesOf(session)
	p := session.Game.Player
	size := session.Game.Rules.PlayerSize

	if n := len(sprites.Player); n > 0 {
		drawCentered(screen, sprites.Player[p.Frame%n], p.Pos, 1, 1)
	} else {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(size/2), cfg.Sprites.PlayerColor, true)
	}

	if !p.ShieldVisible {
		return
	}
	scale := float64(GetOrCreateEffects(e).ShieldScale)
	if sprites.Shield != nil {
		drawCentered(screen, sprites.Shield, p.Pos, scale, scale)
		return
	}
	vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(size*0.8*scale), 3, cfg.Sprites.ShieldColor, true)
}

// DrawDamageFlash tints the screen while the hurt flash fades.
func DrawDamageFlash(e *ecs.ECS, screen *ebiten.Image) {
	fx := GetOrCreateEffects(e)
	if fx.FlashAlpha <= 0 {
		return
	}
	c := cfg.Effects.DamageFlashColor
	c.A = uint8(float32(c.A) * fx.FlashAlpha)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

var noSprites = &assets.SpriteSet{}

func spritesOf(session *components.SessionData) *assets.SpriteSet {
	if session.Sprites == nil {
		return noSprites
	}
	return session.Sprites
}

func drawCentered(screen, img *ebiten.Image, pos sim.Vec2, sx, sy float64) {
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Scale(sx, sy)
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, drawOp)
}

func fillSquare(screen *ebiten.Image, pos sim.Vec2, size float64, c color.Color) {
	vector.FillRect(screen,
		float32(pos.X-size/2), float32(pos.Y-size/2), float32(size), float32(size),
		c, false)
}
