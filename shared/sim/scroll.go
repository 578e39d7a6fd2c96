package sim

import "github.com/automoto/survivor/shared/gamemath"

func (g *Game) tileWindow() []Vec2 {
	tiles := make([]Vec2, 0, 9)
	c := g.Rules.Center()
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			tiles = append(tiles, Vec2{
				X: c.X + float64(i)*g.Rules.TileWidth,
				Y: c.Y + float64(j)*g.Rules.TileHeight,
			})
		}
	}
	return tiles
}

// scroll turns held input into facing and shifts the world opposite to it.
func (g *Game) scroll(in Input) {
	dx := gamemath.Axis(in.Left, in.Right)
	dy := gamemath.Axis(in.Up, in.Down)
	if dx == 0 && dy == 0 {
		return
	}
	g.Player.Facing = Vec2{X: dx, Y: dy}
	sx := -dx * g.Player.Speed
	sy := -dy * g.Player.Speed

	c := g.Rules.Center()
	for i := range g.Tiles {
		t := &g.Tiles[i]
		t.X = gamemath.WrapTile(t.X+sx, c.X, g.Rules.TileWidth)
		t.Y = gamemath.WrapTile(t.Y+sy, c.Y, g.Rules.TileHeight)
	}
	for _, e := range g.Enemies {
		e.Pos.X += sx
		e.Pos.Y += sy
	}
	for _, it := range g.Items {
		it.Pos.X += sx
		it.Pos.Y += sy
	}
	for _, b := range g.EnemyBullets {
		b.Pos.X += sx
		b.Pos.Y += sy
	}
}
