package systems

import (
	"fmt"

	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders remaining HP in the top-left corner and remaining seconds
// in the top-right corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := sessionOf(e)
	if !ok {
		return
	}
	g := session.Game
	face := fonts.HUD.Get()
	margin := int(cfg.HUD.Margin)
	baseline := margin + int(cfg.HUD.FontSize)

	hp, remaining := hudLines(g.Player.HP, g.Remaining)
	text.Draw(screen, hp, face, margin, baseline, cfg.HUD.HPColor)

	width := screen.Bounds().Dx()
	textWidth := text.BoundString(face, remaining).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, remaining, face, width-margin-textWidth, baseline, cfg.HUD.TimeColor)
}

func hudLines(hp, remaining int) (string, string) {
	return fmt.Sprintf("HP: %d", hp), fmt.Sprintf("Time: %d", remaining)
}
