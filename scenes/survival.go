package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SurvivalScene runs one survival session from spawn to outcome.
type SurvivalScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	res          *Resources
	once         sync.Once
}

func NewSurvivalScene(sc SceneChanger, res *Resources) *SurvivalScene {
	return &SurvivalScene{sceneChanger: sc, res: res}
}

func (ss *SurvivalScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SurvivalScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SurvivalScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	sprites := ss.res.Sprites()

	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ss.sceneChanger, ss.res)
	}
	createResultScene := func(result components.ResultData) interface{} {
		return NewResultScene(ss.sceneChanger, ss.res, result)
	}

	// Audio system (runs first, even when paused)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(ss.sceneChanger, createMenuScene))

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateSession(ss.sceneChanger, createResultScene)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawItems)
	e.AddRenderer(cfg.Default, systems.DrawEnemies)
	e.AddRenderer(cfg.Default, systems.DrawBullets)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Overlay, systems.DrawDamageFlash)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	ss.ecs = e

	systems.StartSession(ss.ecs, ss.res.Seed, sprites)
	systems.PlayMusic(ss.ecs, cfg.Sound.Music)
}
