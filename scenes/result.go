package scenes

import (
	"sync"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/shared/sim"
	"github.com/automoto/survivor/systems"
	"github.com/automoto/survivor/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene shows how a run ended and offers a retry.
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	res          *Resources
	result       components.ResultData
	resultUI     *ui.ResultUI
	once         sync.Once

	// armed is set once the key that ended the run has been released
	armed    bool
	retry    bool
	backHome bool
}

func NewResultScene(sc SceneChanger, res *Resources, result components.ResultData) *ResultScene {
	return &ResultScene{sceneChanger: sc, res: res, result: result}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
	rs.resultUI.Update()

	switch {
	case rs.retry:
		rs.sceneChanger.ChangeScene(NewSurvivalScene(rs.sceneChanger, rs.res))
	case rs.backHome:
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.res))
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Result.BackgroundColor)

	if rs.resultUI == nil {
		return
	}
	rs.resultUI.UI.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())
	rs.ecs.AddSystem(systems.UpdateAudio)
	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(rs.updateKeys)

	entry := rs.ecs.World.Entry(rs.ecs.World.Create(components.Result))
	components.Result.SetValue(entry, rs.result)

	rs.resultUI = ui.NewResultUI(
		ui.ResultSummary{
			Won:      rs.result.Outcome == sim.Won,
			Survived: rs.result.Survived,
			Kills:    rs.result.Kills,
			Picked:   rs.result.Picked,
		},
		func() { rs.retry = true },
		func() { rs.backHome = true },
	)

	systems.StopMusic(rs.ecs)
}

// updateKeys gives the panel keyboard and gamepad shortcuts.
func (rs *ResultScene) updateKeys(e *ecs.ECS) {
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	data := components.Input.Get(input)
	if !rs.armed {
		rs.armed = !data.Current[cfg.ActionMenuSelect] && !data.Current[cfg.ActionMenuBack]
		return
	}
	if systems.GetAction(data, cfg.ActionMenuSelect).JustPressed {
		rs.retry = true
	}
	if systems.GetAction(data, cfg.ActionMenuBack).JustPressed {
		rs.backHome = true
	}
}
