package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/survivor/assets"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/shared/sim"
	"github.com/google/uuid"
	"github.com/yohamta/donburi/ecs"
)

// SessionRules returns the configured rules with the scrolling tile sized to
// the background image, when there is one. A tile is never smaller than half
// the screen; smaller images are stretched to fit.
func SessionRules(sprites *assets.SpriteSet) sim.Rules {
	rules := cfg.Rules
	if sprites != nil && sprites.Background != nil {
		b := sprites.Background.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			rules.TileWidth = max(float64(b.Dx()), rules.Width/2)
			rules.TileHeight = max(float64(b.Dy()), rules.Height/2)
		}
	}
	return rules
}

// StartSession creates the run for this world. A zero seed picks one from the
// clock. Cues raised by the run are routed to the audio queue.
func StartSession(e *ecs.ECS, seed int64, sprites *assets.SpriteSet) *components.SessionData {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	entry := e.World.Entry(e.World.Create(components.Session))
	components.Session.SetValue(entry, components.SessionData{
		ID:      uuid.New(),
		Seed:    seed,
		Game:    sim.New(SessionRules(sprites), rand.New(rand.NewSource(seed)), NewAudioPresenter(e)),
		Sprites: sprites,
	})

	session := components.Session.Get(entry)
	log.Printf("Starting run %s (seed %d)", session.ID, session.Seed)
	return session
}

func sessionOf(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// NewUpdateSession advances the run one tick per update and opens the result
// scene once the outcome has been on screen for a moment.
func NewUpdateSession(sceneChanger SceneChanger, createResultScene func(components.ResultData) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		session, ok := sessionOf(e)
		if !ok {
			return
		}
		game := session.Game

		if !game.Over() {
			input := getOrCreateInput(e)
			if GetAction(input, cfg.ActionFire).JustPressed {
				game.Fire()
			}
			if game.Update(MoveInput(input)) != sim.Running {
				FadeOutMusic(e)
				log.Printf("Run %s %s after %s with %d kills",
					session.ID, game.Outcome, game.Elapsed().Truncate(time.Second), game.Stats.Kills)
			}
			return
		}

		session.EndTimer++
		if session.EndTimer == cfg.Result.HoldTicks {
			sceneChanger.ChangeScene(createResultScene(ResultFromGame(game)))
		}
	}
}

// ResultFromGame summarizes a run for the result screen.
func ResultFromGame(g *sim.Game) components.ResultData {
	survived := int(g.Elapsed() / time.Second)
	if limit := g.Rules.SurvivalSeconds(); survived > limit {
		survived = limit
	}
	return components.ResultData{
		Outcome:  g.Outcome,
		Survived: survived,
		Kills:    g.Stats.Kills,
		Picked:   g.Stats.ItemsPicked,
	}
}
