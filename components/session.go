package components

import (
	"github.com/automoto/survivor/assets"
	"github.com/automoto/survivor/shared/sim"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// SessionData binds one survival run to the scene's world.
type SessionData struct {
	ID      uuid.UUID
	Seed    int64
	Game    *sim.Game
	Sprites *assets.SpriteSet

	// EndTimer counts ticks shown after the outcome before the result screen.
	EndTimer int
}

var Session = donburi.NewComponentType[SessionData]()
