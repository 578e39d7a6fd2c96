package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectsData drives the purely visual feedback layered over the simulation.
type EffectsData struct {
	// ShieldPulse scales the shield sprite while the shield is up.
	ShieldPulse    *gween.Tween
	ShieldScale    float32
	PulseShrinking bool

	// DamageFlash fades a red overlay after the player loses HP.
	DamageFlash *gween.Tween
	FlashAlpha  float32

	LastHP int
}

var Effects = donburi.NewComponentType[EffectsData]()
