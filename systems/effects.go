package systems

import (
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects steps the shield pulse and damage flash tweens.
func UpdateEffects(e *ecs.ECS) {
	session, ok := sessionOf(e)
	if !ok {
		return
	}
	p := session.Game.Player
	stepEffects(GetOrCreateEffects(e), p.ShieldVisible, p.HP)
}

func stepEffects(fx *components.EffectsData, shield bool, hp int) {
	if shield {
		if fx.ShieldPulse == nil {
			fx.PulseShrinking = false
			fx.ShieldPulse = newPulse(false)
		}
		scale, done := fx.ShieldPulse.Update(1)
		fx.ShieldScale = scale
		if done {
			fx.PulseShrinking = !fx.PulseShrinking
			fx.ShieldPulse = newPulse(fx.PulseShrinking)
		}
	} else {
		fx.ShieldPulse = nil
		fx.ShieldScale = cfg.Effects.ShieldPulseMax
	}

	if hp < fx.LastHP {
		fx.DamageFlash = gween.New(1, 0, float32(cfg.Effects.DamageFlashTicks), ease.OutQuad)
	}
	fx.LastHP = hp

	if fx.DamageFlash != nil {
		alpha, done := fx.DamageFlash.Update(1)
		fx.FlashAlpha = alpha
		if done {
			fx.DamageFlash = nil
			fx.FlashAlpha = 0
		}
	}
}

func newPulse(shrinking bool) *gween.Tween {
	lo, hi := cfg.Effects.ShieldPulseMin, cfg.Effects.ShieldPulseMax
	if shrinking {
		return gween.New(hi, lo, float32(cfg.Effects.ShieldPulseTicks), ease.InOutSine)
	}
	return gween.New(lo, hi, float32(cfg.Effects.ShieldPulseTicks), ease.InOutSine)
}

// GetOrCreateEffects returns the singleton Effects component, creating if needed
func GetOrCreateEffects(e *ecs.ECS) *components.EffectsData {
	if _, ok := components.Effects.First(e.World); !ok {
		lastHP := cfg.Rules.PlayerHP
		if session, ok := sessionOf(e); ok {
			lastHP = session.Game.Player.HP
		}
		ent := e.World.Entry(e.World.Create(components.Effects))
		components.Effects.SetValue(ent, components.EffectsData{
			ShieldScale: cfg.Effects.ShieldPulseMax,
			LastHP:      lastHP,
		})
	}

	ent, _ := components.Effects.First(e.World)
	return components.Effects.Get(ent)
}
