package config

import "github.com/automoto/survivor/shared/sim"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFire
	SoundItem
	SoundShieldUp
	SoundShieldDown
	SoundHurt
	SoundWin
	SoundLose
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // ticks for music fade out
}

// SoundConfig maps sound IDs to their manifest keys and simulation cues
type SoundConfig struct {
	Music             string
	Keys              map[SoundID]string
	Cues              map[sim.Cue]SoundID
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.6,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 33,
	}

	Sound = SoundConfig{
		Music: "bgm",
		Keys: map[SoundID]string{
			SoundFire:         "fire",
			SoundItem:         "item",
			SoundShieldUp:     "shieldUp",
			SoundShieldDown:   "shieldDown",
			SoundHurt:         "hurt",
			SoundWin:          "win",
			SoundLose:         "lose",
			SoundMenuNavigate: "menuNavigate",
			SoundMenuSelect:   "menuSelect",
		},
		Cues: map[sim.Cue]SoundID{
			sim.CueFire:       SoundFire,
			sim.CueItemPickup: SoundItem,
			sim.CueShieldUp:   SoundShieldUp,
			sim.CueShieldDown: SoundShieldDown,
			sim.CuePlayerHurt: SoundHurt,
			sim.CueWin:        SoundWin,
			sim.CueLose:       SoundLose,
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFire: 0.6,
		},
	}
}
