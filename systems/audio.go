package systems

import (
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/survivor/assets"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/shared/sim"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalAudioFS      fs.FS             = os.DirFS(".")
	globalSoundPaths   map[string]string // manifest key -> path
	globalMissing      = map[string]bool{}
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// ConfigureAudio sets where sounds are read from. It must be called before
// the first scene touches audio.
func ConfigureAudio(fsys fs.FS, sounds map[string]string) {
	globalAudioFS = fsys
	globalSoundPaths = sounds
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalAudioFS)
	})
}

// soundPath resolves a manifest key. Unknown keys and files that failed to
// load resolve to "" so a missing sound is skipped instead of retried.
func soundPath(key string) string {
	path, ok := globalSoundPaths[key]
	if !ok || globalMissing[path] {
		return ""
	}
	return path
}

func markMissing(path string, err error) {
	if globalMissing[path] {
		return
	}
	globalMissing[path] = true
	log.Printf("Warning: %v", err)
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, key := range cfg.Sound.Keys {
		path := soundPath(key)
		if path == "" {
			continue
		}
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			markMissing(path, err)
		}
	}
}

// UpdateAudio processes pending SFX and manages music transitions
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path := soundPath(cfg.Sound.Keys[soundID])
	if path == "" {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		markMissing(path, err)
		return
	}

	player.SetVolume(sfxVolume(soundID, globalSFXVolume))
	player.Play()
}

func sfxVolume(soundID cfg.SoundID, base float64) float64 {
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		return base * mult
	}
	return base
}

// PlayMusic starts playing the looping track stored under key in the manifest.
func PlayMusic(e *ecs.ECS, key string) {
	initGlobalAudio()

	if globalMusicKey == key && globalFadeTimer == 0 {
		return
	}

	path := soundPath(key)
	if path == "" {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		markMissing(path, err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = key
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// CueSound maps a simulation cue to its sound effect.
func CueSound(cue sim.Cue) cfg.SoundID {
	return cfg.Sound.Cues[cue]
}

// NewAudioPresenter returns a presenter that queues each cue's sound on e.
// Sounds play on the next UpdateAudio, after the tick that raised them.
func NewAudioPresenter(e *ecs.ECS) sim.Presenter {
	return sim.PresenterFunc(func(cue sim.Cue) {
		if id := CueSound(cue); id != cfg.SoundNone {
			PlaySFX(e, id)
		}
	})
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		initGlobalAudio()
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
