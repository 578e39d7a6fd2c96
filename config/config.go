package config

import (
	"image/color"
	"time"

	"github.com/automoto/survivor/shared/sim"
)

type Config struct {
	Width  int
	Height int
	TPS    int

	// AssetRoot is the directory holding image/, sound/ and assets.yaml.
	AssetRoot string
	// Seed fixes the run's randomness; 0 seeds from the clock.
	Seed int64
}

// HUDConfig contains the in-game text overlay settings
type HUDConfig struct {
	HPColor   color.RGBA
	TimeColor color.RGBA
	Margin    float64
	FontSize  float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ResultConfig contains the end-of-run panel configuration
type ResultConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	WinTitle        string
	LoseTitle       string
	WinColor        color.RGBA
	LoseColor       color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	TitleFontSize   float64
	BodyFontSize    float64
	// HoldTicks keeps the final frame on screen before the panel opens
	HoldTicks int
}

// EffectsConfig contains tween timings, in ticks
type EffectsConfig struct {
	ShieldPulseTicks int
	ShieldPulseMin   float32
	ShieldPulseMax   float32
	DamageFlashTicks int
	DamageFlashColor color.NRGBA
}

// SpriteConfig contains sprite animation settings and the shapes drawn when
// an image is missing
type SpriteConfig struct {
	EnemyFrames     int
	EnemyFrameTicks int
	BackgroundColor color.RGBA
	TileLineColor   color.RGBA
	PlayerColor     color.RGBA
	ShieldColor     color.NRGBA
	BulletColor     color.RGBA
	EnemyBullet     color.RGBA
	EnemyColors     map[sim.EnemyKind]color.RGBA
	ItemColors      map[sim.ItemKind]color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

// Global configuration instances
var C *Config
var Rules sim.Rules
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Result ResultConfig
var Effects EffectsConfig
var Sprites SpriteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// TickRate converts the simulation tick into Ebiten updates per second.
func TickRate(tick time.Duration) int {
	if tick <= 0 {
		return 60
	}
	return int(time.Second / tick)
}

func init() {
	Rules = sim.DefaultRules()

	C = &Config{
		Width:     int(Rules.Width),
		Height:    int(Rules.Height),
		TPS:       TickRate(Rules.Tick),
		AssetRoot: ".",
	}

	HUD = HUDConfig{
		HPColor:   Red,
		TimeColor: Yellow,
		Margin:    20,
		FontSize:  24,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "SURVIVOR",
		TitleY:            220,
		MenuStartY:        360,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Exit"},
	}

	Result = ResultConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 20, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 35, B: 60, A: 230},
		WinTitle:        "CLEAR!",
		LoseTitle:       "GAME OVER",
		WinColor:        Yellow,
		LoseColor:       LightRed,
		TextColor:       White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   Blue,
		ButtonWidth:     220,
		ButtonHeight:    40,
		TitleFontSize:   40,
		BodyFontSize:    20,
		HoldTicks:       45,
	}

	Effects = EffectsConfig{
		ShieldPulseTicks: 30,
		ShieldPulseMin:   0.55,
		ShieldPulseMax:   1.0,
		DamageFlashTicks: 12,
		DamageFlashColor: color.NRGBA{R: 255, G: 0, B: 0, A: 110},
	}

	Sprites = SpriteConfig{
		EnemyFrames:     4,
		EnemyFrameTicks: 5,
		BackgroundColor: color.RGBA{R: 34, G: 51, B: 34, A: 255},
		TileLineColor:   color.RGBA{R: 52, G: 74, B: 52, A: 255},
		PlayerColor:     LightBlue,
		ShieldColor:     color.NRGBA{R: 120, G: 200, B: 255, A: 200},
		BulletColor:     Yellow,
		EnemyBullet:     Magenta,
		EnemyColors: map[sim.EnemyKind]color.RGBA{
			sim.EnemyBasic:  LightRed,
			sim.EnemyDasher: Orange,
			sim.EnemyBoss:   Purple,
		},
		ItemColors: map[sim.ItemKind]color.RGBA{
			sim.ItemHeal:   Red,
			sim.ItemSpeed:  LightGreen,
			sim.ItemPower:  Orange,
			sim.ItemShield: LightBlue,
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
