package systems

import (
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause handles pause toggle and menu navigation.
// The system should run after UpdateInput but before the gameplay systems.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		// A finished run can no longer be paused
		if s, ok := sessionOf(e); ok && s.Game.Over() {
			pause.IsPaused = false
			return
		}

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			if pause.IsPaused {
				pause.SelectedOption = components.MenuResume
				PauseMusic(e)
			} else {
				ResumeMusic(e)
			}
			return
		}

		if !pause.IsPaused {
			return
		}

		numOptions := int(components.MenuMainMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(wrapIndex(int(pause.SelectedOption), -1, numOptions))
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(wrapIndex(int(pause.SelectedOption), 1, numOptions))
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				pause.IsPaused = false
				ResumeMusic(e)
			case components.MenuMainMenu:
				StopMusic(e)
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleX := int((width - float64(len(title)*20)) / 2)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	text.Draw(screen, title, titleFont, titleX, int(startY)-40, cfg.Pause.TextColorNormal)

	fontFace := fonts.Menu.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		// Center text horizontally (approximate width calculation for 20pt font)
		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// wrapIndex moves i by delta within [0, n), wrapping at both ends.
func wrapIndex(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
