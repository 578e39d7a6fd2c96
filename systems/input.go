package systems

import (
	"strings"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// The stick drives both movement and menu navigation
	stick := []struct {
		on      bool
		actions [2]cfg.ActionID
	}{
		{analogLeft, [2]cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionNone}},
		{analogRight, [2]cfg.ActionID{cfg.ActionMoveRight, cfg.ActionNone}},
		{analogUp, [2]cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMenuUp}},
		{analogDown, [2]cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMenuDown}},
	}
	for _, s := range stick {
		if !s.on {
			continue
		}
		for _, id := range s.actions {
			if id != cfg.ActionNone {
				input.Current[id] = true
			}
		}
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := controllerTypeFromName(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, tag := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, tag) {
			return components.InputPlayStation
		}
	}
	// Default gamepad to Xbox-style
	return components.InputXbox
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MoveInput converts the held movement actions into a simulation input.
func MoveInput(input *components.InputData) sim.Input {
	return sim.Input{
		Up:    input.Current[cfg.ActionMoveUp],
		Down:  input.Current[cfg.ActionMoveDown],
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
	}
}
