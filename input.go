package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the controls polled each update.
type Input struct {
	// BoostHeld is true while the boost key is held down.
	BoostHeld bool
	// PausePressed is true on the frame pause was pressed.
	PausePressed bool
	HUDPressed   bool
	QuitPressed  bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.BoostHeld = ebiten.IsKeyPressed(ebiten.KeySpace)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.HUDPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		i.BoostHeld = i.BoostHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
}
