package platform

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/nathanKramer/starfall/starfall"
)

const uiActionShoot = pixelgl.MouseButtonLeft
const uiActionPause = pixelgl.KeyEscape
const uiActionPauseAlt = pixelgl.KeyP
const uiActionMute = pixelgl.KeyM

func uiConfirm(win *pixelgl.Window) bool {
	return win.JustPressed(pixelgl.KeyEnter) || win.JustPressed(pixelgl.KeySpace)
}

func uiPause(win *pixelgl.Window) bool {
	return win.JustPressed(uiActionPause) || win.JustPressed(uiActionPauseAlt)
}

// pollInput copies this frame's window input into the game's InputState.
// pixelgl reports y upwards from the bottom edge, the game wants y down.
func pollInput(win *pixelgl.Window, in *starfall.InputState) {
	h := win.Bounds().H()
	mouse := win.MousePosition()
	x, y := mouse.X, h-mouse.Y

	if win.MouseInsideWindow() {
		in.Move(x, y)
	} else {
		in.Leave()
	}

	if win.JustPressed(uiActionShoot) {
		in.Press(x, y)
	}
	if win.JustReleased(uiActionShoot) {
		in.Release()
	}

	if uiConfirm(win) {
		in.RequestStart()
	}
	if uiPause(win) {
		in.TogglePause()
	}
}
