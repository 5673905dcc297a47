package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/eariassoto/dear-nes-lib/nes"
)

func readKey(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// updateControllers samples the keyboard into the first controller's
// button mask. The second pad is left unmapped.
func updateControllers(window *glfw.Window, console *nes.Console) {
	var mask byte
	if readKey(window, glfw.KeyZ) {
		mask |= nes.ButtonA
	}
	if readKey(window, glfw.KeyX) {
		mask |= nes.ButtonB
	}
	if readKey(window, glfw.KeyRightShift) {
		mask |= nes.ButtonSelect
	}
	if readKey(window, glfw.KeyEnter) {
		mask |= nes.ButtonStart
	}
	if readKey(window, glfw.KeyUp) {
		mask |= nes.ButtonUp
	}
	if readKey(window, glfw.KeyDown) {
		mask |= nes.ButtonDown
	}
	if readKey(window, glfw.KeyLeft) {
		mask |= nes.ButtonLeft
	}
	if readKey(window, glfw.KeyRight) {
		mask |= nes.ButtonRight
	}
	console.ClearController(0)
	console.WriteController(0, mask)
}
