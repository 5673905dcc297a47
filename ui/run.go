package ui

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/eariassoto/dear-nes-lib/nes"
)

const (
	width  = 256
	height = 240
	scale  = 3
	title  = "NES"
)

func init() {
	// we need to keep OpenGL calls on a single thread
	runtime.LockOSThread()
}

// Run opens a window, loads the cartridge at path and drives the console
// one frame per display refresh until the window closes.
func Run(path string) {
	// initialize glfw
	if err := glfw.Init(); err != nil {
		log.Fatalln(err)
	}
	defer glfw.Terminate()

	// create window
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(width*scale, height*scale, title, nil, nil)
	if err != nil {
		log.Fatalln(err)
	}
	window.MakeContextCurrent()

	// initialize gl
	if err := gl.Init(); err != nil {
		log.Fatalln(err)
	}
	gl.Enable(gl.TEXTURE_2D)

	cartridge, err := nes.LoadCartridge(path)
	if err != nil {
		log.Fatalln(err)
	}
	console := nes.NewConsole()
	console.InsertCartridge(cartridge)

	texture := createTexture()

	// main loop
	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if readKey(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
		}
		updateControllers(window, console)
		console.DoFrame()

		gl.BindTexture(gl.TEXTURE_2D, texture)
		setTexture(console.Buffer())
		drawBuffer(window)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
