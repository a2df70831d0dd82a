package main

import (
	"github.com/bradford-hamilton/chip8vm/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs access to the main thread, so the whole CLI dispatch
	// runs inside pixelgl.Run even though only `vm` (non-debug) opens a
	// window; asm/dis/debug never touch pixelgl and run through unaffected.
	pixelgl.Run(cmd.Execute)
}
