// Package display implements the windowed run loop: a single-threaded
// cooperative loop that interleaves CPU ticks, the 60 Hz timer decrement,
// display refresh and keyboard sampling on independent wall-clock
// deadlines (spec §4.5). It is the out-of-scope "windowing/graphics
// backend" collaborator's concrete home, built on the teacher's
// faiface/pixel stack.
package display

import (
	"fmt"
	"time"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	scale         = 10
	screenWidth   = chip8.DisplayWidth * scale
	screenHeight  = chip8.DisplayHeight * scale
	inputInterval = 200 * time.Millisecond
	tickInterval  = 2 * time.Millisecond
	timerInterval = 17 * time.Millisecond
	drawInterval  = 10 * time.Millisecond
)

// keyMap maps the numeric keypad 0-9 and letter keys A-F directly onto
// CHIP-8 nibbles, per spec §6 ("Numeric keypad 0..9 -> nibbles 0x0..0x9;
// letter keys A..F -> 0xA..0xF").
var keyMap = map[pixelgl.Button]chip8.Nibble{
	pixelgl.Key0: 0x0, pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3,
	pixelgl.Key4: 0x4, pixelgl.Key5: 0x5, pixelgl.Key6: 0x6, pixelgl.Key7: 0x7,
	pixelgl.Key8: 0x8, pixelgl.Key9: 0x9,
	pixelgl.KeyA: 0xA, pixelgl.KeyB: 0xB, pixelgl.KeyC: 0xC, pixelgl.KeyD: 0xD,
	pixelgl.KeyE: 0xE, pixelgl.KeyF: 0xF,
}

// RunLoop drives a chip8.CPU/Bus pair inside a pixelgl window.
type RunLoop struct {
	cpu *chip8.CPU
	bus *chip8.Bus
	win *pixelgl.Window

	verbose bool

	lastInput       time.Time
	lastInstruction time.Time
	lastTimer       time.Time
	lastDisplay     time.Time
}

// NewRunLoop opens a 640x320 window (10x the logical 64x32 grid) and wires
// it to a freshly constructed CPU/Bus pair loaded with rom.
func NewRunLoop(rom chip8.ROM, verbose bool) (*RunLoop, error) {
	mem, err := chip8.NewMainMemory(rom.Bytes())
	if err != nil {
		return nil, err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "chip8vm",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	now := time.Now()
	return &RunLoop{
		cpu:             chip8.NewCPU(),
		bus:             chip8.NewBus(mem),
		win:             win,
		verbose:         verbose,
		lastInput:       now,
		lastInstruction: now,
		lastTimer:       now,
		lastDisplay:     now,
	}, nil
}

// Run executes the loop until the window is closed or Escape is pressed.
func (rl *RunLoop) Run() {
	for !rl.win.Closed() && !rl.win.Pressed(pixelgl.KeyEscape) {
		now := time.Now()
		observedKey := rl.sampleInput(now)

		if now.Sub(rl.lastInput) >= inputInterval || observedKey {
			rl.lastInput = now
		}

		if now.Sub(rl.lastInstruction) >= tickInterval {
			pc := rl.cpu.Tick(rl.bus)
			rl.lastInstruction = now
			if rl.verbose {
				fmt.Printf("tick: pc now %#04x\n", pc)
			}
		}

		if now.Sub(rl.lastTimer) >= timerInterval {
			rl.cpu.TimerDecrement()
			rl.lastTimer = now
		}

		if now.Sub(rl.lastDisplay) >= drawInterval {
			rl.draw()
			rl.lastDisplay = now
		} else {
			rl.win.UpdateInput()
		}
	}
}

// sampleInput latches the first currently-pressed mapped key as soon as one
// is observed and reports whether it found one. When no mapped key is down,
// the latch is cleared only once inputInterval has elapsed since the last
// input sample.
func (rl *RunLoop) sampleInput(now time.Time) bool {
	for btn, nibble := range keyMap {
		if rl.win.Pressed(btn) {
			rl.bus.Keyboard().SetPressed(nibble)
			return true
		}
	}
	if now.Sub(rl.lastInput) >= inputInterval {
		rl.bus.Keyboard().Release()
	}
	return false
}

func (rl *RunLoop) draw() {
	rl.win.Clear(colornames.Black)

	imDraw := imdraw.New(nil)
	imDraw.Color = pixel.RGB(1, 1, 1)

	frame := rl.bus.Frame()
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if !frame.Pixel(x, y) {
				continue
			}
			// Flip y: pixel's coordinate origin is bottom-left, the frame
			// buffer's is top-left.
			flippedY := chip8.DisplayHeight - 1 - y
			imDraw.Push(pixel.V(float64(x*scale), float64(flippedY*scale)))
			imDraw.Push(pixel.V(float64(x*scale+scale), float64(flippedY*scale+scale)))
			imDraw.Rectangle(0)
		}
	}

	imDraw.Draw(rl.win)
	rl.win.Update()
}
