// Package chip8 implements the CHIP-8 virtual machine core: memory, frame
// buffer, keyboard latch, bus, instruction decoder and CPU. Drivers (the
// windowed run loop and the interactive debugger) lend the Bus to the CPU
// one tick at a time; nothing in this package knows about windows, terminals
// or wall-clock time.
package chip8

// Word-size aliases used throughout the core, matching the original Rust
// implementation's specs.rs one for one.
type (
	Byte        = uint8
	Nibble      = uint8
	Address     = uint16
	Instruction = uint16
)

const (
	// MemorySize is the total addressable RAM, in bytes.
	MemorySize = 4096

	// StackSize is the number of return addresses the call stack holds.
	StackSize = 16

	// RegisterCount is the number of general-purpose V registers, V0-VF.
	RegisterCount = 16

	// ProgramBegin is where ROM bytes are copied into memory and where PC
	// starts on construction and reset.
	ProgramBegin Address = 0x200

	// MaxROMSize is the largest ROM that fits between ProgramBegin and the
	// top of memory.
	MaxROMSize = MemorySize - int(ProgramBegin)

	// DisplayWidth and DisplayHeight are the logical frame buffer dimensions.
	DisplayWidth  = 64
	DisplayHeight = 32

	// FontGlyphBytes is the size in bytes of a single hexadecimal glyph.
	FontGlyphBytes = 5

	// FontSetSize is the total size of the embedded fontset, in bytes.
	FontSetSize = 16 * FontGlyphBytes
)

// FontSet holds the sixteen built-in hexadecimal glyphs, five bytes each,
// MSB-first per row. It is preloaded at memory offset 0 by NewMainMemory.
// Bit-exact to spec: glyph d occupies FontSet[5*d : 5*d+5].
var FontSet = [FontSetSize]Byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
