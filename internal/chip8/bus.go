package chip8

// Bus aggregates main memory, the frame buffer and the keyboard latch. It
// is owned exclusively by a driver (the windowed run loop or the debugger)
// and lent mutably to the CPU for the duration of a single tick; nothing
// outside of that tick is permitted to alias it.
type Bus struct {
	memory   *MainMemory
	frame    *FrameBuffer
	keyboard *Keyboard
}

// NewBus wires together a freshly loaded MainMemory with an empty frame
// buffer and keyboard latch.
func NewBus(memory *MainMemory) *Bus {
	return &Bus{
		memory:   memory,
		frame:    NewFrameBuffer(),
		keyboard: NewKeyboard(),
	}
}

// ReadInstruction fetches a big-endian 16-bit word at address (and
// address+1). Used by the CPU's fetch step and by the debugger's context
// window to peek ahead without advancing PC.
func (b *Bus) ReadInstruction(address Address) Instruction {
	hi := Instruction(b.memory.Read(address))
	lo := Instruction(b.memory.Read(address + 1))
	return hi<<8 | lo
}

// ReadByte and WriteByte expose bulk RAM access for the CPU's memory
// opcodes (LD [I],Vx / LD Vx,[I] / LD B,Vx) and DRW's sprite reads.
func (b *Bus) ReadByte(address Address) Byte         { return b.memory.Read(address) }
func (b *Bus) WriteByte(address Address, value Byte) { b.memory.Write(address, value) }

// Frame returns the frame buffer so the CPU can draw and the driver can
// render.
func (b *Bus) Frame() *FrameBuffer { return b.frame }

// Keyboard returns the keyboard latch so the CPU can read it and the driver
// can write it.
func (b *Bus) Keyboard() *Keyboard { return b.keyboard }

// RAM returns the underlying memory, for the debugger's `dump` command.
func (b *Bus) RAM() *MainMemory { return b.memory }
