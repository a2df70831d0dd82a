package chip8

import "fmt"

// CPU holds all state a CHIP-8 program can observe and mutate: sixteen
// general registers (VF doubles as the ALU/draw flag register), the index
// register, program counter, a 16-frame call stack, delay/sound timers and
// a random source. It has no knowledge of memory, the frame buffer or the
// keyboard beyond what it borrows from a Bus for the duration of a Tick.
type CPU struct {
	v  [RegisterCount]Byte
	i  Address
	pc Address

	stack [StackSize]Address
	sp    Byte

	dt Byte
	st Byte

	rand RandomSource
}

// NewCPU returns a CPU with PC at ProgramBegin and everything else zeroed,
// using the default math/rand-backed random source.
func NewCPU() *CPU {
	return NewCPUWithRandomSource(NewRandomSource())
}

// NewCPUWithRandomSource is NewCPU with an injectable RandomSource, so tests
// can supply a deterministic byte stream for RND.
func NewCPUWithRandomSource(rs RandomSource) *CPU {
	return &CPU{pc: ProgramBegin, rand: rs}
}

// Reset restores PC to ProgramBegin and clears registers, the stack and the
// timers. It does not touch memory or the frame buffer (those belong to the
// Bus, not the CPU).
func (c *CPU) Reset() {
	c.v = [RegisterCount]Byte{}
	c.i = 0
	c.pc = ProgramBegin
	c.stack = [StackSize]Address{}
	c.sp = 0
	c.dt = 0
	c.st = 0
}

// PC returns the current program counter.
func (c *CPU) PC() Address { return c.pc }

// SP returns the current stack depth (number of pushed frames).
func (c *CPU) SP() Byte { return c.sp }

// V returns the value of general register r.
func (c *CPU) V(r Nibble) Byte { return c.v[r] }

// I returns the index register.
func (c *CPU) I() Address { return c.i }

// DT and ST return the delay and sound timers.
func (c *CPU) DT() Byte { return c.dt }
func (c *CPU) ST() Byte { return c.st }

// TimerDecrement decrements DT and ST by 1 each, if nonzero. Called by the
// driver at ~60 Hz; the CPU never decrements timers on its own as part of a
// Tick.
func (c *CPU) TimerDecrement() {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// Tick runs one fetch-decode-execute cycle against bus and returns the new
// PC, which the debugger checks against its breakpoint set. Fatal invariant
// violations (unknown opcode, stack under/overflow) panic, matching the
// memory bounds checks in MainMemory.
func (c *CPU) Tick(bus *Bus) Address {
	instr := bus.ReadInstruction(c.pc)
	c.pc += 2

	op := Decode(instr)
	c.execute(op, bus)

	return c.pc
}

func (c *CPU) execute(op Operation, bus *Bus) {
	switch op.Op {
	case OpCLS:
		bus.Frame().Clear()
	case OpRET:
		if c.sp == 0 {
			panic("chip8: RET with empty stack")
		}
		c.sp--
		c.pc = c.stack[c.sp]
	case OpSYS:
		// 0nnn, historically "call RCA 1802 program at nnn"; no-op here.
	case OpJP:
		c.pc = op.NNN
	case OpCALL:
		if c.sp == StackSize {
			panic("chip8: CALL with full stack")
		}
		c.stack[c.sp] = c.pc
		c.sp++
		c.pc = op.NNN
	case OpSEVxByte:
		if c.v[op.X] == op.KK {
			c.pc += 2
		}
	case OpSNEVxByte:
		if c.v[op.X] != op.KK {
			c.pc += 2
		}
	case OpSEVxVy:
		if c.v[op.X] == c.v[op.Y] {
			c.pc += 2
		}
	case OpLDVxByte:
		c.v[op.X] = op.KK
	case OpADDVxByte:
		c.v[op.X] += op.KK
	case OpLDVxVy:
		c.v[op.X] = c.v[op.Y]
	case OpOR:
		c.v[op.X] |= c.v[op.Y]
	case OpAND:
		c.v[op.X] &= c.v[op.Y]
	case OpXOR:
		c.v[op.X] ^= c.v[op.Y]
	case OpADDVxVy:
		sum := uint16(c.v[op.X]) + uint16(c.v[op.Y])
		c.v[op.X] = Byte(sum)
		if sum > 0xFF {
			c.v[0xF] = 1
		} else {
			c.v[0xF] = 0
		}
	case OpSUBVxVy:
		borrow := c.v[op.X] > c.v[op.Y]
		c.v[op.X] = c.v[op.X] - c.v[op.Y]
		if borrow {
			c.v[0xF] = 1
		} else {
			c.v[0xF] = 0
		}
	case OpSHR:
		lsb := c.v[op.X] & 0x1
		c.v[op.X] >>= 1
		c.v[0xF] = lsb
	case OpSUBNVxVy:
		borrow := c.v[op.Y] > c.v[op.X]
		c.v[op.X] = c.v[op.Y] - c.v[op.X]
		if borrow {
			c.v[0xF] = 1
		} else {
			c.v[0xF] = 0
		}
	case OpSHL:
		msb := (c.v[op.X] & 0x80) >> 7
		c.v[op.X] = (c.v[op.X] << 1) & 0xFF
		c.v[0xF] = msb
	case OpSNEVxVy:
		if c.v[op.X] != c.v[op.Y] {
			c.pc += 2
		}
	case OpLDInnn:
		c.i = op.NNN
	case OpJPV0:
		c.pc = Address(c.v[0]) + op.NNN
	case OpRND:
		c.v[op.X] = c.rand.Byte() & op.KK
	case OpDRW:
		sprite := make([]Byte, op.N)
		for r := Nibble(0); r < op.N; r++ {
			sprite[r] = bus.ReadByte(c.i + Address(r))
		}
		collided := bus.Frame().DrawSprite(int(c.v[op.X]), int(c.v[op.Y]), sprite)
		if collided {
			c.v[0xF] = 1
		} else {
			c.v[0xF] = 0
		}
	case OpSKP:
		if bus.Keyboard().IsDown(c.v[op.X]) {
			c.pc += 2
		}
	case OpSKNP:
		if !bus.Keyboard().IsDown(c.v[op.X]) {
			c.pc += 2
		}
	case OpLDVxDT:
		c.v[op.X] = c.dt
	case OpLDVxK:
		key, pressed := bus.Keyboard().Pressed()
		if !pressed {
			c.pc -= 2
		} else {
			c.v[op.X] = key
		}
	case OpLDDTVx:
		c.dt = c.v[op.X]
	case OpLDSTVx:
		c.st = c.v[op.X]
	case OpADDIVx:
		c.i += Address(c.v[op.X])
	case OpLDFVx:
		c.i = Address(c.v[op.X]) * FontGlyphBytes
	case OpLDBVx:
		val := c.v[op.X]
		bus.WriteByte(c.i, val/100)
		bus.WriteByte(c.i+1, (val/10)%10)
		bus.WriteByte(c.i+2, val%10)
	case OpLDIVx:
		for r := Nibble(0); r <= op.X; r++ {
			bus.WriteByte(c.i+Address(r), c.v[r])
		}
	case OpLDVxI:
		for r := Nibble(0); r <= op.X; r++ {
			c.v[r] = bus.ReadByte(c.i + Address(r))
		}
	default:
		panic(fmt.Sprintf("chip8: unknown opcode %#04x at pc %#04x", op.Raw, c.pc-2))
	}
}
