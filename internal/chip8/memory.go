package chip8

import (
	"fmt"
	"os"
)

// MainMemory is the 4 KiB byte-addressable RAM. Region 0x000..0x050 holds
// the fontset; ROMs load starting at ProgramBegin. Reads and writes outside
// [0, MemorySize) are a fatal invariant violation, matching the original
// Rust implementation's "assert!(real_address < MEMORY_SIZE)".
type MainMemory struct {
	mem [MemorySize]Byte
}

// NewMainMemory zeroes memory, writes the fontset at offset 0, then copies
// rom starting at ProgramBegin. It returns an error if rom doesn't fit.
func NewMainMemory(rom []Byte) (*MainMemory, error) {
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("rom too large: %d bytes, max %d", len(rom), MaxROMSize)
	}

	m := &MainMemory{}
	copy(m.mem[:FontSetSize], FontSet[:])
	copy(m.mem[ProgramBegin:], rom)

	return m, nil
}

// Read returns the byte at address, panicking if address is out of range.
func (m *MainMemory) Read(address Address) Byte {
	if int(address) >= MemorySize {
		panic(fmt.Sprintf("chip8: read out of memory space: %#04x", address))
	}
	return m.mem[address]
}

// Write stores value at address, panicking if address is out of range.
func (m *MainMemory) Write(address Address, value Byte) {
	if int(address) >= MemorySize {
		panic(fmt.Sprintf("chip8: write out of memory space: %#04x", address))
	}
	m.mem[address] = value
}

// String renders memory as a hex dump, sixteen bytes per row, for the
// debugger's `dump` command.
func (m *MainMemory) String() string {
	s := ""
	for row := 0; row < MemorySize; row += 16 {
		s += fmt.Sprintf("%#05X  ", row)
		for col := 0; col < 16; col++ {
			s += fmt.Sprintf("%02X ", m.mem[row+col])
		}
		s += "\n"
	}
	return s
}

// ROM is a flat byte sequence read from disk (or constructed in tests)
// ready to be loaded into MainMemory at ProgramBegin.
type ROM struct {
	data []Byte
}

// ROMFromFile reads an entire ROM file into memory.
func ROMFromFile(path string) (ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ROM{}, fmt.Errorf("reading rom %s: %w", path, err)
	}
	return ROM{data: data}, nil
}

// ROMFromBytes wraps an in-memory byte slice as a ROM, mainly for tests and
// for the assembler's round-trip checks.
func ROMFromBytes(b []Byte) ROM {
	return ROM{data: append([]Byte(nil), b...)}
}

// Bytes returns the raw ROM bytes.
func (r ROM) Bytes() []Byte {
	return r.data
}

// Size returns the ROM length in bytes.
func (r ROM) Size() int {
	return len(r.data)
}

// Instructions merges the ROM's bytes, two at a time, big-endian, into the
// sequence of 16-bit words the disassembler decodes. A trailing odd byte is
// ignored.
func (r ROM) Instructions() []Instruction {
	out := make([]Instruction, 0, len(r.data)/2)
	for i := 0; i+1 < len(r.data); i += 2 {
		out = append(out, Instruction(r.data[i])<<8|Instruction(r.data[i+1]))
	}
	return out
}
