package asm

import (
	"fmt"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
)

// Disassemble decodes rom's instructions into mnemonic text lines, one per
// instruction, in ROM order. withAddress prefixes each line with its
// address in hex (spec §4.7, the `dis -n` flag). Unknown instructions
// render as "???" via Operation.String, preserving line alignment.
func Disassemble(rom chip8.ROM, withAddress bool) []string {
	instrs := rom.Instructions()
	lines := make([]string, len(instrs))

	for i, instr := range instrs {
		op := chip8.Decode(instr)
		if withAddress {
			addr := chip8.ProgramBegin + chip8.Address(i*2)
			lines[i] = fmt.Sprintf("%#03X %s", addr, op)
		} else {
			lines[i] = op.String()
		}
	}

	return lines
}
