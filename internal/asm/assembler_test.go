package asm

import (
	"strings"
	"testing"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
)

func assembleOne(t *testing.T, line string) uint16 {
	t.Helper()
	out, err := Assemble(line)
	if err != nil {
		t.Fatalf("Assemble(%q): %v", line, err)
	}
	if len(out) != 2 {
		t.Fatalf("Assemble(%q) produced %d bytes, want 2", line, len(out))
	}
	return uint16(out[0])<<8 | uint16(out[1])
}

func TestAssembleBasicMnemonics(t *testing.T) {
	cases := []struct {
		line string
		want uint16
	}{
		{"cls", 0x00E0},
		{"ret", 0x00EE},
		{"sys 0x123", 0x0123},
		{"jp 0x204", 0x1204},
		{"call 0x204", 0x2204},
		{"se v1, 0x23", 0x3123},
		{"sne v1, 0x23", 0x4123},
		{"se v1, v2", 0x5120},
		{"ld v1, 0x23", 0x6123},
		{"add v1, 0x23", 0x7123},
		{"ld v1, v2", 0x8120},
		{"or v1, v2", 0x8121},
		{"and v1, v2", 0x8122},
		{"xor v1, v2", 0x8123},
		{"add v1, v2", 0x8124},
		{"sub v1, v2", 0x8125},
		{"shr v1", 0x8106},
		{"subn v1, v2", 0x8127},
		{"shl v1", 0x810E},
		{"sne v1, v2", 0x9120},
		{"ld i, 0x345", 0xA345},
		{"jp v0, 0x345", 0xB345},
		{"rnd v1, 0x23", 0xC123},
		{"drw v1, v2, 0x3", 0xD123},
		{"skp v1", 0xE19E},
		{"sknp v1", 0xE1A1},
		{"ld v1, dt", 0xF107},
		{"ld v1, k", 0xF10A},
		{"ld dt, v1", 0xF115},
		{"ld st, v1", 0xF118},
		{"add i, v1", 0xF11E},
		{"ld f, v1", 0xF129},
		{"ld b, v1", 0xF133},
		{"ld [i], v1", 0xF155},
		{"ld v1, [i]", 0xF165},
	}

	for _, c := range cases {
		got := assembleOne(t, c.line)
		if got != c.want {
			t.Errorf("Assemble(%q) = %#04x, want %#04x", c.line, got, c.want)
		}
	}
}

func TestAssembleExpectedInstructionError(t *testing.T) {
	_, err := Assemble("bogus v1, v2")
	if err == nil {
		t.Fatal("expected an error for an unrecognized mnemonic")
	}
	assemblerErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if assemblerErr.Kind != ExpectedInstruction {
		t.Errorf("Kind = %v, want ExpectedInstruction", assemblerErr.Kind)
	}
	if assemblerErr.Line != 1 {
		t.Errorf("Line = %d, want 1", assemblerErr.Line)
	}
}

func TestAssembleExpectedAddressError(t *testing.T) {
	_, err := Assemble("jp v1")
	if err == nil {
		t.Fatal("expected an error for a missing address operand")
	}
	assemblerErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if assemblerErr.Kind != ExpectedAddress {
		t.Errorf("Kind = %v, want ExpectedAddress", assemblerErr.Kind)
	}
}

func TestAssembleTruncatedOperandsReturnErrorsInsteadOfPanicking(t *testing.T) {
	lines := []string{
		"or v1", "and v1", "xor v1", "sub v1", "subn v1",
		"se v2", "sne v2", "add v1", "rnd v1",
		"drw v0 v1", "drw v0", "skp", "sknp",
	}

	for _, line := range lines {
		_, err := Assemble(line)
		if err == nil {
			t.Errorf("Assemble(%q) = nil error, want a malformed-operand error", line)
			continue
		}
		if _, ok := err.(*Error); !ok {
			t.Errorf("Assemble(%q) error type = %T, want *Error", line, err)
		}
	}
}

func TestAssembleLineNumbersInErrors(t *testing.T) {
	_, err := Assemble("cls\nret\nbogus")
	if err == nil {
		t.Fatal("expected an error")
	}
	assemblerErr := err.(*Error)
	if assemblerErr.Line != 3 {
		t.Errorf("Line = %d, want 3", assemblerErr.Line)
	}
}

func TestAssembleSkipsBlankLines(t *testing.T) {
	out, err := Assemble("cls\n\n\nret\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
}

// Every mnemonic the decoder recognizes must round-trip: assemble it, decode
// the bytes, and render it back to the same mnemonic text the assembler
// accepted.
func TestAssembleDisassembleRoundTrip(t *testing.T) {
	lines := []string{
		"cls", "ret", "jp 0x204", "call 0x204",
		"se v1, 0x23", "sne v1, 0x23", "se v1, v2",
		"ld v1, 0x23", "add v1, 0x23", "ld v1, v2",
		"or v1, v2", "and v1, v2", "xor v1, v2", "add v1, v2",
		"sub v1, v2", "subn v1, v2", "sne v1, v2",
		"ld i, 0x345", "jp v0, 0x345", "rnd v1, 0x23",
		"drw v1, v2, 0x3", "skp v1", "sknp v1",
		"ld v1, dt", "ld v1, k", "ld dt, v1", "ld st, v1",
		"add i, v1", "ld f, v1", "ld b, v1", "ld [i], v1", "ld v1, [i]",
	}

	for _, line := range lines {
		bytecode, err := Assemble(line)
		if err != nil {
			t.Fatalf("Assemble(%q): %v", line, err)
		}
		instr := chip8.Instruction(bytecode[0])<<8 | chip8.Instruction(bytecode[1])
		op := chip8.Decode(instr)
		if op.Op == chip8.OpUnknown {
			t.Errorf("Decode(%q) produced OpUnknown", line)
		}
		if got := strings.ToLower(op.String()); got != line {
			t.Errorf("Decode(Assemble(%q)).String() = %q, want it to render back to %q", line, op.String(), line)
		}
	}
}

func TestDisassembleAddresses(t *testing.T) {
	rom := chip8.ROMFromBytes([]byte{0x00, 0xE0, 0x00, 0xEE})
	lines := Disassemble(rom, true)

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "0X200 CLS" {
		t.Errorf("lines[0] = %q, want \"0X200 CLS\"", lines[0])
	}
	if lines[1] != "0X202 RET" {
		t.Errorf("lines[1] = %q, want \"0X202 RET\"", lines[1])
	}
}

func TestDisassembleWithoutAddresses(t *testing.T) {
	rom := chip8.ROMFromBytes([]byte{0x60, 0x05})
	lines := Disassemble(rom, false)

	if len(lines) != 1 || lines[0] != "LD V0, 0X05" {
		t.Errorf("lines = %v, want [\"LD V0, 0X05\"]", lines)
	}
}
