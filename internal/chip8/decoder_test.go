package chip8

import "testing"

func TestDecodeTable(t *testing.T) {
	cases := []struct {
		instr Instruction
		want  Opcode
	}{
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x0123, OpSYS},
		{0x0000, OpUnknown},
		{0x1204, OpJP},
		{0x2204, OpCALL},
		{0x3A12, OpSEVxByte},
		{0x4A12, OpSNEVxByte},
		{0x5AB0, OpSEVxVy},
		{0x5AB1, OpUnknown},
		{0x6A12, OpLDVxByte},
		{0x7A12, OpADDVxByte},
		{0x8AB0, OpLDVxVy},
		{0x8AB1, OpOR},
		{0x8AB2, OpAND},
		{0x8AB3, OpXOR},
		{0x8AB4, OpADDVxVy},
		{0x8AB5, OpSUBVxVy},
		{0x8AB6, OpSHR},
		{0x8AB7, OpSUBNVxVy},
		{0x8ABE, OpSHL},
		{0x8ABF, OpUnknown},
		{0x9AB0, OpSNEVxVy},
		{0x9AB1, OpUnknown},
		{0xA123, OpLDInnn},
		{0xB123, OpJPV0},
		{0xCA12, OpRND},
		{0xDAB4, OpDRW},
		{0xEA9E, OpSKP},
		{0xEAA1, OpSKNP},
		{0xEA12, OpUnknown},
		{0xFA07, OpLDVxDT},
		{0xFA0A, OpLDVxK},
		{0xFA15, OpLDDTVx},
		{0xFA18, OpLDSTVx},
		{0xFA1E, OpADDIVx},
		{0xFA29, OpLDFVx},
		{0xFA33, OpLDBVx},
		{0xFA55, OpLDIVx},
		{0xFA65, OpLDVxI},
		{0xFA99, OpUnknown},
	}

	for _, c := range cases {
		got := Decode(c.instr).Op
		if got != c.want {
			t.Errorf("Decode(%#04x).Op = %v, want %v", c.instr, got, c.want)
		}
	}
}

func TestDecodeIsTotal(t *testing.T) {
	// Every possible 16-bit word must decode without panicking.
	for i := 0; i < 0x10000; i++ {
		Decode(Instruction(i))
	}
}

func TestDecodeFieldExtraction(t *testing.T) {
	op := Decode(0xDAB4)
	if op.X != 0xA {
		t.Errorf("X = %#X, want 0xA", op.X)
	}
	if op.Y != 0xB {
		t.Errorf("Y = %#X, want 0xB", op.Y)
	}
	if op.N != 0x4 {
		t.Errorf("N = %#X, want 0x4", op.N)
	}
}

func TestOperationStringRoundTripsThroughAssemblerLiteralFormat(t *testing.T) {
	op := Decode(0xD123)
	got := op.String()
	want := "DRW V1, V2, 0X3"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnknownOperationString(t *testing.T) {
	op := Decode(0x0000)
	if got := op.String(); got != "???" {
		t.Errorf("String() = %q, want ???", got)
	}
}
