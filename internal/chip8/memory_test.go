package chip8

import "testing"

func TestMainMemoryReadWrite(t *testing.T) {
	mem, err := NewMainMemory(nil)
	if err != nil {
		t.Fatalf("NewMainMemory: %v", err)
	}

	mem.Write(0x345, 23)
	if got := mem.Read(0x345); got != 23 {
		t.Errorf("Read(0x345) = %d, want 23", got)
	}
}

func TestMainMemoryFontSetPreloaded(t *testing.T) {
	mem, err := NewMainMemory(nil)
	if err != nil {
		t.Fatalf("NewMainMemory: %v", err)
	}

	if got := mem.Read(0); got != 0xF0 {
		t.Errorf("font byte 0 = %#02x, want 0xF0", got)
	}
}

func TestMainMemoryROMLoadedAtProgramBegin(t *testing.T) {
	mem, err := NewMainMemory([]byte{0x12, 0x34})
	if err != nil {
		t.Fatalf("NewMainMemory: %v", err)
	}

	if got := mem.Read(ProgramBegin); got != 0x12 {
		t.Errorf("mem[0x200] = %#02x, want 0x12", got)
	}
	if got := mem.Read(ProgramBegin + 1); got != 0x34 {
		t.Errorf("mem[0x201] = %#02x, want 0x34", got)
	}
}

func TestMainMemoryROMTooLarge(t *testing.T) {
	_, err := NewMainMemory(make([]byte, MaxROMSize+1))
	if err == nil {
		t.Fatal("expected an error for an oversized ROM, got nil")
	}
}

func TestMainMemoryOutOfRangePanics(t *testing.T) {
	mem, _ := NewMainMemory(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic reading out of range")
		}
	}()
	mem.Read(0x1000)
}

func TestMainMemoryWriteOutOfRangePanics(t *testing.T) {
	mem, _ := NewMainMemory(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic writing out of range")
		}
	}()
	mem.Write(MemorySize, 1)
}

func TestROMInstructions(t *testing.T) {
	rom := ROMFromBytes([]byte{0x12, 0x04, 0x00, 0x00})
	instrs := rom.Instructions()
	want := []Instruction{0x1204, 0x0000}

	if len(instrs) != len(want) {
		t.Fatalf("got %d instructions, want %d", len(instrs), len(want))
	}
	for i := range want {
		if instrs[i] != want[i] {
			t.Errorf("instrs[%d] = %#04x, want %#04x", i, instrs[i], want[i])
		}
	}
}
