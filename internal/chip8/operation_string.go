package chip8

import "fmt"

// String renders an Operation as the textual mnemonic the disassembler and
// the debugger's `ctx` window print, e.g. "JP 0X204" or "LD V0, 0X05".
// Unknown instructions render as "???" to preserve column alignment (§4.7).
func (op Operation) String() string {
	switch op.Op {
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpSYS:
		return fmt.Sprintf("SYS %#03X", op.NNN)
	case OpJP:
		return fmt.Sprintf("JP %#03X", op.NNN)
	case OpCALL:
		return fmt.Sprintf("CALL %#03X", op.NNN)
	case OpSEVxByte:
		return fmt.Sprintf("SE V%X, %#02X", op.X, op.KK)
	case OpSNEVxByte:
		return fmt.Sprintf("SNE V%X, %#02X", op.X, op.KK)
	case OpSEVxVy:
		return fmt.Sprintf("SE V%X, V%X", op.X, op.Y)
	case OpLDVxByte:
		return fmt.Sprintf("LD V%X, %#02X", op.X, op.KK)
	case OpADDVxByte:
		return fmt.Sprintf("ADD V%X, %#02X", op.X, op.KK)
	case OpLDVxVy:
		return fmt.Sprintf("LD V%X, V%X", op.X, op.Y)
	case OpOR:
		return fmt.Sprintf("OR V%X, V%X", op.X, op.Y)
	case OpAND:
		return fmt.Sprintf("AND V%X, V%X", op.X, op.Y)
	case OpXOR:
		return fmt.Sprintf("XOR V%X, V%X", op.X, op.Y)
	case OpADDVxVy:
		return fmt.Sprintf("ADD V%X, V%X", op.X, op.Y)
	case OpSUBVxVy:
		return fmt.Sprintf("SUB V%X, V%X", op.X, op.Y)
	case OpSHR:
		return fmt.Sprintf("SHR V%X", op.X)
	case OpSUBNVxVy:
		return fmt.Sprintf("SUBN V%X, V%X", op.X, op.Y)
	case OpSHL:
		return fmt.Sprintf("SHL V%X", op.X)
	case OpSNEVxVy:
		return fmt.Sprintf("SNE V%X, V%X", op.X, op.Y)
	case OpLDInnn:
		return fmt.Sprintf("LD I, %#03X", op.NNN)
	case OpJPV0:
		return fmt.Sprintf("JP V0, %#03X", op.NNN)
	case OpRND:
		return fmt.Sprintf("RND V%X, %#02X", op.X, op.KK)
	case OpDRW:
		return fmt.Sprintf("DRW V%X, V%X, %#01X", op.X, op.Y, op.N)
	case OpSKP:
		return fmt.Sprintf("SKP V%X", op.X)
	case OpSKNP:
		return fmt.Sprintf("SKNP V%X", op.X)
	case OpLDVxDT:
		return fmt.Sprintf("LD V%X, DT", op.X)
	case OpLDVxK:
		return fmt.Sprintf("LD V%X, K", op.X)
	case OpLDDTVx:
		return fmt.Sprintf("LD DT, V%X", op.X)
	case OpLDSTVx:
		return fmt.Sprintf("LD ST, V%X", op.X)
	case OpADDIVx:
		return fmt.Sprintf("ADD I, V%X", op.X)
	case OpLDFVx:
		return fmt.Sprintf("LD F, V%X", op.X)
	case OpLDBVx:
		return fmt.Sprintf("LD B, V%X", op.X)
	case OpLDIVx:
		return fmt.Sprintf("LD [I], V%X", op.X)
	case OpLDVxI:
		return fmt.Sprintf("LD V%X, [I]", op.X)
	default:
		return "???"
	}
}
