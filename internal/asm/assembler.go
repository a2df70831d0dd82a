// Package asm implements the line-oriented CHIP-8 assembler (spec §4.8).
// It is the inverse of chip8.Decode + chip8.Operation.String(): every
// mnemonic the decoder recognizes round-trips through this package.
package asm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
)

// Error is the assembler's error taxonomy (spec §4.8/§7).
type Error struct {
	Kind Kind
	Line int
}

// Kind enumerates assembler error kinds.
type Kind int

const (
	// ExpectedInstruction means the first token on a line wasn't a
	// recognized mnemonic.
	ExpectedInstruction Kind = iota
	// ExpectedAddress means an address operand was missing or wasn't a
	// hex literal.
	ExpectedAddress
)

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectedInstruction:
		return fmt.Sprintf("line %d: an instruction was expected", e.Line)
	case ExpectedAddress:
		return fmt.Sprintf("line %d: an address was expected", e.Line)
	default:
		return fmt.Sprintf("line %d: assembler error", e.Line)
	}
}

type tokenKind int

const (
	tokInstruction tokenKind = iota
	tokLiteral
	tokRegister
	tokRegisterF
	tokRegisterI
	tokDerefRegisterI
	tokRegisterB
	tokRegisterST
	tokRegisterDT
	tokRegisterK
	tokUnknown
)

type token struct {
	kind    tokenKind
	mnem    string
	literal uint16
	reg     chip8.Nibble
}

var (
	registerRe = regexp.MustCompile(`^v([0-9a-fA-F])$`)
	literalRe  = regexp.MustCompile(`^0x([0-9a-fA-F]+)$`)

	mnemonics = map[string]bool{
		"sys": true, "cls": true, "ret": true, "jp": true, "call": true,
		"se": true, "sne": true, "ld": true, "add": true, "or": true,
		"and": true, "xor": true, "sub": true, "shr": true, "subn": true,
		"shl": true, "rnd": true, "drw": true, "skp": true, "sknp": true,
	}
)

func wordToToken(word string) token {
	lower := strings.ToLower(strings.TrimSuffix(word, ","))

	if mnemonics[lower] {
		return token{kind: tokInstruction, mnem: lower}
	}

	switch lower {
	case "i":
		return token{kind: tokRegisterI}
	case "f":
		return token{kind: tokRegisterF}
	case "[i]":
		return token{kind: tokDerefRegisterI}
	case "b":
		return token{kind: tokRegisterB}
	case "st":
		return token{kind: tokRegisterST}
	case "dt":
		return token{kind: tokRegisterDT}
	case "k":
		return token{kind: tokRegisterK}
	}

	if m := registerRe.FindStringSubmatch(lower); m != nil {
		id, _ := strconv.ParseUint(m[1], 16, 8)
		return token{kind: tokRegister, reg: chip8.Nibble(id)}
	}

	if m := literalRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.ParseUint(m[1], 16, 16)
		return token{kind: tokLiteral, literal: uint16(n)}
	}

	return token{kind: tokUnknown}
}

func pushBytes(out []byte, value uint16) []byte {
	return append(out, byte(value>>8), byte(value&0xFF))
}

// Assemble compiles source into CHIP-8 bytecode, one instruction per
// non-empty line. Errors identify ExpectedInstruction (the first token
// isn't a mnemonic) or ExpectedAddress (an address operand is missing or
// isn't a hex literal).
func Assemble(source string) ([]byte, error) {
	var out []byte

	for lineNo, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		toks := make([]token, len(fields))
		for i, f := range fields {
			toks[i] = wordToToken(f)
		}

		bytecode, err := assembleLine(toks, lineNo+1)
		if err != nil {
			return nil, err
		}
		out = append(out, bytecode...)
	}

	return out, nil
}

func assembleLine(toks []token, lineNo int) ([]byte, error) {
	if len(toks) == 0 || toks[0].kind != tokInstruction {
		return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
	}

	operands := toks[1:]
	var out []byte

	fetchAddr := func(i int) (uint16, error) {
		if i >= len(operands) || operands[i].kind != tokLiteral {
			return 0, &Error{Kind: ExpectedAddress, Line: lineNo}
		}
		return operands[i].literal & 0x0FFF, nil
	}

	fetchReg := func(i int) (chip8.Nibble, error) {
		if i >= len(operands) || operands[i].kind != tokRegister {
			return 0, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
		return operands[i].reg, nil
	}

	switch toks[0].mnem {
	case "cls":
		out = pushBytes(out, 0x00E0)
	case "ret":
		out = pushBytes(out, 0x00EE)
	case "sys":
		addr, err := fetchAddr(0)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, addr)
	case "jp":
		if len(operands) == 2 && operands[0].kind == tokRegister && operands[0].reg == 0 {
			addr, err := fetchAddr(1)
			if err != nil {
				return nil, err
			}
			out = pushBytes(out, 0xB000|addr)
		} else {
			addr, err := fetchAddr(0)
			if err != nil {
				return nil, err
			}
			out = pushBytes(out, 0x1000|addr)
		}
	case "call":
		addr, err := fetchAddr(0)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0x2000|addr)
	case "se":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		if len(operands) < 2 {
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
		if operands[1].kind == tokRegister {
			out = pushBytes(out, 0x5000|uint16(x)<<8|uint16(operands[1].reg)<<4)
		} else if operands[1].kind == tokLiteral {
			out = pushBytes(out, 0x3000|uint16(x)<<8|operands[1].literal)
		} else {
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
	case "sne":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		if len(operands) < 2 {
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
		if operands[1].kind == tokRegister {
			out = pushBytes(out, 0x9000|uint16(x)<<8|uint16(operands[1].reg)<<4)
		} else if operands[1].kind == tokLiteral {
			out = pushBytes(out, 0x4000|uint16(x)<<8|operands[1].literal)
		} else {
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
	case "add":
		if len(operands) < 2 {
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
		x, y := operands[0], operands[1]
		switch {
		case x.kind == tokRegisterI:
			yReg, err := fetchReg(1)
			if err != nil {
				return nil, err
			}
			out = pushBytes(out, 0xF01E|uint16(yReg)<<8)
		case x.kind != tokRegister:
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		case y.kind == tokRegister:
			out = pushBytes(out, 0x8004|uint16(x.reg)<<8|uint16(y.reg)<<4)
		case y.kind == tokLiteral:
			out = pushBytes(out, 0x7000|uint16(x.reg)<<8|y.literal)
		default:
			return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
		}
	case "or":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y, err := fetchReg(1)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0x8001|uint16(x)<<8|uint16(y)<<4)
	case "and":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y, err := fetchReg(1)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0x8002|uint16(x)<<8|uint16(y)<<4)
	case "xor":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y, err := fetchReg(1)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0x8003|uint16(x)<<8|uint16(y)<<4)
	case "sub":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y, err := fetchReg(1)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0x8005|uint16(x)<<8|uint16(y)<<4)
	case "shr":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y := chip8.Nibble(0)
		if len(operands) > 1 && operands[1].kind == tokRegister {
			y = operands[1].reg
		}
		out = pushBytes(out, 0x8006|uint16(x)<<8|uint16(y)<<4)
	case "subn":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y, err := fetchReg(1)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0x8007|uint16(x)<<8|uint16(y)<<4)
	case "shl":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y := chip8.Nibble(0)
		if len(operands) > 1 && operands[1].kind == tokRegister {
			y = operands[1].reg
		}
		out = pushBytes(out, 0x800E|uint16(x)<<8|uint16(y)<<4)
	case "rnd":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		if len(operands) < 2 || operands[1].kind != tokLiteral {
			return nil, &Error{Kind: ExpectedAddress, Line: lineNo}
		}
		out = pushBytes(out, 0xC000|uint16(x)<<8|operands[1].literal)
	case "drw":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		y, err := fetchReg(1)
		if err != nil {
			return nil, err
		}
		if len(operands) < 3 || operands[2].kind != tokLiteral {
			return nil, &Error{Kind: ExpectedAddress, Line: lineNo}
		}
		out = pushBytes(out, 0xD000|uint16(x)<<8|uint16(y)<<4|operands[2].literal)
	case "skp":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0xE09E|uint16(x)<<8)
	case "sknp":
		x, err := fetchReg(0)
		if err != nil {
			return nil, err
		}
		out = pushBytes(out, 0xE0A1|uint16(x)<<8)
	case "ld":
		return assembleLD(operands, lineNo)
	}

	return out, nil
}

func assembleLD(operands []token, lineNo int) ([]byte, error) {
	if len(operands) != 2 {
		return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
	}
	dst, src := operands[0], operands[1]

	var out []byte
	switch {
	case dst.kind == tokRegisterI:
		if src.kind != tokLiteral {
			return nil, &Error{Kind: ExpectedAddress, Line: lineNo}
		}
		out = pushBytes(out, 0xA000|src.literal&0x0FFF)
	case dst.kind == tokRegisterDT:
		out = pushBytes(out, 0xF015|uint16(src.reg)<<8)
	case dst.kind == tokRegisterST:
		out = pushBytes(out, 0xF018|uint16(src.reg)<<8)
	case dst.kind == tokRegisterF:
		out = pushBytes(out, 0xF029|uint16(src.reg)<<8)
	case dst.kind == tokRegisterB:
		out = pushBytes(out, 0xF033|uint16(src.reg)<<8)
	case dst.kind == tokDerefRegisterI:
		out = pushBytes(out, 0xF055|uint16(src.reg)<<8)
	case dst.kind == tokRegister && src.kind == tokDerefRegisterI:
		out = pushBytes(out, 0xF065|uint16(dst.reg)<<8)
	case dst.kind == tokRegister && src.kind == tokRegisterDT:
		out = pushBytes(out, 0xF007|uint16(dst.reg)<<8)
	case dst.kind == tokRegister && src.kind == tokRegisterK:
		out = pushBytes(out, 0xF00A|uint16(dst.reg)<<8)
	case dst.kind == tokRegister && src.kind == tokRegister:
		out = pushBytes(out, 0x8000|uint16(dst.reg)<<8|uint16(src.reg)<<4)
	case dst.kind == tokRegister && src.kind == tokLiteral:
		out = pushBytes(out, 0x6000|uint16(dst.reg)<<8|src.literal)
	default:
		return nil, &Error{Kind: ExpectedInstruction, Line: lineNo}
	}

	return out, nil
}
