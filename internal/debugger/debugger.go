// Package debugger implements the interactive stepping debugger: a
// command prompt driving the same chip8.CPU/Bus the windowed run loop
// drives, with breakpoints and an execution-context display (spec §4.6).
// Line-editing is handled by c-bata/go-prompt, the concrete stand-in for
// the out-of-scope line-editor collaborator spec.md names.
package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	prompt "github.com/c-bata/go-prompt"
	colorable "github.com/mattn/go-colorable"
)

const promptLabel = "(chip8-debug) "

// ANSI color control codes. The debugger writes these directly, as a
// terminal side-channel; the VM core never sees or produces them.
const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
	ansiGreen = "\x1b[32m"
)

// Debugger holds a CPU/Bus pair plus the debugger-only state: breakpoints,
// the "currently paused here" PC, a few named int variables (context_span
// among them) and whether the prompt is currently waiting on input or
// resuming freely.
type Debugger struct {
	cpu *chip8.CPU
	bus *chip8.Bus

	out io.Writer

	currentPC   chip8.Address
	needInput   bool
	mustExit    bool
	breakpoints map[chip8.Address]bool
	variables   map[string]int
}

// New constructs a Debugger with rom loaded into a fresh CPU/Bus pair.
func New(rom chip8.ROM) (*Debugger, error) {
	mem, err := chip8.NewMainMemory(rom.Bytes())
	if err != nil {
		return nil, err
	}

	return &Debugger{
		cpu:         chip8.NewCPU(),
		bus:         chip8.NewBus(mem),
		out:         colorable.NewColorableStdout(),
		currentPC:   chip8.ProgramBegin,
		needInput:   true,
		breakpoints: make(map[chip8.Address]bool),
		variables:   map[string]int{"context_span": 2},
	}, nil
}

// Run drives the prompt loop until a `quit`/`exit`/`q` command, or until
// resume mode hits a breakpoint and drops back into prompt mode.
func (d *Debugger) Run() {
	d.showContext()

	for !d.mustExit {
		if d.needInput {
			line := prompt.Input(promptLabel, d.completer)
			d.process(strings.TrimSpace(line))
			continue
		}

		d.currentPC = d.cpu.Tick(d.bus)
		if d.breakpoints[d.currentPC] {
			d.needInput = true
			d.showContext()
			fmt.Fprintf(d.out, "Stopped on breakpoint at %#05X.\n", d.currentPC)
		}
	}
}

func (d *Debugger) completer(doc prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "status", Description: "print CPU registers"},
		{Text: "next", Description: "single tick"},
		{Text: "run", Description: "reset and resume non-interactive"},
		{Text: "continue", Description: "resume non-interactive"},
		{Text: "break", Description: "set a breakpoint at a hex address"},
		{Text: "set", Description: "set a debugger variable"},
		{Text: "ctx", Description: "show execution context"},
		{Text: "dump", Description: "dump RAM"},
		{Text: "screen", Description: "show the frame buffer"},
		{Text: "quit", Description: "exit the debugger"},
	}
	return prompt.FilterHasPrefix(suggestions, doc.GetWordBeforeCursor(), true)
}

func (d *Debugger) process(line string) {
	if line == "" {
		return
	}
	tokens := strings.Fields(line)

	switch tokens[0] {
	case "status":
		fmt.Fprintln(d.out, d.statusString())
	case "run", "r":
		d.cpu.Reset()
		d.needInput = false
	case "continue", "c":
		d.needInput = false
	case "ctx":
		d.showContext()
	case "dump":
		fmt.Fprintln(d.out, d.bus.RAM())
	case "next", "n":
		d.currentPC = d.cpu.Tick(d.bus)
		d.showContext()
	case "screen":
		fmt.Fprintln(d.out, d.bus.Frame())
	case "quit", "exit", "q":
		d.mustExit = true
	case "break", "b":
		if len(tokens) < 2 {
			fmt.Fprintln(d.out, "Missing argument after break")
			return
		}
		addr, err := parseHexAddress(tokens[1])
		if err != nil {
			fmt.Fprintln(d.out, err)
			return
		}
		fmt.Fprintf(d.out, "Setting breakpoint at %#05x.\n", addr)
		d.breakpoints[addr] = true
	case "set":
		if len(tokens) < 3 {
			fmt.Fprintln(d.out, "Usage: set <key> <int>")
			return
		}
		value, err := strconv.Atoi(tokens[2])
		if err != nil {
			fmt.Fprintln(d.out, "Unable to parse value.")
			return
		}
		d.variables[tokens[1]] = value
	default:
		fmt.Fprintf(d.out, "Unknown command: %s\n", tokens[0])
	}
}

func parseHexAddress(tok string) (chip8.Address, error) {
	tok = strings.TrimPrefix(strings.ToLower(tok), "0x")
	v, err := strconv.ParseUint(tok, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("error while parsing address: %w", err)
	}
	return chip8.Address(v), nil
}

type contextLine struct {
	addr chip8.Address
	op   chip8.Operation
}

// executionContext renders a window of disassembled instructions centered
// on currentPC. context_span controls the half-window size and never reads
// below ProgramBegin.
func (d *Debugger) executionContext() []contextLine {
	span := chip8.Address(d.variables["context_span"])
	var start chip8.Address
	if span*2 > d.currentPC {
		start = chip8.ProgramBegin
	} else {
		start = d.currentPC - span*2
		if start < chip8.ProgramBegin {
			start = chip8.ProgramBegin
		}
	}

	var lines []contextLine
	for addr := start; addr <= d.currentPC+span*2; addr += 2 {
		instr := d.bus.ReadInstruction(addr)
		lines = append(lines, contextLine{addr: addr, op: chip8.Decode(instr)})
	}
	return lines
}

func (d *Debugger) showContext() {
	for _, line := range d.executionContext() {
		if line.addr == d.currentPC {
			fmt.Fprintf(d.out, "%-4s%s%#05X   %s%s\n", "->", ansiGreen, line.addr, line.op, ansiReset)
		} else {
			fmt.Fprintf(d.out, "%-4s%#05X   %s\n", "", line.addr, line.op)
		}
	}
}

func (d *Debugger) statusString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pc: %#05X  sp: %d  i: %#05X  dt: %d  st: %d\n", d.cpu.PC(), d.cpu.SP(), d.cpu.I(), d.cpu.DT(), d.cpu.ST())
	for r := chip8.Nibble(0); r < chip8.RegisterCount; r++ {
		fmt.Fprintf(&b, "V%X: %#04X  ", r, d.cpu.V(r))
		if r%4 == 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ExitWithDiagnostic prints a fatal VM error to stderr and exits nonzero.
// Drivers recover the panic CPU.Tick/execute raises on invariant
// violations (unknown opcode, stack over/underflow, out-of-range memory
// access) and call this instead of letting the process crash uninformatively.
func ExitWithDiagnostic(recovered interface{}) {
	fmt.Fprintf(os.Stderr, "%schip8vm: fatal: %v%s\n", ansiBlue, recovered, ansiReset)
	os.Exit(1)
}
