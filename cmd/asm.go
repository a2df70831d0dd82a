package cmd

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chip8vm/internal/asm"
	"github.com/spf13/cobra"
)

var outputFlag string

// asmCmd assembles a source file into a CHIP-8 ROM.
var asmCmd = &cobra.Command{
	Use:   "asm `path/to/source`",
	Short: "assemble chip8vm source to a ROM file",
	Args:  cobra.ExactArgs(1),
	Run:   runAsm,
}

func init() {
	asmCmd.Flags().StringVarP(&outputFlag, "output", "o", "ROM", "output ROM file path")
}

func runAsm(cmd *cobra.Command, args []string) {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading source: %v\n", err)
		os.Exit(1)
	}

	bytecode, err := asm.Assemble(string(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFlag, bytecode, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing rom: %v\n", err)
		os.Exit(1)
	}
}
