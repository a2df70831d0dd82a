package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradford-hamilton/chip8vm/internal/asm"
	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/spf13/cobra"
)

var addressFlag bool

// disCmd prints a disassembly of a ROM file.
var disCmd = &cobra.Command{
	Use:   "dis `path/to/rom`",
	Short: "disassemble a chip8vm ROM",
	Args:  cobra.ExactArgs(1),
	Run:   runDis,
}

func init() {
	disCmd.Flags().BoolVarP(&addressFlag, "addresses", "n", false, "prefix each line with its address in hex")
}

func runDis(cmd *cobra.Command, args []string) {
	rom, err := chip8.ROMFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading rom: %v\n", err)
		os.Exit(1)
	}

	header := fmt.Sprintf("%-20s", filepath.Base(args[0]))
	fmt.Println(strings.Replace(header, " ", "-", -1))
	for _, line := range asm.Disassemble(rom, addressFlag) {
		fmt.Println(line)
	}
	fmt.Println(strings.Repeat("-", 20))
}
