package cmd

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/bradford-hamilton/chip8vm/internal/debugger"
	"github.com/bradford-hamilton/chip8vm/internal/display"
	"github.com/spf13/cobra"
)

var (
	debugFlag   bool
	verboseFlag bool
)

// vmCmd runs the chip8vm emulator, in windowed mode by default or in the
// interactive debugger with --debug.
var vmCmd = &cobra.Command{
	Use:   "vm `path/to/rom`",
	Short: "run the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runVM,
}

func init() {
	vmCmd.Flags().BoolVarP(&debugFlag, "debug", "g", false, "run in the interactive stepping debugger")
	vmCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print extra diagnostics while running")
}

func runVM(cmd *cobra.Command, args []string) {
	rom, err := chip8.ROMFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading rom: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			debugger.ExitWithDiagnostic(r)
		}
	}()

	if debugFlag {
		d, err := debugger.New(rom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error starting debugger: %v\n", err)
			os.Exit(1)
		}
		d.Run()
		return
	}

	loop, err := display.NewRunLoop(rom, verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening window: %v\n", err)
		os.Exit(1)
	}
	loop.Run()
}
