package main

import (
	"fmt"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
)

func runShow(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	e, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	class := "ELF32"
	if e.Header.Is64Bit {
		class = "ELF64"
	}
	data := "big endian"
	if e.Header.LittleEndian {
		data = "little endian"
	}
	fmt.Printf("%-12s: %s\n", "Class", class)
	fmt.Printf("%-12s: %s\n", "Data", data)
	fmt.Printf("%-12s: %s\n", "OS/ABI", e.Header.Abi)
	fmt.Printf("%-12s: %s\n", "Type", e.Header.Type)
	fmt.Printf("%-12s: %s\n", "Machine", e.Header.Machine)
	fmt.Printf("%-12s: %#x\n", "Entry", e.Header.Entry)
	fmt.Printf("%-12s: %d\n", "Segments", len(e.Segments))
	fmt.Printf("%-12s: %d\n", "Sections", len(e.Sections))
	if interp := e.Interp(); interp != "" {
		fmt.Printf("%-12s: %s\n", "Interpreter", interp)
	}
	return nil
}
