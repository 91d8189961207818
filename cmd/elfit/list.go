package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
)

func runSections(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	e, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ix\tname\ttype\toffset\tsize")
	for i, s := range e.Sections {
		name, err := e.SectionName(i)
		if err != nil {
			name = fmt.Sprintf("<%d>", s.NameIndex)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%#x\t%d\n", i, name, s.Type, s.Offset, s.Size)
	}
	return w.Flush()
}

func runSegments(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	e, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ix\ttype\toffset\tvaddr\tfilesz\tmemsz")
	for i, s := range e.Segments {
		fmt.Fprintf(w, "%d\t%s\t%#x\t%#x\t%d\t%d\n", i, s.Type, s.Offset, s.VirtualAddr, s.FileSize, s.MemSize)
	}
	return w.Flush()
}
