package elfit

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// Debug dumps the header and both tables of file to w.
func Debug(file string, w io.Writer) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	e, err := Parse(r)
	if err != nil {
		return err
	}
	dumpHeader(w, e.Header)
	fmt.Fprintln(w)

	ws := tabwriter.NewWriter(w, 12, 2, 2, ' ', 0)
	fmt.Fprintln(ws, "type\toffset\tvaddr\tpaddr\tfilesz\tmemsz\talign")
	for _, s := range e.Segments {
		fmt.Fprintf(ws, "%s\t%#x\t%#x\t%#x\t%d\t%d\t%#x\n", s.Type, s.Offset, s.VirtualAddr, s.PhysicalAddr, s.FileSize, s.MemSize, s.Align)
	}
	ws.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(ws, "name\ttype\toffset\tsize\tlink\tinfo")
	for i, s := range e.Sections {
		name, err := e.SectionName(i)
		if err != nil {
			name = fmt.Sprintf("<%d>", s.NameIndex)
		}
		fmt.Fprintf(ws, "%s\t%s\t%#x\t%d\t%d\t%d\n", name, s.Type, s.Offset, s.Size, s.Link, s.Info)
	}
	return ws.Flush()
}

func dumpHeader(w io.Writer, h FileHeader) {
	class := "ELF32"
	if h.Is64Bit {
		class = "ELF64"
	}
	data := "big endian"
	if h.LittleEndian {
		data = "little endian"
	}
	fmt.Fprintf(w, "%-28s: %s\n", "Class", class)
	fmt.Fprintf(w, "%-28s: %s\n", "Data", data)
	fmt.Fprintf(w, "%-28s: %d\n", "Version", h.Ident.Version)
	fmt.Fprintf(w, "%-28s: %s\n", "OS/ABI", h.Abi)
	fmt.Fprintf(w, "%-28s: %d\n", "ABI Version", h.AbiVersion)
	fmt.Fprintf(w, "%-28s: %s\n", "Type", h.Type)
	fmt.Fprintf(w, "%-28s: %s\n", "Machine", h.Machine)
	fmt.Fprintf(w, "%-28s: %#x\n", "Entry point address", h.Entry)
	fmt.Fprintf(w, "%-28s: %d\n", "Start of program headers", h.ProgramOffset)
	fmt.Fprintf(w, "%-28s: %d\n", "Start of section headers", h.SectionOffset)
	fmt.Fprintf(w, "%-28s: %#x\n", "Flags", h.Flags)
	fmt.Fprintf(w, "%-28s: %d\n", "Size of this header", h.Size)
	fmt.Fprintf(w, "%-28s: %d\n", "Size of program headers", h.ProgramEntrySize)
	fmt.Fprintf(w, "%-28s: %d\n", "Number of program headers", h.ProgramCount)
	fmt.Fprintf(w, "%-28s: %d\n", "Size of section headers", h.SectionEntrySize)
	fmt.Fprintf(w, "%-28s: %d\n", "Number of section headers", h.SectionCount)
	fmt.Fprintf(w, "%-28s: %d\n", "Section name table index", h.NamesIndex)
}
