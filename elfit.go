// Package elfit decodes 64-bit ELF object files: the file header, the
// program header table and the section header table, each entry carrying
// the raw bytes it points at.
package elfit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Elf is the result of one parse. It is never mutated after Parse
// returns and is safe to share.
type Elf struct {
	Header   FileHeader
	Segments []Segment
	Sections []Section
}

func Open(file string) (*Elf, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

// Parse decodes a complete ELF64 image from rs. Any short read, failed
// seek or identification mismatch aborts the whole parse: there is no
// partial result.
func Parse(rs io.ReadSeeker) (*Elf, error) {
	r, err := newReader(rs)
	if err != nil {
		return nil, err
	}
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	segments, err := readSegments(r, hdr.ProgramOffset, int(hdr.ProgramCount))
	if err != nil {
		return nil, err
	}
	sections, err := readSections(r, hdr.SectionOffset, int(hdr.SectionCount))
	if err != nil {
		return nil, err
	}
	e := Elf{
		Header:   hdr,
		Segments: segments,
		Sections: sections,
	}
	return &e, nil
}

// SectionName resolves the name of section i from the name table section
// designated by the file header.
func (e *Elf) SectionName(i int) (string, error) {
	if i < 0 || i >= len(e.Sections) {
		return "", fmt.Errorf("section index %d out of range", i)
	}
	x := int(e.Header.NamesIndex)
	if x >= len(e.Sections) {
		return "", fmt.Errorf("name table index %d out of range", x)
	}
	var (
		data   = e.Sections[x].Data
		offset = int(e.Sections[i].NameIndex)
	)
	if offset >= len(data) {
		return "", fmt.Errorf("invalid name offset %d", offset)
	}
	z := bytes.IndexByte(data[offset:], 0)
	if z < 0 {
		return "", fmt.Errorf("unterminated name at offset %d", offset)
	}
	return string(data[offset : offset+z]), nil
}

// Section returns the first section with the given name, nil when no
// section matches.
func (e *Elf) Section(name string) *Section {
	for i := range e.Sections {
		if n, err := e.SectionName(i); err == nil && n == name {
			return &e.Sections[i]
		}
	}
	return nil
}

// Interp returns the interpreter path from the INTERP segment, empty
// when the file has none.
func (e *Elf) Interp() string {
	for i := range e.Segments {
		if e.Segments[i].Type == SegmentInterpreter {
			return strings.TrimRight(string(e.Segments[i].Data), "\x00")
		}
	}
	return ""
}
