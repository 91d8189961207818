package elfit

import (
	"fmt"
	"strings"
	"testing"
)

func TestOsAbiNames(t *testing.T) {
	cases := []struct {
		raw  uint8
		name string
	}{
		{0x00, "unix - system v"},
		{0x03, "linux"},
		{0x01, "other(0x1)"},
		{0xFF, "other(0xff)"},
	}
	for _, c := range cases {
		abi := OsAbi(c.raw)
		if uint8(abi) != c.raw {
			t.Errorf("os/abi %#x does not round trip", c.raw)
		}
		if abi.String() != c.name {
			t.Errorf("os/abi %#x: expected %q, got %q", c.raw, c.name, abi)
		}
	}
}

func TestFileTypeWindows(t *testing.T) {
	named := map[FileType]string{
		TypeNone:        "none",
		TypeRelocatable: "relocatable file",
		TypeExecutable:  "executable file",
		TypeDynamic:     "shared object",
		TypeCore:        "core file",
	}
	for kind, name := range named {
		if kind.String() != name {
			t.Errorf("file type %#x: expected %q, got %q", uint16(kind), name, kind)
		}
		if kind.OsReserved() || kind.ProcReserved() {
			t.Errorf("file type %#x should not be in a reserved window", uint16(kind))
		}
	}
	for _, raw := range []uint16{0xFE00, 0xFE80, 0xFEFF} {
		if kind := FileType(raw); !kind.OsReserved() || kind.ProcReserved() {
			t.Errorf("file type %#x should be os reserved", raw)
		}
	}
	for _, raw := range []uint16{0xFF00, 0xFF80, 0xFFFF} {
		if kind := FileType(raw); !kind.ProcReserved() || kind.OsReserved() {
			t.Errorf("file type %#x should be proc reserved", raw)
		}
	}
	for _, raw := range []uint16{0x5, 0x1000, 0xFDFF} {
		kind := FileType(raw)
		if kind.OsReserved() || kind.ProcReserved() {
			t.Errorf("file type %#x should not be reserved", raw)
		}
		if want := fmt.Sprintf("other(%#x)", raw); kind.String() != want {
			t.Errorf("file type %#x: expected %q, got %q", raw, want, kind)
		}
	}
}

func TestFileTypeRoundTrip(t *testing.T) {
	for raw := 0; raw <= 0xFFFF; raw++ {
		if back := uint16(FileType(uint16(raw))); back != uint16(raw) {
			t.Fatalf("file type %#x decodes to %#x", raw, back)
		}
	}
}

func TestSegmentTypeWindows(t *testing.T) {
	named := map[SegmentType]string{
		SegmentNull:           "NULL",
		SegmentLoad:           "LOAD",
		SegmentDynamic:        "DYNAMIC",
		SegmentInterpreter:    "INTERP",
		SegmentNote:           "NOTE",
		SegmentSharedLibrary:  "SHLIB",
		SegmentProgramHeaders: "PHDR",
		SegmentThreadLocal:    "TLS",
	}
	for kind, name := range named {
		if kind.String() != name {
			t.Errorf("segment type %#x: expected %q, got %q", uint32(kind), name, kind)
		}
	}
	for _, raw := range []uint32{0x6000_0000, 0x6800_0000, 0x6FFF_FFFF} {
		if kind := SegmentType(raw); !kind.OsReserved() || kind.ProcReserved() {
			t.Errorf("segment type %#x should be os reserved", raw)
		}
	}
	for _, raw := range []uint32{0x7000_0000, 0x7800_0000, 0x7FFF_FFFF} {
		if kind := SegmentType(raw); !kind.ProcReserved() || kind.OsReserved() {
			t.Errorf("segment type %#x should be proc reserved", raw)
		}
	}
	for _, raw := range []uint32{0x8, 0x5FFF_FFFF, 0x8000_0000, 0xFFFF_FFFF} {
		kind := SegmentType(raw)
		if kind.OsReserved() || kind.ProcReserved() {
			t.Errorf("segment type %#x should not be reserved", raw)
		}
		if !strings.HasPrefix(kind.String(), "other(") {
			t.Errorf("segment type %#x: expected generic rendering, got %q", raw, kind)
		}
	}
}

func TestSectionTypeWindows(t *testing.T) {
	named := map[SectionType]string{
		SectionNull:           "NULL",
		SectionProgramData:    "PROGBITS",
		SectionSymbolTable:    "SYMTAB",
		SectionStringTable:    "STRTAB",
		SectionRelaEntries:    "RELA",
		SectionHashTable:      "HASH",
		SectionDynamic:        "DYNAMIC",
		SectionNote:           "NOTE",
		SectionNoBits:         "NOBITS",
		SectionRelEntries:     "REL",
		SectionSharedLibrary:  "SHLIB",
		SectionDynamicSymbols: "DYNSYM",
		SectionInitArray:      "INIT_ARRAY",
		SectionFiniArray:      "FINI_ARRAY",
		SectionPreInitArray:   "PREINIT_ARRAY",
		SectionGroup:          "GROUP",
		SectionSymbolIndices:  "SYMTAB_SHNDX",
	}
	for kind, name := range named {
		if kind.String() != name {
			t.Errorf("section type %#x: expected %q, got %q", uint32(kind), name, kind)
		}
	}
	// 0x0C and 0x0D carry no name and render generically
	for _, raw := range []uint32{0x0C, 0x0D, 0x13, 0x5FFF_FFFF, 0x8000_0000, 0xFFFF_FFFF} {
		kind := SectionType(raw)
		if kind.OsReserved() || kind.ProcReserved() {
			t.Errorf("section type %#x should not be reserved", raw)
		}
		if want := fmt.Sprintf("other(%#x)", raw); kind.String() != want {
			t.Errorf("section type %#x: expected %q, got %q", raw, want, kind)
		}
	}
	for _, raw := range []uint32{0x6000_0000, 0x6FFF_FFFF} {
		if kind := SectionType(raw); !kind.OsReserved() {
			t.Errorf("section type %#x should be os reserved", raw)
		}
	}
	for _, raw := range []uint32{0x7000_0000, 0x7FFF_FFFF} {
		if kind := SectionType(raw); !kind.ProcReserved() {
			t.Errorf("section type %#x should be proc reserved", raw)
		}
	}
}

func TestMachineNames(t *testing.T) {
	cases := []struct {
		raw  uint16
		name string
	}{
		{0x03, "intel 80386"},
		{0x28, "arm"},
		{0x3E, "amd x86-64"},
		{0xB7, "aarch64"},
		{0x08, "other(0x8)"},
	}
	for _, c := range cases {
		m := Machine(c.raw)
		if uint16(m) != c.raw {
			t.Errorf("machine %#x does not round trip", c.raw)
		}
		if m.String() != c.name {
			t.Errorf("machine %#x: expected %q, got %q", c.raw, c.name, m)
		}
	}
}
