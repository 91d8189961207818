package elfit

import "fmt"

// OsAbi identifies the OS/ABI convention a file targets.
type OsAbi uint8

const (
	AbiSystemV OsAbi = 0x00
	AbiLinux   OsAbi = 0x03
)

func (a OsAbi) String() string {
	switch a {
	case AbiSystemV:
		return "unix - system v"
	case AbiLinux:
		return "linux"
	default:
		return fmt.Sprintf("other(%#x)", uint8(a))
	}
}

// FileType tells what kind of object a file is. Values in the
// 0xFE00-0xFEFF range are reserved for operating systems, values in the
// 0xFF00-0xFFFF range for processors.
type FileType uint16

const (
	TypeNone FileType = iota
	TypeRelocatable
	TypeExecutable
	TypeDynamic
	TypeCore
)

const (
	loOsFile, hiOsFile     FileType = 0xFE00, 0xFEFF
	loProcFile, hiProcFile FileType = 0xFF00, 0xFFFF
)

func (t FileType) OsReserved() bool {
	return t >= loOsFile && t <= hiOsFile
}

func (t FileType) ProcReserved() bool {
	return t >= loProcFile && t <= hiProcFile
}

func (t FileType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRelocatable:
		return "relocatable file"
	case TypeExecutable:
		return "executable file"
	case TypeDynamic:
		return "shared object"
	case TypeCore:
		return "core file"
	}
	switch {
	case t.OsReserved():
		return fmt.Sprintf("os(%#x)", uint16(t))
	case t.ProcReserved():
		return fmt.Sprintf("proc(%#x)", uint16(t))
	default:
		return fmt.Sprintf("other(%#x)", uint16(t))
	}
}

// Machine identifies the target instruction set architecture.
type Machine uint16

const (
	MachineX86   Machine = 0x03
	MachineArm   Machine = 0x28
	MachineAmd64 Machine = 0x3E
	MachineArm64 Machine = 0xB7
)

func (m Machine) String() string {
	switch m {
	case MachineX86:
		return "intel 80386"
	case MachineArm:
		return "arm"
	case MachineAmd64:
		return "amd x86-64"
	case MachineArm64:
		return "aarch64"
	default:
		return fmt.Sprintf("other(%#x)", uint16(m))
	}
}

// SegmentType tells how a program header entry should be interpreted.
type SegmentType uint32

const (
	SegmentNull SegmentType = iota
	SegmentLoad
	SegmentDynamic
	SegmentInterpreter
	SegmentNote
	SegmentSharedLibrary
	SegmentProgramHeaders
	SegmentThreadLocal
)

const (
	loOsSegment, hiOsSegment     SegmentType = 0x6000_0000, 0x6FFF_FFFF
	loProcSegment, hiProcSegment SegmentType = 0x7000_0000, 0x7FFF_FFFF
)

func (t SegmentType) OsReserved() bool {
	return t >= loOsSegment && t <= hiOsSegment
}

func (t SegmentType) ProcReserved() bool {
	return t >= loProcSegment && t <= hiProcSegment
}

func (t SegmentType) String() string {
	switch t {
	case SegmentNull:
		return "NULL"
	case SegmentLoad:
		return "LOAD"
	case SegmentDynamic:
		return "DYNAMIC"
	case SegmentInterpreter:
		return "INTERP"
	case SegmentNote:
		return "NOTE"
	case SegmentSharedLibrary:
		return "SHLIB"
	case SegmentProgramHeaders:
		return "PHDR"
	case SegmentThreadLocal:
		return "TLS"
	}
	switch {
	case t.OsReserved():
		return fmt.Sprintf("os(%#x)", uint32(t))
	case t.ProcReserved():
		return fmt.Sprintf("proc(%#x)", uint32(t))
	default:
		return fmt.Sprintf("other(%#x)", uint32(t))
	}
}

// SectionType tells what a section holds. 0x0C and 0x0D are not
// assigned and fall through to the generic rendering.
type SectionType uint32

const (
	SectionNull SectionType = iota
	SectionProgramData
	SectionSymbolTable
	SectionStringTable
	SectionRelaEntries
	SectionHashTable
	SectionDynamic
	SectionNote
	SectionNoBits
	SectionRelEntries
	SectionSharedLibrary
	SectionDynamicSymbols
)

const (
	SectionInitArray     SectionType = 0x0E
	SectionFiniArray     SectionType = 0x0F
	SectionPreInitArray  SectionType = 0x10
	SectionGroup         SectionType = 0x11
	SectionSymbolIndices SectionType = 0x12
)

const (
	loOsSection, hiOsSection     SectionType = 0x6000_0000, 0x6FFF_FFFF
	loProcSection, hiProcSection SectionType = 0x7000_0000, 0x7FFF_FFFF
)

func (t SectionType) OsReserved() bool {
	return t >= loOsSection && t <= hiOsSection
}

func (t SectionType) ProcReserved() bool {
	return t >= loProcSection && t <= hiProcSection
}

func (t SectionType) String() string {
	switch t {
	case SectionNull:
		return "NULL"
	case SectionProgramData:
		return "PROGBITS"
	case SectionSymbolTable:
		return "SYMTAB"
	case SectionStringTable:
		return "STRTAB"
	case SectionRelaEntries:
		return "RELA"
	case SectionHashTable:
		return "HASH"
	case SectionDynamic:
		return "DYNAMIC"
	case SectionNote:
		return "NOTE"
	case SectionNoBits:
		return "NOBITS"
	case SectionRelEntries:
		return "REL"
	case SectionSharedLibrary:
		return "SHLIB"
	case SectionDynamicSymbols:
		return "DYNSYM"
	case SectionInitArray:
		return "INIT_ARRAY"
	case SectionFiniArray:
		return "FINI_ARRAY"
	case SectionPreInitArray:
		return "PREINIT_ARRAY"
	case SectionGroup:
		return "GROUP"
	case SectionSymbolIndices:
		return "SYMTAB_SHNDX"
	}
	switch {
	case t.OsReserved():
		return fmt.Sprintf("os(%#x)", uint32(t))
	case t.ProcReserved():
		return fmt.Sprintf("proc(%#x)", uint32(t))
	default:
		return fmt.Sprintf("other(%#x)", uint32(t))
	}
}
