package elfit

import "fmt"

const (
	elfMagic   = 0x464C457F
	class64    = 0x02
	dataLittle = 0x01
	identPad   = 7
)

// Ident is the fixed-layout prefix identifying format, bit width,
// endianness and ABI.
type Ident struct {
	Magic        uint32
	Is64Bit      bool
	LittleEndian bool
	Version      uint8
	Abi          OsAbi
	AbiVersion   uint8
}

type FileHeader struct {
	Ident
	Type             FileType
	Machine          Machine
	Version          uint32
	Entry            uint64
	ProgramOffset    uint64
	SectionOffset    uint64
	Flags            uint32
	Size             uint16
	ProgramEntrySize uint16
	ProgramCount     uint16
	SectionEntrySize uint16
	SectionCount     uint16
	NamesIndex       uint16
}

func readIdent(r *reader) (Ident, error) {
	var (
		id  Ident
		err error
	)
	if id.Magic, err = r.readUint32(); err != nil {
		return id, err
	}
	if id.Magic != elfMagic {
		return id, fmt.Errorf("not an elf file - invalid magic (%#x)", id.Magic)
	}
	class, err := r.readUint8()
	if err != nil {
		return id, err
	}
	if id.Is64Bit = class == class64; !id.Is64Bit {
		return id, fmt.Errorf("unsupported elf class (%#x): only 64-bit is supported", class)
	}
	data, err := r.readUint8()
	if err != nil {
		return id, err
	}
	id.LittleEndian = data == dataLittle
	r.setOrder(id.LittleEndian)

	if id.Version, err = r.readUint8(); err != nil {
		return id, err
	}
	abi, err := r.readUint8()
	if err != nil {
		return id, err
	}
	if id.Abi = OsAbi(abi); id.Abi != AbiSystemV {
		return id, fmt.Errorf("os/abi %s does not match expected unix system v", id.Abi)
	}
	if id.AbiVersion, err = r.readUint8(); err != nil {
		return id, err
	}
	return id, r.skip(identPad)
}

func readHeader(r *reader) (FileHeader, error) {
	var (
		hdr FileHeader
		err error
	)
	if hdr.Ident, err = readIdent(r); err != nil {
		return hdr, err
	}
	kind, err := r.readUint16()
	if err != nil {
		return hdr, err
	}
	hdr.Type = FileType(kind)
	machine, err := r.readUint16()
	if err != nil {
		return hdr, err
	}
	hdr.Machine = Machine(machine)
	if hdr.Version, err = r.readUint32(); err != nil {
		return hdr, err
	}
	if hdr.Entry, err = r.readUint64(); err != nil {
		return hdr, err
	}
	if hdr.ProgramOffset, err = r.readUint64(); err != nil {
		return hdr, err
	}
	if hdr.SectionOffset, err = r.readUint64(); err != nil {
		return hdr, err
	}
	if hdr.Flags, err = r.readUint32(); err != nil {
		return hdr, err
	}
	if hdr.Size, err = r.readUint16(); err != nil {
		return hdr, err
	}
	if hdr.ProgramEntrySize, err = r.readUint16(); err != nil {
		return hdr, err
	}
	if hdr.ProgramCount, err = r.readUint16(); err != nil {
		return hdr, err
	}
	if hdr.SectionEntrySize, err = r.readUint16(); err != nil {
		return hdr, err
	}
	if hdr.SectionCount, err = r.readUint16(); err != nil {
		return hdr, err
	}
	if hdr.NamesIndex, err = r.readUint16(); err != nil {
		return hdr, err
	}
	return hdr, nil
}
