package elfit

import "fmt"

// Section is one section header entry together with the bytes it points
// at. NameIndex is an offset into the name table section, not a pointer.
type Section struct {
	NameIndex uint32
	Type      SectionType
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	AddrAlign uint64
	EntrySize uint64
	Data      []byte
}

func (s Section) String() string {
	return fmt.Sprintf("%s section: %d bytes at offset %#x (addr %#x, link %d, info %d)", s.Type, s.Size, s.Offset, s.Addr, s.Link, s.Info)
}

func readSections(r *reader, offset uint64, count int) ([]Section, error) {
	if err := r.seek(int64(offset)); err != nil {
		return nil, err
	}
	list := make([]Section, 0, count)
	for i := 0; i < count; i++ {
		s, err := readSection(r)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		list = append(list, s)
	}
	return list, nil
}

func readSection(r *reader) (Section, error) {
	var (
		s   Section
		err error
	)
	if s.NameIndex, err = r.readUint32(); err != nil {
		return s, err
	}
	kind, err := r.readUint32()
	if err != nil {
		return s, err
	}
	s.Type = SectionType(kind)
	if s.Flags, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.Addr, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.Offset, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.Size, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.Link, err = r.readUint32(); err != nil {
		return s, err
	}
	if s.Info, err = r.readUint32(); err != nil {
		return s, err
	}
	if s.AddrAlign, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.EntrySize, err = r.readUint64(); err != nil {
		return s, err
	}
	s.Data, err = r.payload(s.Offset, s.Size)
	return s, err
}
