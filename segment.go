package elfit

import "fmt"

// Segment is one program header entry together with the bytes it points
// at. Data holds exactly FileSize bytes: the zero fill implied by a
// larger MemSize only exists at load time.
type Segment struct {
	Type         SegmentType
	Flags        uint32
	Offset       uint64
	VirtualAddr  uint64
	PhysicalAddr uint64
	FileSize     uint64
	MemSize      uint64
	Align        uint64
	Data         []byte
}

func (s Segment) String() string {
	return fmt.Sprintf("%s segment: %d bytes at offset %#x (vaddr %#x, memsz %d, align %#x)", s.Type, s.FileSize, s.Offset, s.VirtualAddr, s.MemSize, s.Align)
}

func readSegments(r *reader, offset uint64, count int) ([]Segment, error) {
	if err := r.seek(int64(offset)); err != nil {
		return nil, err
	}
	list := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		s, err := readSegment(r)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		list = append(list, s)
	}
	return list, nil
}

func readSegment(r *reader) (Segment, error) {
	var (
		s   Segment
		err error
	)
	kind, err := r.readUint32()
	if err != nil {
		return s, err
	}
	s.Type = SegmentType(kind)
	if s.Flags, err = r.readUint32(); err != nil {
		return s, err
	}
	if s.Offset, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.VirtualAddr, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.PhysicalAddr, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.FileSize, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.MemSize, err = r.readUint64(); err != nil {
		return s, err
	}
	if s.Align, err = r.readUint64(); err != nil {
		return s, err
	}
	s.Data, err = r.payload(s.Offset, s.FileSize)
	return s, err
}
