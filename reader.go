package elfit

import (
	"encoding/binary"
	"fmt"
	"io"
)

type reader struct {
	inner io.ReadSeeker
	order binary.ByteOrder
	size  int64
}

func newReader(rs io.ReadSeeker) (*reader, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	r := reader{
		inner: rs,
		order: binary.LittleEndian,
		size:  size,
	}
	return &r, nil
}

func (r *reader) setOrder(little bool) {
	if little {
		r.order = binary.LittleEndian
	} else {
		r.order = binary.BigEndian
	}
}

func (r *reader) readUint8() (uint8, error) {
	var v uint8
	err := binary.Read(r.inner, r.order, &v)
	return v, err
}

func (r *reader) readUint16() (uint16, error) {
	var v uint16
	err := binary.Read(r.inner, r.order, &v)
	return v, err
}

func (r *reader) readUint32() (uint32, error) {
	var v uint32
	err := binary.Read(r.inner, r.order, &v)
	return v, err
}

func (r *reader) readUint64() (uint64, error) {
	var v uint64
	err := binary.Read(r.inner, r.order, &v)
	return v, err
}

func (r *reader) seek(offset int64) error {
	_, err := r.inner.Seek(offset, io.SeekStart)
	return err
}

func (r *reader) skip(n int64) error {
	_, err := r.inner.Seek(n, io.SeekCurrent)
	return err
}

func (r *reader) position() (int64, error) {
	return r.inner.Seek(0, io.SeekCurrent)
}

// payload fetches size bytes at the given absolute offset and puts the
// cursor back where it was, whatever happens in between.
func (r *reader) payload(offset, size uint64) (data []byte, err error) {
	if size > uint64(r.size) || offset > uint64(r.size)-size {
		return nil, fmt.Errorf("invalid payload: %d bytes at offset %#x past end of file (%d bytes)", size, offset, r.size)
	}
	pos, err := r.position()
	if err != nil {
		return nil, err
	}
	defer func() {
		if serr := r.seek(pos); err == nil {
			err = serr
		}
	}()
	if err = r.seek(int64(offset)); err != nil {
		return nil, err
	}
	data = make([]byte, size)
	if _, err = io.ReadFull(r.inner, data); err != nil {
		return nil, err
	}
	return data, nil
}
