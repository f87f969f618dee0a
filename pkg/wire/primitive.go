package wire

import "encoding/binary"

// AppendUint32 appends v to dst in little-endian order.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendUint64 appends v to dst in little-endian order.
func AppendUint64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// PutUint32 writes v at offset off of buf in little-endian order.
func PutUint32(buf []byte, off int, v uint32) error {
	if off < 0 || len(buf)-off < 4 {
		return ErrTruncatedInput
	}
	binary.LittleEndian.PutUint32(buf[off:], v)
	return nil
}

// PutUint64 writes v at offset off of buf in little-endian order.
func PutUint64(buf []byte, off int, v uint64) error {
	if off < 0 || len(buf)-off < 8 {
		return ErrTruncatedInput
	}
	binary.LittleEndian.PutUint64(buf[off:], v)
	return nil
}

// Uint32At reads a little-endian uint32 at offset off of buf.
func Uint32At(buf []byte, off int) (uint32, error) {
	if off < 0 || len(buf)-off < 4 {
		return 0, ErrTruncatedInput
	}
	return binary.LittleEndian.Uint32(buf[off:]), nil
}

// Uint64At reads a little-endian uint64 at offset off of buf.
func Uint64At(buf []byte, off int) (uint64, error) {
	if off < 0 || len(buf)-off < 8 {
		return 0, ErrTruncatedInput
	}
	return binary.LittleEndian.Uint64(buf[off:]), nil
}
