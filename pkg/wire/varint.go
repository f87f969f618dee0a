package wire

import (
	"encoding/binary"
	"fmt"
)

const (
	varIntMarker16 = 0xfd
	varIntMarker32 = 0xfe
	varIntMarker64 = 0xff
)

// MaxVarIntSize is the largest number of bytes a varint occupies.
const MaxVarIntSize = 9

// VarIntSize returns the number of bytes needed to encode v.
func VarIntSize(v uint64) int {
	switch {
	case v < varIntMarker16:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffff_ffff:
		return 5
	default:
		return 9
	}
}

// EncodeVarInt returns the varint encoding of v.
func EncodeVarInt(v uint64) []byte {
	return AppendVarInt(make([]byte, 0, VarIntSize(v)), v)
}

// AppendVarInt appends the varint encoding of v to dst.
func AppendVarInt(dst []byte, v uint64) []byte {
	switch {
	case v < varIntMarker16:
		return append(dst, byte(v))
	case v <= 0xffff:
		dst = append(dst, varIntMarker16)
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case v <= 0xffff_ffff:
		dst = append(dst, varIntMarker32)
		return AppendUint32(dst, uint32(v))
	default:
		dst = append(dst, varIntMarker64)
		return AppendUint64(dst, v)
	}
}

// DecodeVarInt decodes one varint from the front of buf and returns the value
// and the number of bytes consumed. It fails with ErrTruncatedInput when buf
// ends inside the varint. A value encoded in more bytes than it needs (for
// example fd 05 00) is also rejected, with ErrMalformedInput, so that every
// buffer that parses re-encodes to the same bytes.
func DecodeVarInt(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, fmt.Errorf("varint marker: %w", ErrTruncatedInput)
	}

	var (
		v     uint64
		n     int
		floor uint64
	)
	switch buf[0] {
	case varIntMarker16:
		n, floor = 3, varIntMarker16
		if len(buf) < n {
			return 0, 0, fmt.Errorf("varint need %d bytes, have %d: %w", n, len(buf), ErrTruncatedInput)
		}
		v = uint64(binary.LittleEndian.Uint16(buf[1:n]))
	case varIntMarker32:
		n, floor = 5, 0x10000
		if len(buf) < n {
			return 0, 0, fmt.Errorf("varint need %d bytes, have %d: %w", n, len(buf), ErrTruncatedInput)
		}
		v = uint64(binary.LittleEndian.Uint32(buf[1:n]))
	case varIntMarker64:
		n, floor = 9, 0x1_0000_0000
		if len(buf) < n {
			return 0, 0, fmt.Errorf("varint need %d bytes, have %d: %w", n, len(buf), ErrTruncatedInput)
		}
		v = binary.LittleEndian.Uint64(buf[1:n])
	default:
		return uint64(buf[0]), 1, nil
	}

	if v < floor {
		return 0, 0, fmt.Errorf("non-canonical varint 0x%x encoded in %d bytes: %w", v, n, ErrMalformedInput)
	}
	return v, n, nil
}
