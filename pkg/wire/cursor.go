package wire

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/safe"
)

// Cursor reads wire fields sequentially from a byte buffer and tracks the
// read position. It never reads past the end of the buffer.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Uint32 reads a little-endian uint32.
func (c *Cursor) Uint32(field string) (uint32, error) {
	v, err := Uint32At(c.buf, c.off)
	if err != nil {
		return 0, fmt.Errorf("%s at offset %d: %w", field, c.off, err)
	}
	c.off += 4
	return v, nil
}

// Uint64 reads a little-endian uint64.
func (c *Cursor) Uint64(field string) (uint64, error) {
	v, err := Uint64At(c.buf, c.off)
	if err != nil {
		return 0, fmt.Errorf("%s at offset %d: %w", field, c.off, err)
	}
	c.off += 8
	return v, nil
}

// VarInt reads a varint.
func (c *Cursor) VarInt(field string) (uint64, error) {
	v, n, err := DecodeVarInt(c.buf[c.off:])
	if err != nil {
		return 0, fmt.Errorf("%s at offset %d: %w", field, c.off, err)
	}
	c.off += n
	return v, nil
}

// Bytes reads n bytes and returns a copy of them.
func (c *Cursor) Bytes(field string, n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("%s at offset %d need %d bytes, have %d: %w", field, c.off, n, c.Remaining(), ErrTruncatedInput)
	}
	out := make([]byte, n)
	copy(out, c.buf[c.off:c.off+n])
	c.off += n
	return out, nil
}

// VarBytes reads a varint length prefix followed by that many bytes.
func (c *Cursor) VarBytes(field string) ([]byte, error) {
	start := c.off
	length, err := c.VarInt(field + " length")
	if err != nil {
		return nil, err
	}
	n, err := safe.Int(length)
	if err != nil || n > c.Remaining() {
		c.off = start
		return nil, fmt.Errorf("%s at offset %d declares %d bytes, have %d: %w", field, start, length, c.Remaining(), ErrTruncatedInput)
	}
	return c.Bytes(field, n)
}
