package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Sequential(t *testing.T) {
	buf := []byte{
		0x01, 0x00, 0x00, 0x00, // uint32
		0x00, 0xf2, 0x05, 0x2a, 0x01, 0x00, 0x00, 0x00, // uint64
		0x03, 0xaa, 0xbb, 0xcc, // var bytes
		0x7f,
	}
	c := NewCursor(buf)

	v32, err := c.Uint32("version")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v32)

	v64, err := c.Uint64("amount")
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000_000), v64)

	b, err := c.VarBytes("script")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, b)

	assert.Equal(t, 16, c.Offset())
	assert.Equal(t, 1, c.Remaining())

	// returned bytes must not alias the buffer
	b[0] = 0x00
	assert.Equal(t, byte(0xaa), buf[13])
}

func TestCursor_Truncated(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(c *Cursor) error
	}{
		{
			name: "uint32",
			buf:  []byte{0x01, 0x02, 0x03},
			read: func(c *Cursor) error { _, err := c.Uint32("f"); return err },
		},
		{
			name: "uint64",
			buf:  []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			read: func(c *Cursor) error { _, err := c.Uint64("f"); return err },
		},
		{
			name: "bytes",
			buf:  []byte{0x01},
			read: func(c *Cursor) error { _, err := c.Bytes("f", 2); return err },
		},
		{
			name: "var bytes declares more than remains",
			buf:  append([]byte{0x28}, make([]byte, 10)...),
			read: func(c *Cursor) error { _, err := c.VarBytes("f"); return err },
		},
		{
			name: "var bytes declares more than fits in int",
			buf:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			read: func(c *Cursor) error { _, err := c.VarBytes("f"); return err },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.buf)
			err := tt.read(c)
			require.ErrorIs(t, err, ErrTruncatedInput)
			assert.Equal(t, 0, c.Offset())
		})
	}
}
