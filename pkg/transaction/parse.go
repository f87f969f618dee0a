package transaction

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/wire"
)

const (
	// minInputSize is prevout hash, prevout index, empty script length and sequence.
	minInputSize = chainhash.HashSize + 4 + 1 + 4
	// minOutputSize is amount and empty script length.
	minOutputSize = 8 + 1
)

type parseOptions struct {
	discardRaw bool
}

// ParseOption configures Parse and Decode.
type ParseOption func(*parseOptions)

// DiscardRaw drops the input buffer after decoding. The encoding is
// regenerated from the fields when it is next needed.
func DiscardRaw() ParseOption {
	return func(o *parseOptions) {
		o.discardRaw = true
	}
}

// Parse decodes raw into a new record.
func Parse(raw []byte, opts ...ParseOption) (*Record, error) {
	r := &Record{}
	if err := r.Decode(raw, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Decode replaces the fields of r with those decoded from raw. On error r is
// left unchanged. Fees are preserved.
func (r *Record) Decode(raw []byte, opts ...ParseOption) error {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := wire.NewCursor(raw)

	version, err := c.Uint32("version")
	if err != nil {
		return err
	}

	inputs, err := decodeInputs(c)
	if err != nil {
		return err
	}
	outputs, err := decodeOutputs(c)
	if err != nil {
		return err
	}

	lockTime, err := c.Uint32("lock time")
	if err != nil {
		return err
	}
	if rem := c.Remaining(); rem != 0 {
		return fmt.Errorf("%d bytes of trailing data after lock time: %w", rem, wire.ErrMalformedInput)
	}

	r.version = version
	r.inputs = inputs
	r.outputs = outputs
	r.lockTime = lockTime
	r.hash = nil
	r.raw = nil
	if !o.discardRaw {
		r.raw = bytes.Clone(raw)
	}
	return nil
}

func decodeInputs(c *wire.Cursor) ([]Input, error) {
	count, err := c.VarInt("input count")
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("input count is zero: %w", wire.ErrMalformedInput)
	}
	if count > uint64(c.Remaining()/minInputSize) {
		return nil, fmt.Errorf("%d inputs do not fit in %d bytes: %w", count, c.Remaining(), wire.ErrTruncatedInput)
	}

	inputs := make([]Input, 0, count)
	for i := uint64(0); i < count; i++ {
		in, err := decodeInput(c)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func decodeInput(c *wire.Cursor) (Input, error) {
	var in Input

	prevout, err := c.Bytes("prevout hash", chainhash.HashSize)
	if err != nil {
		return in, err
	}
	copy(in.PrevoutHash[:], prevout)

	if in.PrevoutIndex, err = c.Uint32("prevout index"); err != nil {
		return in, err
	}
	if in.ScriptSig, err = c.VarBytes("script sig"); err != nil {
		return in, err
	}
	if in.SequenceNumber, err = c.Uint32("sequence"); err != nil {
		return in, err
	}
	return in, nil
}

func decodeOutputs(c *wire.Cursor) ([]Output, error) {
	count, err := c.VarInt("output count")
	if err != nil {
		return nil, err
	}
	if count > uint64(c.Remaining()/minOutputSize) {
		return nil, fmt.Errorf("%d outputs do not fit in %d bytes: %w", count, c.Remaining(), wire.ErrTruncatedInput)
	}

	outputs := make([]Output, 0, count)
	for i := uint64(0); i < count; i++ {
		var (
			out Output
			err error
		)
		if out.Amount, err = c.Uint64("amount"); err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		if out.ScriptPubKey, err = c.VarBytes("script pub key"); err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}
