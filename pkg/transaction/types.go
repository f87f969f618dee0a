// Package transaction converts transaction records between their byte-exact
// wire encoding and a structured form, and derives the record's content hash.
package transaction

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AddressDecoder resolves an encoded address into its 20-byte payload.
	// ok is false when the address cannot be decoded.
	AddressDecoder interface {
		Decode(address string) (payload []byte, ok bool)
	}
)

var (
	ErrTruncatedInput = wire.ErrTruncatedInput
	ErrMalformedInput = wire.ErrMalformedInput
	ErrInvalidAddress = errors.New("invalid address")
)

// NullPrevout is the previous output hash that marks a coinbase input.
var NullPrevout = chainhash.Hash{}

// Input spends a previous output. PrevoutHash is kept in stored (little-endian) order.
type Input struct {
	PrevoutHash    chainhash.Hash
	PrevoutIndex   uint32
	ScriptSig      []byte
	SequenceNumber uint32
}

// Equal reports whether in and other carry the same field values.
func (in Input) Equal(other Input) bool {
	return in.PrevoutHash == other.PrevoutHash &&
		in.PrevoutIndex == other.PrevoutIndex &&
		in.SequenceNumber == other.SequenceNumber &&
		bytes.Equal(in.ScriptSig, other.ScriptSig)
}

func (in Input) clone() Input {
	in.ScriptSig = bytes.Clone(in.ScriptSig)
	return in
}

// Output assigns Amount, in the smallest unit, to ScriptPubKey.
type Output struct {
	Amount       uint64
	ScriptPubKey []byte
}

// Equal reports whether out and other carry the same field values.
func (out Output) Equal(other Output) bool {
	return out.Amount == other.Amount && bytes.Equal(out.ScriptPubKey, other.ScriptPubKey)
}

func (out Output) clone() Output {
	out.ScriptPubKey = bytes.Clone(out.ScriptPubKey)
	return out
}
