package transaction

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/txscript"
)

const (
	addressPayloadSize = 20
	// CoinbasePrevoutIndex is the prevout index of a coinbase input.
	CoinbasePrevoutIndex = math.MaxUint32
)

var (
	payToAddressPrefix = []byte{txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20}
	payToAddressSuffix = []byte{txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG}
)

// EncodeHeight returns height as minimal little-endian bytes. Zero encodes
// as an empty slice.
func EncodeHeight(height uint64) []byte {
	var out []byte
	for height > 0 {
		out = append(out, byte(height%256))
		height /= 256
	}
	return out
}

// NewCoinbaseInput returns a coinbase input whose script sig commits to
// height: a one byte length, the height bytes, then extraScriptSig.
func NewCoinbaseInput(height uint64, extraScriptSig []byte) Input {
	encoded := EncodeHeight(height)

	script := make([]byte, 0, 1+len(encoded)+len(extraScriptSig))
	script = append(script, byte(len(encoded)))
	script = append(script, encoded...)
	script = append(script, extraScriptSig...)

	return Input{
		PrevoutHash:    NullPrevout,
		PrevoutIndex:   CoinbasePrevoutIndex,
		ScriptSig:      script,
		SequenceNumber: 0,
	}
}

// NewPayToAddressOutput returns an output paying amount to address using
// the pay-to-pubkey-hash template.
func NewPayToAddressOutput(amount uint64, address string, decoder AddressDecoder) (Output, error) {
	payload, ok := decoder.Decode(address)
	if !ok {
		return Output{}, fmt.Errorf("decode %q: %w", address, ErrInvalidAddress)
	}
	if len(payload) != addressPayloadSize {
		return Output{}, fmt.Errorf("address %q payload is %d bytes, want %d: %w", address, len(payload), addressPayloadSize, ErrInvalidAddress)
	}

	script := make([]byte, 0, len(payToAddressPrefix)+addressPayloadSize+len(payToAddressSuffix))
	script = append(script, payToAddressPrefix...)
	script = append(script, payload...)
	script = append(script, payToAddressSuffix...)

	return Output{Amount: amount, ScriptPubKey: script}, nil
}
