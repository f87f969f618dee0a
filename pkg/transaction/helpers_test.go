package transaction

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// genesisCoinbaseHex is the coinbase transaction of the Bitcoin main network
// genesis block.
const (
	genesisCoinbaseHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff4d04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73ffffffff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"
	genesisCoinbaseTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode hex: %v", err)
	}
	return b
}

// sampleRecord builds a non-coinbase record with two inputs and two outputs.
func sampleRecord() *Record {
	r := New()
	r.SetVersion(2)
	r.AddInput(Input{
		PrevoutHash:    chainhash.Hash(bytes.Repeat([]byte{0x11}, chainhash.HashSize)),
		PrevoutIndex:   3,
		ScriptSig:      []byte{0x51, 0x52},
		SequenceNumber: 0xfffffffe,
	})
	r.AddInput(Input{
		PrevoutHash:    chainhash.Hash(bytes.Repeat([]byte{0x22}, chainhash.HashSize)),
		PrevoutIndex:   0,
		ScriptSig:      bytes.Repeat([]byte{0xab}, 300),
		SequenceNumber: 0xffffffff,
	})
	r.AddOutput(Output{Amount: 1_000, ScriptPubKey: []byte{0x6a}})
	r.AddOutput(Output{Amount: 21_000_000 * 100_000_000, ScriptPubKey: nil})
	r.SetLockTime(650_000)
	return r
}
