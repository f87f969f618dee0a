package transaction

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DoubleHash returns SHA-256(SHA-256(b)) in stored (little-endian) order.
func DoubleHash(b []byte) chainhash.Hash {
	return chainhash.DoubleHashH(b)
}

// Hash returns the double hash of the record's encoding in stored order.
// It is computed once and reused until the next mutation.
func (r *Record) Hash() chainhash.Hash {
	if r.hash == nil {
		if r.raw == nil {
			buf, _ := r.encode()
			r.store(buf)
		}
		h := DoubleHash(r.raw)
		r.hash = &h
	}
	return *r.hash
}

// DisplayHash returns the hash in display order, the reverse of Hash. The
// memoized hash is not modified.
func (r *Record) DisplayHash() chainhash.Hash {
	h := r.Hash()
	var out chainhash.Hash
	for i := range h {
		out[i] = h[chainhash.HashSize-1-i]
	}
	return out
}

// HexHash returns the lowercase hex of the hash in stored order.
func (r *Record) HexHash() string {
	h := r.Hash()
	return hex.EncodeToString(h[:])
}

// DisplayHexHash returns the lowercase hex of the hash in display order.
// This is the form block explorers and node RPCs call the txid.
func (r *Record) DisplayHexHash() string {
	h := r.Hash()
	return h.String()
}
