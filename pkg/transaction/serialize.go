package transaction

import (
	"bytes"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/wire"
)

// SerializeSize returns the number of bytes Serialize produces.
func (r *Record) SerializeSize() int {
	n := 4 + wire.VarIntSize(uint64(len(r.inputs))) + wire.VarIntSize(uint64(len(r.outputs))) + 4
	for _, in := range r.inputs {
		n += minInputSize - 1 + wire.VarIntSize(uint64(len(in.ScriptSig))) + len(in.ScriptSig)
	}
	for _, out := range r.outputs {
		n += minOutputSize - 1 + wire.VarIntSize(uint64(len(out.ScriptPubKey))) + len(out.ScriptPubKey)
	}
	return n
}

// encode writes the record and returns the buffer together with the offset
// of the last input's script sig. Without inputs the offset is len(buf).
func (r *Record) encode() ([]byte, int) {
	buf := make([]byte, 0, r.SerializeSize())

	buf = wire.AppendUint32(buf, r.version)

	split := -1
	buf = wire.AppendVarInt(buf, uint64(len(r.inputs)))
	for _, in := range r.inputs {
		buf = append(buf, in.PrevoutHash[:]...)
		buf = wire.AppendUint32(buf, in.PrevoutIndex)
		buf = wire.AppendVarInt(buf, uint64(len(in.ScriptSig)))
		split = len(buf)
		buf = append(buf, in.ScriptSig...)
		buf = wire.AppendUint32(buf, in.SequenceNumber)
	}

	buf = wire.AppendVarInt(buf, uint64(len(r.outputs)))
	for _, out := range r.outputs {
		buf = wire.AppendUint64(buf, out.Amount)
		buf = wire.AppendVarInt(buf, uint64(len(out.ScriptPubKey)))
		buf = append(buf, out.ScriptPubKey...)
	}

	buf = wire.AppendUint32(buf, r.lockTime)

	if split < 0 {
		split = len(buf)
	}
	return buf, split
}

func (r *Record) store(buf []byte) {
	r.raw = buf
	r.hash = nil
}

// Serialize returns the wire encoding of r and caches it. The cached
// encoding is reused until the next mutation.
func (r *Record) Serialize() []byte {
	if r.raw == nil {
		buf, _ := r.encode()
		r.store(buf)
	}
	return bytes.Clone(r.raw)
}

// SerializeSplit returns the wire encoding of r cut immediately before the
// last input's script sig. prefix+suffix equals Serialize(), and suffix
// starts with the first byte of that script sig, so a caller can rewrite the
// script and reassemble without encoding the rest again.
func (r *Record) SerializeSplit() (prefix, suffix []byte) {
	buf, split := r.encode()
	if r.raw == nil {
		r.store(buf)
		buf = bytes.Clone(buf)
	}
	return buf[:split:split], buf[split:]
}

// Raw returns the cached encoding, serializing r if there is none.
func (r *Record) Raw() []byte {
	return r.Serialize()
}
