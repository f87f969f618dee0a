package transaction

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DefaultVersion is the version of a newly created record.
const DefaultVersion = 1

// Record is a transaction record. The raw encoding and the hash are cached
// and cleared by every mutator.
//
// A Record is not safe for concurrent use.
type Record struct {
	version  uint32
	inputs   []Input
	outputs  []Output
	lockTime uint32

	// fees is carried for callers and never encoded.
	fees *uint64

	raw  []byte
	hash *chainhash.Hash
}

// New returns an empty record with the default version.
func New() *Record {
	return &Record{version: DefaultVersion}
}

func (r *Record) invalidate() {
	r.raw = nil
	r.hash = nil
}

func (r *Record) Version() uint32 {
	return r.version
}

func (r *Record) SetVersion(version uint32) {
	r.version = version
	r.invalidate()
}

func (r *Record) LockTime() uint32 {
	return r.lockTime
}

func (r *Record) SetLockTime(lockTime uint32) {
	r.lockTime = lockTime
	r.invalidate()
}

// Fees returns the fee value attached to the record, if any.
func (r *Record) Fees() (uint64, bool) {
	if r.fees == nil {
		return 0, false
	}
	return *r.fees, true
}

// SetFees attaches a fee value. It does not affect the encoding or the hash.
func (r *Record) SetFees(fees uint64) {
	r.fees = &fees
}

func (r *Record) NumInputs() int {
	return len(r.inputs)
}

func (r *Record) NumOutputs() int {
	return len(r.outputs)
}

// Inputs returns a copy of the record's inputs.
func (r *Record) Inputs() []Input {
	out := make([]Input, len(r.inputs))
	for i, in := range r.inputs {
		out[i] = in.clone()
	}
	return out
}

// Outputs returns a copy of the record's outputs.
func (r *Record) Outputs() []Output {
	out := make([]Output, len(r.outputs))
	for i, o := range r.outputs {
		out[i] = o.clone()
	}
	return out
}

// AddInput appends a copy of in.
func (r *Record) AddInput(in Input) {
	r.inputs = append(r.inputs, in.clone())
	r.invalidate()
}

// AddOutput appends a copy of out.
func (r *Record) AddOutput(out Output) {
	r.outputs = append(r.outputs, out.clone())
	r.invalidate()
}

// ReplaceInput replaces the input at index idx.
func (r *Record) ReplaceInput(idx int, in Input) error {
	if idx < 0 || idx >= len(r.inputs) {
		return fmt.Errorf("input index %d out of range [0,%d)", idx, len(r.inputs))
	}
	r.inputs[idx] = in.clone()
	r.invalidate()
	return nil
}

// ReplaceOutput replaces the output at index idx.
func (r *Record) ReplaceOutput(idx int, out Output) error {
	if idx < 0 || idx >= len(r.outputs) {
		return fmt.Errorf("output index %d out of range [0,%d)", idx, len(r.outputs))
	}
	r.outputs[idx] = out.clone()
	r.invalidate()
	return nil
}

// IsCoinbase reports whether the first input spends NullPrevout. Later
// inputs are not inspected.
func (r *Record) IsCoinbase() bool {
	if len(r.inputs) == 0 {
		return false
	}
	return r.inputs[0].PrevoutHash == NullPrevout
}

// FieldsEqual reports whether r and other have the same version, inputs,
// outputs and lock time. Caches and fees are ignored.
func (r *Record) FieldsEqual(other *Record) bool {
	if r.version != other.version || r.lockTime != other.lockTime ||
		len(r.inputs) != len(other.inputs) || len(r.outputs) != len(other.outputs) {
		return false
	}
	for i := range r.inputs {
		if !r.inputs[i].Equal(other.inputs[i]) {
			return false
		}
	}
	for i := range r.outputs {
		if !r.outputs[i].Equal(other.outputs[i]) {
			return false
		}
	}
	return true
}
