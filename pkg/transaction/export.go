package transaction

import "encoding/hex"

// ToMap exports the record as a map keyed by field name with byte fields hex
// encoded. The hash is in stored order.
func (r *Record) ToMap() map[string]any {
	inputs := make([]map[string]any, 0, len(r.inputs))
	for _, in := range r.inputs {
		inputs = append(inputs, map[string]any{
			"prevout_hash": hex.EncodeToString(in.PrevoutHash[:]),
			"prevout_idx":  in.PrevoutIndex,
			"script_sig":   hex.EncodeToString(in.ScriptSig),
			"seqno":        in.SequenceNumber,
		})
	}

	outputs := make([]map[string]any, 0, len(r.outputs))
	for _, out := range r.outputs {
		outputs = append(outputs, map[string]any{
			"amount":         out.Amount,
			"script_pub_key": hex.EncodeToString(out.ScriptPubKey),
		})
	}

	m := map[string]any{
		"inputs":   inputs,
		"outputs":  outputs,
		"data":     hex.EncodeToString(r.Raw()),
		"locktime": r.lockTime,
		"version":  r.version,
		"hash":     r.HexHash(),
	}
	if fees, ok := r.Fees(); ok {
		m["fees"] = fees
	}
	return m
}
