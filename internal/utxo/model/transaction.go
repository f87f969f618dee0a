package model

// DecodedTransaction is the exported view of a decoded transaction record.
type DecodedTransaction struct {
	Coin       Coin            `json:"coin"`
	Network    Network         `json:"network"`
	TxID       string          `json:"txid"`
	Hash       string          `json:"hash"`
	Size       uint32          `json:"size"`
	Version    uint32          `json:"version"`
	LockTime   uint32          `json:"locktime"`
	IsCoinbase bool            `json:"is_coinbase"`
	Inputs     []DecodedInput  `json:"inputs"`
	Outputs    []DecodedOutput `json:"outputs"`
	Raw        string          `json:"raw"`
}

// DecodedInput describes a reference to a previous transaction output.
type DecodedInput struct {
	Index        uint32 `json:"index"`
	PrevTxID     string `json:"prev_txid"`
	PrevVout     uint32 `json:"prev_vout"`
	Sequence     uint32 `json:"sequence"`
	ScriptSigHex string `json:"script_sig"`
}

// DecodedOutput represents an output produced by a transaction.
type DecodedOutput struct {
	Index      uint32   `json:"index"`
	Value      uint64   `json:"value"`
	ValueBTC   float64  `json:"value_btc"`
	ScriptType string   `json:"script_type"`
	ScriptHex  string   `json:"script_pub_key"`
	Addresses  []string `json:"addresses,omitempty"`
}
