// Package bitcoin implements Bitcoin-specific chain logic.
package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/transaction"
)

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// Converter maps decoded records into model.DecodedTransaction.
type Converter struct {
	decoder ScriptDecoder
	coin    model.Coin
	network model.Network
}

// NewConverter constructs a converter that resolves output addresses with
// decoder and labels results with coin and network.
func NewConverter(decoder ScriptDecoder, coin model.Coin, network model.Network) *Converter {
	if coin == "" {
		coin = model.BTC
	}
	return &Converter{decoder: decoder, coin: coin, network: network}
}

// Convert builds the exported view of r.
func (c *Converter) Convert(r *transaction.Record) (model.DecodedTransaction, error) {
	raw := r.Raw()
	txid := r.DisplayHexHash()

	size, err := safe.Uint32(len(raw))
	if err != nil {
		return model.DecodedTransaction{}, fmt.Errorf("tx %s size overflow: %w", txid, err)
	}

	inputs := r.Inputs()
	decodedInputs := make([]model.DecodedInput, 0, len(inputs))
	for idx, in := range inputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.DecodedTransaction{}, fmt.Errorf("tx %s input index overflow: %w", txid, err)
		}
		decodedInputs = append(decodedInputs, model.DecodedInput{
			Index:        index,
			PrevTxID:     in.PrevoutHash.String(),
			PrevVout:     in.PrevoutIndex,
			Sequence:     in.SequenceNumber,
			ScriptSigHex: hex.EncodeToString(in.ScriptSig),
		})
	}

	outputs := r.Outputs()
	decodedOutputs := make([]model.DecodedOutput, 0, len(outputs))
	for idx, out := range outputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.DecodedTransaction{}, fmt.Errorf("tx %s output index overflow: %w", txid, err)
		}
		info, err := c.decoder.DecodeScript(out.ScriptPubKey)
		if err != nil {
			return model.DecodedTransaction{}, fmt.Errorf("decode script for tx %s output %d: %w", txid, idx, err)
		}
		decodedOutputs = append(decodedOutputs, model.DecodedOutput{
			Index:      index,
			Value:      out.Amount,
			ValueBTC:   btcutil.Amount(out.Amount).ToBTC(),
			ScriptType: info.Type,
			ScriptHex:  hex.EncodeToString(out.ScriptPubKey),
			Addresses:  info.Addresses,
		})
	}

	return model.DecodedTransaction{
		Coin:       c.coin,
		Network:    c.network,
		TxID:       txid,
		Hash:       r.HexHash(),
		Size:       size,
		Version:    r.Version(),
		LockTime:   r.LockTime(),
		IsCoinbase: r.IsCoinbase(),
		Inputs:     decodedInputs,
		Outputs:    decodedOutputs,
		Raw:        hex.EncodeToString(raw),
	}, nil
}
