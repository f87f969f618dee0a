package bitcoin

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/transaction"
)

// addressDecoder resolves base58 pay-to-pubkey-hash addresses of one network
// into their 20-byte payload.
type addressDecoder struct {
	params *chaincfg.Params
}

// NewAddressDecoder returns a transaction.AddressDecoder for the given network.
func NewAddressDecoder(network model.Network) (transaction.AddressDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &addressDecoder{params: params}, nil
}

func (d *addressDecoder) Decode(address string) ([]byte, bool) {
	addr, err := btcutil.DecodeAddress(address, d.params)
	if err != nil || !addr.IsForNet(d.params) {
		return nil, false
	}
	pkh, ok := addr.(*btcutil.AddressPubKeyHash)
	if !ok {
		return nil, false
	}
	return pkh.ScriptAddress(), true
}
