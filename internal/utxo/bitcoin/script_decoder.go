package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
)

// scriptDecoder extracts human-readable addresses from script pub keys.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for extracting addresses using params of the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

func (d *scriptDecoder) DecodeScript(script []byte) (ScriptInfo, error) {
	if len(script) == 0 {
		return ScriptInfo{Type: txscript.NonStandardTy.String()}, nil
	}

	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return ScriptInfo{}, err
	}

	info := ScriptInfo{Type: class.String()}
	if len(addrs) == 0 {
		return info, nil
	}
	info.Addresses = make([]string, 0, len(addrs))
	for _, addr := range addrs {
		info.Addresses = append(info.Addresses, addr.EncodeAddress())
	}
	return info, nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
