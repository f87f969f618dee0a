package bitcoin

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ScriptDecoder classifies a script pub key and extracts its addresses.
	ScriptDecoder interface {
		DecodeScript(script []byte) (ScriptInfo, error)
	}

	// RawTransactionClient fetches transactions from a node.
	RawTransactionClient interface {
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	}
)

// ScriptInfo is the decoded view of a script pub key.
type ScriptInfo struct {
	Type      string
	Addresses []string
}
