package bitcoin

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/clock"
)

// RawSource fetches raw transaction bytes from a node.
type RawSource struct {
	rpc        RawTransactionClient
	attempts   int
	retryDelay time.Duration
}

// NewRawSource creates a RawSource that tries each fetch up to attempts times.
func NewRawSource(rpc RawTransactionClient, attempts int, retryDelay time.Duration) *RawSource {
	if attempts < 1 {
		attempts = 1
	}
	return &RawSource{
		rpc:        rpc,
		attempts:   attempts,
		retryDelay: retryDelay,
	}
}

// FetchRaw returns the legacy (witness stripped) encoding of the transaction
// with display-order id txid.
func (s *RawSource) FetchRaw(ctx context.Context, txid string) ([]byte, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}

	var raw []byte
	err = clock.Retry(ctx, s.attempts, s.retryDelay, func(context.Context) error {
		tx, err := s.rpc.GetRawTransaction(hash)
		if err != nil {
			return fmt.Errorf("get raw transaction %s: %w", txid, err)
		}

		var buf bytes.Buffer
		if err := tx.MsgTx().SerializeNoWitness(&buf); err != nil {
			return fmt.Errorf("serialize transaction %s: %w", txid, err)
		}
		raw = buf.Bytes()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}
