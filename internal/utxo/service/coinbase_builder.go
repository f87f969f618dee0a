package service

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/transaction"
)

// CoinbaseBuilder assembles coinbase records paying a single address.
type CoinbaseBuilder struct {
	decoder transaction.AddressDecoder
}

func NewCoinbaseBuilder(decoder transaction.AddressDecoder) (*CoinbaseBuilder, error) {
	if decoder == nil {
		return nil, errors.New("address decoder is required")
	}
	return &CoinbaseBuilder{decoder: decoder}, nil
}

// Build returns a record with one coinbase input committing to height and
// one output paying amount to payTo.
func (b *CoinbaseBuilder) Build(height uint64, extraScriptSig []byte, payTo string, amount uint64) (*transaction.Record, error) {
	out, err := transaction.NewPayToAddressOutput(amount, payTo, b.decoder)
	if err != nil {
		return nil, fmt.Errorf("coinbase output: %w", err)
	}

	r := transaction.New()
	r.AddInput(transaction.NewCoinbaseInput(height, extraScriptSig))
	r.AddOutput(out)
	return r, nil
}
