package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/transaction"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Converter interface {
		Convert(r *transaction.Record) (model.DecodedTransaction, error)
	}
	Writer interface {
		Write(ctx context.Context, tx model.DecodedTransaction) error
	}
	RawSource interface {
		FetchRaw(ctx context.Context, txid string) ([]byte, error)
	}
	CodecMetrics interface {
		Observe(operation string, size int, err error, started time.Time)
	}
)
