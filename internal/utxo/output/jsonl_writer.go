// Package output writes decoded transactions to an io.Writer.
package output

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/batcher"
	"go.uber.org/zap"
)

// JSONLinesWriter writes one JSON document per line, buffering records and
// flushing them in batches.
type JSONLinesWriter struct {
	w       io.Writer
	batcher *batcher.Batcher[model.DecodedTransaction]
}

// NewJSONLinesWriter constructs a writer that flushes every flushSize records
// or every flushInterval, at most rps flushes per second.
func NewJSONLinesWriter(w io.Writer, logger *zap.Logger, flushSize int, flushInterval time.Duration, rps int) *JSONLinesWriter {
	jw := &JSONLinesWriter{w: w}
	jw.batcher = batcher.New(logger, jw.flush, flushSize, flushInterval, rps)
	return jw
}

func (jw *JSONLinesWriter) Start(ctx context.Context) {
	jw.batcher.Start(ctx)
}

// Stop flushes pending records and reports any write failure.
func (jw *JSONLinesWriter) Stop() error {
	return jw.batcher.Stop()
}

func (jw *JSONLinesWriter) Write(ctx context.Context, tx model.DecodedTransaction) error {
	return jw.batcher.Add(ctx, tx)
}

func (jw *JSONLinesWriter) flush(_ context.Context, txs []model.DecodedTransaction) error {
	bw := bufio.NewWriter(jw.w)
	enc := json.NewEncoder(bw)
	for _, tx := range txs {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("encode tx %s: %w", tx.TxID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %d txs: %w", len(txs), err)
	}
	return nil
}
