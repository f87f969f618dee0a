package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/transaction"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultWorkerCount = 8

// ErrTxIDMismatch is returned when a fetched transaction hashes to a
// different id than the one requested.
var ErrTxIDMismatch = errors.New("txid mismatch")

type DecodeService struct {
	converter   Converter
	writer      Writer
	metrics     CodecMetrics
	logger      *zap.Logger
	workerCount int
	skipInvalid bool
}

// NewDecodeService constructs a service that decodes raw transactions with
// workerCount workers and writes their exported view to writer. When
// skipInvalid is set, transactions that fail to decode are logged and
// skipped instead of aborting the run.
func NewDecodeService(
	converter Converter,
	writer Writer,
	metrics CodecMetrics,
	logger *zap.Logger,
	workerCount int,
	skipInvalid bool,
) (*DecodeService, error) {
	if converter == nil {
		return nil, errors.New("converter is required")
	}
	if writer == nil {
		return nil, errors.New("writer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &DecodeService{
		converter:   converter,
		writer:      writer,
		metrics:     metrics,
		logger:      logger,
		workerCount: workerCount,
		skipInvalid: skipInvalid,
	}, nil
}

// Decode parses raw and converts the record.
func (s *DecodeService) Decode(raw []byte) (model.DecodedTransaction, error) {
	r, err := s.parse(raw)
	if err != nil {
		return model.DecodedTransaction{}, err
	}
	return s.convert(r)
}

// DecodeHex decodes every hex encoded transaction in items and writes the
// results in input order. It returns the number of transactions written.
func (s *DecodeService) DecodeHex(ctx context.Context, items []string) (int, error) {
	decoded, err := workerpool.Map(ctx, s.workerCount, items, func(_ context.Context, item string) (*model.DecodedTransaction, error) {
		raw, err := hex.DecodeString(strings.TrimSpace(item))
		if err != nil {
			return s.skip(fmt.Errorf("decode hex: %w", err))
		}
		tx, err := s.Decode(raw)
		if err != nil {
			return s.skip(err)
		}
		return &tx, nil
	})
	if err != nil {
		return 0, err
	}
	return s.write(ctx, decoded)
}

// FetchAndDecode fetches every txid from source, decodes it, checks that
// the record hashes to the requested id and writes the results in order.
func (s *DecodeService) FetchAndDecode(ctx context.Context, source RawSource, txids []string) (int, error) {
	decoded, err := workerpool.Map(ctx, s.workerCount, txids, func(ctx context.Context, txid string) (*model.DecodedTransaction, error) {
		raw, err := source.FetchRaw(ctx, txid)
		if err != nil {
			return nil, err
		}
		tx, err := s.Decode(raw)
		if err != nil {
			return s.skip(fmt.Errorf("tx %s: %w", txid, err))
		}
		if !strings.EqualFold(tx.TxID, txid) {
			return nil, fmt.Errorf("requested %s, decoded %s: %w", txid, tx.TxID, ErrTxIDMismatch)
		}
		return &tx, nil
	})
	if err != nil {
		return 0, err
	}
	return s.write(ctx, decoded)
}

func (s *DecodeService) parse(raw []byte) (r *transaction.Record, err error) {
	started := time.Now()
	defer func() {
		s.observe("parse", len(raw), err, started)
	}()
	return transaction.Parse(raw)
}

func (s *DecodeService) convert(r *transaction.Record) (tx model.DecodedTransaction, err error) {
	started := time.Now()
	defer func() {
		s.observe("convert", int(tx.Size), err, started)
	}()
	return s.converter.Convert(r)
}

func (s *DecodeService) skip(err error) (*model.DecodedTransaction, error) {
	if !s.skipInvalid {
		return nil, err
	}
	s.logger.Warn("skip invalid transaction", zap.Error(err))
	return nil, nil
}

func (s *DecodeService) write(ctx context.Context, decoded []*model.DecodedTransaction) (int, error) {
	written := 0
	for _, tx := range decoded {
		if tx == nil {
			continue
		}
		if err := s.writer.Write(ctx, *tx); err != nil {
			return written, fmt.Errorf("write tx %s: %w", tx.TxID, err)
		}
		written++
	}
	s.logger.Debug("transactions decoded", zap.Int("written", written), zap.Int("skipped", len(decoded)-written))
	return written, nil
}

func (s *DecodeService) observe(operation string, size int, err error, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Observe(operation, size, err, started)
}
