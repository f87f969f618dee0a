package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-txcodec/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/output"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxHexLine = 16 << 20

type config struct {
	Coin          model.Coin    `long:"coin" env:"TXCODEC_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"TXCODEC_NETWORK" description:"network name" default:"mainnet"`
	Input         string        `long:"input" env:"TXCODEC_INPUT" description:"file with one hex transaction per line, - for stdin"`
	TxIDs         []string      `long:"txid" env:"TXCODEC_TXID" env-delim:"," description:"transaction id to fetch from the node"`
	RPCURL        string        `long:"rpc-url" env:"TXCODEC_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"TXCODEC_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"TXCODEC_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRetries    int           `long:"rpc-retries" env:"TXCODEC_RPC_RETRIES" description:"attempts per RPC fetch" default:"3"`
	RPCRetryDelay time.Duration `long:"rpc-retry-delay" env:"TXCODEC_RPC_RETRY_DELAY" description:"delay between RPC attempts" default:"1s"`
	Workers       int           `long:"workers" env:"TXCODEC_WORKERS" description:"decode workers" default:"8"`
	SkipInvalid   bool          `long:"skip-invalid" env:"TXCODEC_SKIP_INVALID" description:"log and skip transactions that fail to decode"`
	FlushSize     int           `long:"flush-size" env:"TXCODEC_FLUSH_SIZE" description:"records per output flush" default:"100"`
	FlushInterval time.Duration `long:"flush-interval" env:"TXCODEC_FLUSH_INTERVAL" description:"max delay before an output flush" default:"1s"`
	RPS           int           `long:"rps" env:"TXCODEC_RPS" description:"max output flushes per second, 0 for unlimited" default:"0"`
	MetricsAddr   string        `long:"metrics-addr" env:"TXCODEC_METRICS_ADDR" description:"address for metrics server, empty disables it"`

	CoinbaseHeight uint64  `long:"coinbase-height" env:"TXCODEC_COINBASE_HEIGHT" description:"block height committed by the built coinbase"`
	CoinbaseExtra  string  `long:"coinbase-extra" env:"TXCODEC_COINBASE_EXTRA" description:"hex bytes appended to the coinbase script sig"`
	PayTo          string  `long:"pay-to" env:"TXCODEC_PAY_TO" description:"address paid by the built coinbase"`
	Amount         float64 `long:"amount" env:"TXCODEC_AMOUNT" description:"coinbase output amount in BTC"`
	Split          bool    `long:"split" env:"TXCODEC_SPLIT" description:"print the built coinbase split around its script sig"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	args, err := flags.ParseArgs(&cfg, os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, args, logger); err != nil {
		logger.Fatal("txcodec failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, args []string, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}
	codecMetrics := metrics.NewCodec(cfg.Coin, cfg.Network)

	if cfg.PayTo != "" {
		return build(cfg, codecMetrics, os.Stdout)
	}

	scriptDecoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	writer := output.NewJSONLinesWriter(os.Stdout, logger, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	svc, err := service.NewDecodeService(
		bitcoin.NewConverter(scriptDecoder, cfg.Coin, cfg.Network),
		writer,
		codecMetrics,
		logger,
		cfg.Workers,
		cfg.SkipInvalid,
	)
	if err != nil {
		return err
	}

	writer.Start(ctx)
	written, runErr := decode(ctx, cfg, args, svc, logger)
	if err := writer.Stop(); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("flush output: %w", err))
	}
	if runErr != nil {
		return runErr
	}
	logger.Info("decode finished", zap.Int("written", written))
	return nil
}

func decode(ctx context.Context, cfg config, args []string, svc *service.DecodeService, logger *zap.Logger) (int, error) {
	if len(cfg.TxIDs) > 0 {
		rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return 0, fmt.Errorf("init rpc client: %w", err)
		}
		defer func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}()
		rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
		source := bitcoin.NewRawSource(rpc, cfg.RPCRetries, cfg.RPCRetryDelay)
		return svc.FetchAndDecode(ctx, source, cfg.TxIDs)
	}

	items := args
	if cfg.Input != "" {
		lines, err := readInput(cfg.Input)
		if err != nil {
			return 0, err
		}
		items = append(items, lines...)
	}
	if len(items) == 0 {
		return 0, errors.New("nothing to decode: pass hex transactions, --input, --txid or --pay-to")
	}
	logger.Debug("decoding transactions", zap.Int("count", len(items)))
	return svc.DecodeHex(ctx, items)
}

func build(cfg config, codecMetrics *metrics.Codec, w io.Writer) (err error) {
	started := time.Now()
	size := 0
	defer func() {
		codecMetrics.Observe("serialize", size, err, started)
	}()

	decoder, err := bitcoin.NewAddressDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init address decoder: %w", err)
	}
	builder, err := service.NewCoinbaseBuilder(decoder)
	if err != nil {
		return err
	}
	extra, err := hex.DecodeString(cfg.CoinbaseExtra)
	if err != nil {
		return fmt.Errorf("decode coinbase extra: %w", err)
	}
	amount, err := bitcoin.BtcToSatoshis(cfg.Amount)
	if err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}

	record, err := builder.Build(cfg.CoinbaseHeight, extra, cfg.PayTo, amount)
	if err != nil {
		return err
	}
	raw := record.Serialize()
	size = len(raw)

	if _, err = fmt.Fprintf(w, "hex: %x\ntxid: %s\n", raw, record.DisplayHexHash()); err != nil {
		return err
	}
	if cfg.Split {
		prefix, suffix := record.SerializeSplit()
		_, err = fmt.Fprintf(w, "prefix: %x\nsuffix: %x\n", prefix, suffix)
	}
	return err
}

func readInput(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxHexLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
