// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultFlushInterval = time.Second

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Batcher buffers items and flushes them either by size or interval. Items
// are flushed in the order they were added.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	// done is closed when run starts shutting down. sendMu serializes
	// in-flight Add calls against the final drain.
	done   chan struct{}
	sendMu sync.RWMutex
	closed bool

	mu      sync.Mutex
	errs    []error
	flushed int
}

// New constructs a Batcher. rps <= 0 disables flush rate limiting and a
// non-positive flushInterval falls back to one second.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains queued items, flushes them and stops the background loop. It
// returns the joined errors of every failed flush.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()

	b.sendMu.Lock()
	b.closed = true
	b.sendMu.Unlock()
	return b.Err()
}

// Err returns the joined errors of every failed flush so far.
func (b *Batcher[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return errors.Join(b.errs...)
}

// Flushed returns the number of items successfully flushed so far.
func (b *Batcher[T]) Flushed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}

// Add queues an item for batching, respecting context cancellation. A nil
// error means the item will be passed to the flush callback. Once the
// batcher is stopped or its run context is done, Add returns ErrStopped.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.sendMu.RLock()
	defer b.sendMu.RUnlock()
	if b.closed {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// shutdown rejects further items and waits for in-flight Add calls, so the
// caller's final drain sees every accepted item.
func (b *Batcher[T]) shutdown() {
	close(b.done)
	b.sendMu.Lock()
	b.closed = true
	b.sendMu.Unlock()
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)

		b.mu.Lock()
		if err != nil {
			b.errs = append(b.errs, err)
		} else {
			b.flushed += len(buf)
		}
		b.mu.Unlock()

		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			b.shutdown()
			drain()
			return

		case <-b.stop:
			b.shutdown()
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
