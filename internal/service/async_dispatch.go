package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/logger"
)

// ErrDispatchQueueFull is returned when a notice cannot be queued.
var ErrDispatchQueueFull = errors.New("dispatch queue full")

// AsyncDispatcherConfig holds configuration for AsyncDispatcher.
type AsyncDispatcherConfig struct {
	// BufferSize is the number of notices that may wait for a worker.
	BufferSize int
	// NumWorkers is the number of goroutines calling the wrapped dispatcher.
	NumWorkers int
	// WriteTimeout bounds each wrapped Dispatch call.
	WriteTimeout time.Duration
}

// DefaultAsyncDispatcherConfig returns the production defaults.
func DefaultAsyncDispatcherConfig() AsyncDispatcherConfig {
	return AsyncDispatcherConfig{
		BufferSize:   500,
		NumWorkers:   2,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncDispatcher hands notices to a fixed worker pool so slow ledgers do
// not hold up order processing. Notices queued before Stop are still written.
type AsyncDispatcher struct {
	next         Dispatcher
	noticeCh     chan model.DispatchNotice
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	failed   int64
}

// NewAsyncDispatcher starts the worker pool around next.
func NewAsyncDispatcher(next Dispatcher, cfg AsyncDispatcherConfig) *AsyncDispatcher {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	d := &AsyncDispatcher{
		next:         next,
		noticeCh:     make(chan model.DispatchNotice, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Dispatch queues the notice. It never blocks; a full queue drops the notice.
func (d *AsyncDispatcher) Dispatch(_ context.Context, notice model.DispatchNotice) error {
	select {
	case <-d.stopCh:
		atomic.AddInt64(&d.dropped, 1)
		return ErrDispatchQueueFull
	default:
	}

	select {
	case d.noticeCh <- notice:
		atomic.AddInt64(&d.enqueued, 1)
		return nil
	default:
		atomic.AddInt64(&d.dropped, 1)
		return ErrDispatchQueueFull
	}
}

func (d *AsyncDispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case notice := <-d.noticeCh:
			d.write(notice)
		case <-d.stopCh:
			for {
				select {
				case notice := <-d.noticeCh:
					d.write(notice)
				default:
					return
				}
			}
		}
	}
}

func (d *AsyncDispatcher) write(notice model.DispatchNotice) {
	ctx := context.Background()
	if d.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.writeTimeout)
		defer cancel()
	}

	if err := d.next.Dispatch(ctx, notice); err != nil {
		atomic.AddInt64(&d.failed, 1)
		log := logger.Logger()
		log.Warn().
			Err(err).
			Int("order_id", notice.OrderID).
			Str("shipment_id", notice.ShipmentID).
			Msg("Failed to record shipment")
		return
	}
	atomic.AddInt64(&d.written, 1)
}

// Stop drains queued notices and waits for the workers. It is safe to call more than once.
func (d *AsyncDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
		d.wg.Wait()
	})
}

// Stats returns counters for queued, dropped, written and failed notices.
func (d *AsyncDispatcher) Stats() (enqueued, dropped, written, failed int64) {
	return atomic.LoadInt64(&d.enqueued),
		atomic.LoadInt64(&d.dropped),
		atomic.LoadInt64(&d.written),
		atomic.LoadInt64(&d.failed)
}
