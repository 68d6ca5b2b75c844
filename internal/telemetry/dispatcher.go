package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
)

// ErrClosed is returned for records dispatched after Close.
var ErrClosed = errors.New("telemetry dispatcher closed")

// ErrQueueFull is returned for records dispatched while every send slot and
// queue slot is taken.
var ErrQueueFull = errors.New("telemetry queue full")

// DispatcherConfig tunes the background delivery of records.
type DispatcherConfig struct {
	// Timeout bounds a single send. Default: 10s.
	Timeout time.Duration

	// MaxConcurrent bounds in-flight sends. Default: 4.
	MaxConcurrent int

	// MaxQueue bounds sends waiting for a slot; beyond it records are
	// dropped. Default: 2 * MaxConcurrent.
	MaxQueue int

	// TripAfter is the number of consecutive failures that opens the
	// circuit. Default: 3.
	TripAfter int

	// Cooldown is how long the circuit stays open. Default: 60s.
	Cooldown time.Duration

	Logger *slog.Logger
}

// DefaultDispatcherConfig returns the defaults used by the game.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Timeout:       10 * time.Second,
		MaxConcurrent: 4,
		MaxQueue:      8,
		TripAfter:     3,
		Cooldown:      60 * time.Second,
	}
}

// DispatchStats counts delivery outcomes.
type DispatchStats struct {
	Sent   int64
	Failed int64
}

// Dispatcher delivers records to a Sink in the background. Dispatch never
// blocks the caller and delivery is at-most-once: failures are logged and
// the record is dropped.
type Dispatcher struct {
	sink    Sink
	logger  *slog.Logger
	timeout time.Duration

	breaker  circuitbreaker.CircuitBreaker[struct{}]
	bulkhead bulkhead.Bulkhead[struct{}]

	mu      sync.Mutex
	closed  bool
	wg      sync.WaitGroup
	pending int // dispatched, not yet finished
	limit   int // MaxConcurrent + MaxQueue

	sent   atomic.Int64
	failed atomic.Int64
}

// NewDispatcher wraps sink with a bulkhead and a circuit breaker.
func NewDispatcher(sink Sink, cfg DispatcherConfig) *Dispatcher {
	def := DefaultDispatcherConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = def.MaxConcurrent
	}
	if cfg.MaxQueue <= 0 {
		cfg.MaxQueue = cfg.MaxConcurrent * 2
	}
	if cfg.TripAfter <= 0 {
		cfg.TripAfter = def.TripAfter
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		sink:    sink,
		logger:  logger.With("component", "telemetry"),
		timeout: cfg.Timeout,
		limit:   cfg.MaxConcurrent + cfg.MaxQueue,
	}

	tripAfter := cfg.TripAfter
	d.breaker = circuitbreaker.New[struct{}](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    cfg.Cooldown,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= tripAfter
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			d.logger.Warn("circuit breaker state change",
				"from", from.String(),
				"to", to.String())
		},
	})

	d.bulkhead = bulkhead.New[struct{}](bulkhead.Config{
		MaxConcurrent: cfg.MaxConcurrent,
		MaxQueue:      cfg.MaxQueue,
		QueueTimeout:  cfg.Timeout,
	})

	return d
}

// Dispatch schedules rec for delivery and returns immediately.
func (d *Dispatcher) Dispatch(rec Record) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.failed.Add(1)
		d.logger.Debug("dropping record", "scenario", rec.ScenarioID, "error", ErrClosed)
		return
	}
	if d.pending >= d.limit {
		d.mu.Unlock()
		d.failed.Add(1)
		d.logger.Warn("dropping record", "scenario", rec.ScenarioID, "error", ErrQueueFull)
		return
	}
	d.pending++
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer func() {
			d.mu.Lock()
			d.pending--
			d.mu.Unlock()
			d.wg.Done()
		}()
		d.deliver(rec)
	}()
}

func (d *Dispatcher) deliver(rec Record) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	start := time.Now()
	_, err := d.breaker.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return d.bulkhead.Execute(ctx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, d.sink.Send(ctx, rec)
		})
	})
	if err != nil {
		d.failed.Add(1)
		d.logger.Warn("telemetry send failed",
			"scenario", rec.ScenarioID,
			"latency_ms", time.Since(start).Milliseconds(),
			"error", err)
		return
	}
	d.sent.Add(1)
	d.logger.Debug("telemetry sent",
		"scenario", rec.ScenarioID,
		"latency_ms", time.Since(start).Milliseconds())
}

// Stats returns the delivery counters.
func (d *Dispatcher) Stats() DispatchStats {
	return DispatchStats{Sent: d.sent.Load(), Failed: d.failed.Load()}
}

// Close stops accepting records and waits for in-flight sends until ctx
// is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
