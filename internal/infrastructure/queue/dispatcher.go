// Package queue fans mutation events out to a fixed pool of audit workers.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/api/metrics"
	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes mutation events to workers using consistent hashing on
// the event key, so events of one entity are stored in the order recorded.
type Dispatcher struct {
	workers []chan domain.MutationEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.MutationEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.MutationEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and exit
// once ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record hands event to the worker responsible for its key. It never blocks:
// when that worker's buffer is full the event is dropped and counted.
func (d *Dispatcher) Record(event domain.MutationEvent) {
	idx := d.shardIndex(event.Key())
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("operation", event.Operation).
			Str("key", event.Key()).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.MutationEvent) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(label, ch)
			return
		case event := <-ch:
			d.store(context.Background(), label, event)
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		}
	}
}

// drain stores whatever is still buffered when the worker is stopped.
func (d *Dispatcher) drain(label string, ch <-chan domain.MutationEvent) {
	for {
		select {
		case event := <-ch:
			d.store(context.Background(), label, event)
		default:
			metrics.AuditQueueDepth.WithLabelValues(label).Set(0)
			return
		}
	}
}

func (d *Dispatcher) store(parent context.Context, label string, event domain.MutationEvent) {
	ctx, cancel := context.WithTimeout(parent, writeTimeout)
	defer cancel()

	if err := d.repo.InsertMutationEvent(ctx, &event); err != nil {
		metrics.AuditEventsTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("operation", event.Operation).
			Str("key", event.Key()).
			Str("worker_id", label).
			Msg("audit event persistence failed")
		return
	}
	metrics.AuditEventsTotal.WithLabelValues("stored").Inc()
}
