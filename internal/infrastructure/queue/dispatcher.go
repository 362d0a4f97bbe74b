// Package queue implements the deferred-write dispatcher used by the
// background action endpoint.
package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/recordstack/records-api/internal/api/metrics"
	"github.com/recordstack/records-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers, sharded by the
// caller identifier so writes for the same caller stay in enqueue order.
// Entries are fire-and-forget: a failed write is logged and dropped.
type Dispatcher struct {
	workers []chan ports.AuditEntry
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to the worker responsible for its caller. The call
// returns before the write happens; it blocks only if the worker's buffer is
// full.
func (d *Dispatcher) Enqueue(entry ports.AuditEntry) {
	d.workers[d.shardIndex(entry.User)] <- entry
}

// shardIndex maps a caller identifier deterministically to a worker index.
func (d *Dispatcher) shardIndex(user string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(user))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, entry); err != nil {
				metrics.AuditWriteErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("user", entry.User).
					Int("worker_id", id).
					Msg("deferred audit write failed")
			}
		}
	}
}
