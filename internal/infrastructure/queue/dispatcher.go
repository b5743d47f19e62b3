package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/api/metrics"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256

	insertTimeout = 5 * time.Second
)

// Dispatcher persists audit entries asynchronously so the auth flows never
// block on the trail. Entries are sharded to a fixed set of workers by
// subject, keeping per-subject ordering in the stored trail.
type Dispatcher struct {
	workers []chan ports.AuditEntry
	store   ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEntry, numWorkers),
		store:   store,
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

// Record sends the entry to the worker responsible for its subject. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(entry ports.AuditEntry) {
	i := d.shardIndex(entry.Subject)
	d.workers[i] <- entry
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a subject deterministically to a worker index.
func (d *Dispatcher) shardIndex(subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntry) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			d.persist(ctx, entry)
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) persist(ctx context.Context, entry ports.AuditEntry) {
	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	rec := domain.AuditRecord{
		Action:    entry.Action,
		Subject:   entry.Subject,
		ActorID:   entry.ActorID,
		Detail:    entry.Detail,
		CreatedAt: entry.At,
	}
	if err := d.store.Insert(insertCtx, &rec); err != nil {
		metrics.AuditErrorsTotal.Inc()
		d.log.Error().Err(err).
			Str("action", entry.Action).
			Str("subject", entry.Subject).
			Msg("audit record persistence failed")
		return
	}
	metrics.AuditProcessedTotal.WithLabelValues(entry.Action).Inc()
}
