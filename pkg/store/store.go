package store

import (
	"fmt"
	"log/slog"
	"sync"

	"txkv/pkg/batch"
	"txkv/pkg/clock"
	"txkv/pkg/memtable"
	"txkv/pkg/metrics"
	"txkv/pkg/snapshot"
	"txkv/pkg/types"

	"github.com/google/uuid"
)

const (
	metricBegin       = "txkv_begin_total"
	metricCommit      = "txkv_commit_total"
	metricRollback    = "txkv_rollback_total"
	metricPut         = "txkv_put_total"
	metricMisuse      = "txkv_misuse_total"
	metricKeys        = "txkv_committed_keys"
	metricCommitBatch = "txkv_commit_batch_size"
)

type iClock interface {
	Val() types.SequenceNumber
	Next() types.SequenceNumber
}

type Option func(*Store)

// WithMetrics reports store activity to c instead of discarding it.
func WithMetrics(c metrics.Collector) Option {
	return func(s *Store) {
		s.mc = c
	}
}

// Store is an in-memory key-value store with at most one open transaction.
// Reads only ever see committed data. All methods are safe for concurrent use;
// they are serialized by a single lock over the committed table and the
// transaction state.
type Store struct {
	mu        sync.RWMutex
	committed *memtable.Memtable
	seqN      iClock
	st        state

	mc metrics.Collector
}

func New(opts ...Option) *Store {
	s := &Store{
		committed: memtable.New(),
		seqN:      clock.NewAtomic(0),
		st:        idle{},
		mc:        metrics.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Begin opens a transaction with an empty write set.
func (s *Store) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st := s.st.(type) {
	case idle:
		tx := &active{
			id:      uuid.New(),
			pending: batch.New(),
		}
		s.st = tx
		s.mc.IncCounter(metricBegin, nil, 1)
		slog.Debug("transaction started", "tx", tx.id)
		return nil
	case *active:
		return s.misuse("begin", ErrTransactionAlreadyActive, "tx", st.id)
	default:
		panic(fmt.Sprintf("store: unexpected state %T", st))
	}
}

// Put buffers key=value in the open transaction. The value is not visible to
// Get until Commit.
func (s *Store) Put(key types.Key, value types.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.activeTx("put")
	if err != nil {
		return err
	}

	tx.pending.Put(key, value)
	s.mc.IncCounter(metricPut, nil, 1)

	return nil
}

// Get returns the committed value for key. Buffered writes are never consulted.
func (s *Store) Get(key types.Key) (types.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.committed.Get(key)
	if !ok {
		return 0, false
	}
	return item.Value, true
}

// Commit applies the whole write set and closes the transaction.
func (s *Store) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.activeTx("commit")
	if err != nil {
		return err
	}

	seqN := s.seqN.Next()
	size := tx.pending.Count()
	s.committed.Apply(tx.pending, seqN)
	s.st = idle{}

	s.mc.IncCounter(metricCommit, nil, 1)
	s.mc.ObserveHistogram(metricCommitBatch, nil, float64(size))
	s.mc.SetGauge(metricKeys, nil, float64(s.committed.Len()))
	slog.Debug("transaction committed", "tx", tx.id, "seq", seqN, "keys", size)

	return nil
}

// Rollback discards the write set and closes the transaction.
func (s *Store) Rollback() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.activeTx("rollback")
	if err != nil {
		return err
	}

	s.st = idle{}

	s.mc.IncCounter(metricRollback, nil, 1)
	slog.Debug("transaction rolled back", "tx", tx.id, "discarded", tx.pending.Count())

	return nil
}

// Active returns the id of the open transaction, if there is one.
func (s *Store) Active() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tx, ok := s.st.(*active); ok {
		return tx.id, true
	}
	return uuid.Nil, false
}

// Pending returns the number of distinct keys buffered in the open transaction.
func (s *Store) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tx, ok := s.st.(*active); ok {
		return tx.pending.Count()
	}
	return 0
}

// Snapshot copies the committed table as of the last commit.
func (s *Store) Snapshot() snapshot.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot.New(s.seqN.Val(), s.committed.Sorted())
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.committed.Len()
}

// activeTx must be called with s.mu held.
func (s *Store) activeTx(op string) (*active, error) {
	tx, ok := s.st.(*active)
	if !ok {
		return nil, s.misuse(op, ErrNoActiveTransaction)
	}
	return tx, nil
}

func (s *Store) misuse(op string, err error, attrs ...any) error {
	s.mc.IncCounter(metricMisuse, map[string]string{"op": op}, 1)
	slog.Warn("rejected store call", append([]any{"op", op, "error", err}, attrs...)...)
	return err
}
