package clock

import (
	"sync/atomic"

	"txkv/pkg/types"
)

// AtomicClock hands out commit sequence numbers.
type AtomicClock struct {
	v atomic.Uint64
}

func NewAtomic(init types.SequenceNumber) *AtomicClock {
	var ac AtomicClock
	ac.Set(init)
	return &ac
}

func (ac *AtomicClock) Val() types.SequenceNumber {
	return types.SequenceNumber(ac.v.Load())
}

func (ac *AtomicClock) Next() types.SequenceNumber {
	return types.SequenceNumber(ac.v.Add(1))
}

func (ac *AtomicClock) Set(t types.SequenceNumber) {
	ac.v.Store(uint64(t))
}
