package memtable

import (
	"txkv/pkg/batch"
	"txkv/pkg/types"

	"github.com/zhangyunhao116/skipmap"
)

type orderedSet = skipmap.OrderedMap[types.Key, Item]

// Memtable holds committed entries ordered by key.
//
// The skipmap is safe for concurrent use on its own, but a multi-key Apply is
// not atomic for readers. Callers that need all-or-nothing visibility must
// serialize Apply against Get themselves.
type Memtable struct {
	underlying *orderedSet
}

func New() *Memtable {
	return &Memtable{
		underlying: skipmap.New[types.Key, Item](),
	}
}

func (mt *Memtable) Get(k types.Key) (Item, bool) {
	return mt.underlying.Load(k)
}

// Apply writes every entry of b, stamping each with seqN.
// Keys absent from b are left as they are.
func (mt *Memtable) Apply(b *batch.Batch, seqN types.SequenceNumber) {
	b.Range(func(k types.Key, v types.Value) bool {
		mt.underlying.Store(k, Item{
			Key:   k,
			Value: v,
			SeqN:  seqN,
		})
		return true
	})
}

// Sorted returns a copy of all items in ascending key order.
func (mt *Memtable) Sorted() []Item {
	result := make([]Item, 0, mt.underlying.Len())
	mt.underlying.Range(func(_ types.Key, value Item) bool {
		result = append(result, value)
		return true
	})

	return result
}

func (mt *Memtable) Len() int {
	return mt.underlying.Len()
}
