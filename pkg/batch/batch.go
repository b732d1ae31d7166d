package batch

import "txkv/pkg/types"

// Batch is the write set of an in-flight transaction.
// A later Put of the same key replaces the earlier one.
type Batch struct {
	entries map[types.Key]types.Value
}

func New() *Batch {
	return &Batch{entries: make(map[types.Key]types.Value)}
}

func (b *Batch) Put(key types.Key, value types.Value) {
	b.entries[key] = value
}

func (b *Batch) Get(key types.Key) (types.Value, bool) {
	v, ok := b.entries[key]
	return v, ok
}

// Count returns the number of distinct keys in the batch.
func (b *Batch) Count() int {
	return len(b.entries)
}

func (b *Batch) Clear() {
	clear(b.entries)
}

// Range calls fn for every entry until fn returns false. Order is unspecified.
func (b *Batch) Range(fn func(key types.Key, value types.Value) bool) {
	for k, v := range b.entries {
		if !fn(k, v) {
			return
		}
	}
}
