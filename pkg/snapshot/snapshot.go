package snapshot

import (
	"sort"

	"txkv/pkg/memtable"
	"txkv/pkg/types"
)

// Snapshot is a point-in-time copy of the committed table.
// It never reflects uncommitted writes.
type Snapshot struct {
	seq   types.SequenceNumber
	items []memtable.Item
}

// New takes ownership of items, which must be sorted by key.
func New(seq types.SequenceNumber, items []memtable.Item) Snapshot {
	return Snapshot{seq: seq, items: items}
}

// Sequence returns the last commit reflected in the snapshot.
func (s Snapshot) Sequence() types.SequenceNumber {
	return s.seq
}

// Items returns a copy of the entries in ascending key order.
func (s Snapshot) Items() []memtable.Item {
	out := make([]memtable.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s Snapshot) Get(key types.Key) (types.Value, bool) {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].Key >= key
	})
	if i < len(s.items) && s.items[i].Key == key {
		return s.items[i].Value, true
	}
	return 0, false
}

func (s Snapshot) Len() int {
	return len(s.items)
}

// Equal reports whether both snapshots hold the same keys and values.
// Sequence numbers are ignored.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if s.items[i].Key != other.items[i].Key || s.items[i].Value != other.items[i].Value {
			return false
		}
	}
	return true
}
