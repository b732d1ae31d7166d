package memtable

import "txkv/pkg/types"

// Item is a committed entry. SeqN is the commit that last wrote it.
type Item struct {
	Key   types.Key
	Value types.Value
	SeqN  types.SequenceNumber
}

func (it *Item) Less(than *Item) bool {
	return it.Key < than.Key
}
