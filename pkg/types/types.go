package types

// Key identifies a single entry in the store.
type Key = string

// Value is the scalar stored under a key.
type Value = int64

// SequenceNumber is issued once per successful commit and only grows.
type SequenceNumber uint64
