package store

import (
	"txkv/pkg/batch"

	"github.com/google/uuid"
)

// state is either idle or *active; nothing else implements it.
type state interface {
	isState()
}

type idle struct{}

type active struct {
	id      uuid.UUID
	pending *batch.Batch
}

func (idle) isState()    {}
func (*active) isState() {}
