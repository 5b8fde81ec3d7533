package utils

import (
	"context"
	"sync"
)

// Sync is the waiting side of a one-shot sync point.
type Sync interface {
	Wait(ctx context.Context) bool
	IsDone() bool
}

// SyncTrigger is the signaling side of a one-shot sync point.
// Done may be called multiple times, only the first call counts.
type SyncTrigger interface {
	Done()
}

type syncer struct {
	once  sync.Once
	state chan struct{}
}

func NewSyncPoint() (Sync, SyncTrigger) {
	s := &syncer{
		state: make(chan struct{}),
	}
	return s, s
}

func (s *syncer) Wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-s.state:
		return true
	}
}

func (s *syncer) IsDone() bool {
	select {
	case <-s.state:
		return true
	default:
		return false
	}
}

func (s *syncer) Done() {
	s.once.Do(func() { close(s.state) })
}
