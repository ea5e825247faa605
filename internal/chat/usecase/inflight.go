package usecase

import (
	"context"
	"sync"
)

// inflight tracks cancel funcs of running Ask calls per user.
type inflight struct {
	mu    sync.Mutex
	next  uint64
	calls map[string]map[uint64]context.CancelFunc
}

func newInflight() *inflight {
	return &inflight{calls: make(map[string]map[uint64]context.CancelFunc)}
}

func (f *inflight) add(userID string, cancel context.CancelFunc) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	if f.calls[userID] == nil {
		f.calls[userID] = make(map[uint64]context.CancelFunc)
	}
	f.calls[userID][f.next] = cancel
	return f.next
}

func (f *inflight) done(userID string, token uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.calls[userID], token)
	if len(f.calls[userID]) == 0 {
		delete(f.calls, userID)
	}
}

// cancelAll cancels and forgets every call of userID.
func (f *inflight) cancelAll(userID string) int {
	f.mu.Lock()
	calls := f.calls[userID]
	delete(f.calls, userID)
	f.mu.Unlock()

	for _, cancel := range calls {
		cancel()
	}
	return len(calls)
}
