package usecase

import "sync"

// keyedMutex serializes transitions on a single entity. Two racing calls on
// the same request or session take the same lock, so exactly one observes
// the pending state and wins; the loser sees the already-applied transition
// and gets a conflict. Distinct entities lock independently.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
