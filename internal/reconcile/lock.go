package reconcile

import "sync"

// keyedMutex serializes work per string key. Regeneration runs for the same
// (owner, week) must not interleave their delete-and-reinsert phases; runs
// for different keys proceed concurrently.
//
// Entries are never evicted. The key space is bounded by owners x weeks
// actually regenerated within one process lifetime, which is small.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
