// Package concurrency provides in-process named locks.
package concurrency

import (
	"sync"
)

// LockManager hands out one lock per key. Locks are created on first use and
// live for the lifetime of the manager.
type LockManager struct {
	locks   sync.Map
	rwLocks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// GetRWLock returns a reader/writer lock for the given key. It is separate
// from the mutex returned by GetLock for the same key.
func (lm *LockManager) GetRWLock(key string) *sync.RWMutex {
	lock, _ := lm.rwLocks.LoadOrStore(key, &sync.RWMutex{})
	return lock.(*sync.RWMutex)
}

// WithLock runs fn while holding the mutex for key.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
