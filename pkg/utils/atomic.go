package utils

import (
	"sync"
)

// Settable holds a value which can be set once and read concurrently.
type Settable[T any] struct {
	lock  sync.Mutex
	set   bool
	value T
}

// Set stores the value if no value has been set before.
func (v *Settable[T]) Set(value T) bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.set {
		return false
	}
	v.value = value
	v.set = true
	return true
}

func (v *Settable[T]) Get() (T, bool) {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.value, v.set
}
