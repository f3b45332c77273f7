// File: iniconf/global.go
package iniconf

import "sync"

var global struct {
	mu    sync.Mutex
	store Store
	set   bool
}

// AlreadySetError reports a second SetGlobal call. It carries the rejected
// Store back to its caller; the existing global is never replaced.
type AlreadySetError struct {
	Rejected Store
}

func (e *AlreadySetError) Error() string {
	return "global configuration already initialized"
}

// SetGlobal makes store available process-wide through Global. It succeeds
// exactly once; later calls return an *AlreadySetError holding the store
// that was turned away.
func SetGlobal(store Store) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.set {
		return &AlreadySetError{Rejected: store}
	}
	global.store = store
	global.set = true
	return nil
}

// Global returns the process-wide Store registered with SetGlobal.
//
// Access before initialization is a contract violation: Global panics
// rather than returning an empty Store a caller might mistake for real
// configuration.
func Global() Store {
	global.mu.Lock()
	defer global.mu.Unlock()

	if !global.set {
		panic("iniconf: global configuration is not initialized")
	}
	return global.store
}

// GlobalSet reports whether a global Store has been registered.
func GlobalSet() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.set
}
