// Package sync provides the spinlock-based mutual exclusion primitives used by
// the kernel core.
package sync

import "sync/atomic"

// Spinlock implements a lock where each task trying to acquire it busy-waits
// till the lock becomes available. Spinlocks are neither recursive nor fair
// and must not be shared between normal and interrupt context on the same CPU
// unless interrupts are disabled while the lock is held.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active task.
// Any attempt to re-acquire a lock already held by the current task will cause
// a deadlock.
func (l *Spinlock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		spinHintFn()
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.CompareAndSwapUint32(&l.state, 0, 1)
}

// Release relinquishes a held lock allowing other tasks to acquire it. All
// writes performed while the lock was held are visible to the next holder.
// Calling Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}

// IsLocked reports whether the lock is currently held. The result is only a
// snapshot and must not be used to make locking decisions.
func (l *Spinlock) IsLocked() bool {
	return atomic.LoadUint32(&l.state) != 0
}

// SpinHint tells the processor that the caller is busy-waiting. Drivers that
// poll device status registers call it on each iteration.
func SpinHint() {
	spinHintFn()
}
