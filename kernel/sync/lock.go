package sync

import "kfs/kernel"

var (
	errStaleGuard = &kernel.Error{Module: "sync", Message: "use of a released lock guard"}
)

// Lock owns a single value of type T and only hands out access to it via a
// Guard. At most one live Guard exists for a Lock at any time.
type Lock[T any] struct {
	sl Spinlock

	// gen is bumped each time a guard is released so that guards from
	// earlier acquisitions can be told apart from the live one.
	gen   uint32
	value T
}

// NewLock returns a Lock that owns value.
func NewLock[T any](value T) *Lock[T] {
	return &Lock[T]{value: value}
}

// Guard grants exclusive access to the value owned by a Lock. A Guard
// represents a borrow that belongs to the call stack that created it: it must
// not be stored, handed to another task or used after Release. Using a
// released guard panics.
type Guard[T any] struct {
	lock *Lock[T]
	gen  uint32
}

// Lock spins until the lock is acquired and returns a guard for the owned
// value. The lock is not recursive; locking it twice from the same call stack
// deadlocks.
func (l *Lock[T]) Lock() Guard[T] {
	l.sl.Acquire()
	return Guard[T]{lock: l, gen: l.gen}
}

// TryLock makes a single attempt to acquire the lock. It returns false and a
// zero Guard if the lock is already held.
func (l *Lock[T]) TryLock() (Guard[T], bool) {
	if !l.sl.TryToAcquire() {
		return Guard[T]{}, false
	}

	return Guard[T]{lock: l, gen: l.gen}, true
}

// IsLocked reports whether a guard for this lock is currently live.
func (l *Lock[T]) IsLocked() bool {
	return l.sl.IsLocked()
}

// With acquires the lock, invokes fn with the owned value and releases the
// lock once fn returns.
func (l *Lock[T]) With(fn func(*T)) {
	g := l.Lock()
	defer g.Release()
	fn(g.Value())
}

// TryWith behaves like With but gives up immediately if the lock is held. It
// returns true if fn was invoked.
func (l *Lock[T]) TryWith(fn func(*T)) bool {
	g, ok := l.TryLock()
	if !ok {
		return false
	}
	defer g.Release()

	fn(g.Value())
	return true
}

// Value returns a pointer to the value owned by the lock. The pointer must not
// be retained after the guard is released.
func (g Guard[T]) Value() *T {
	g.mustBeLive()
	return &g.lock.value
}

// Release unlocks the lock that created the guard. Each guard can be released
// exactly once.
func (g Guard[T]) Release() {
	g.mustBeLive()
	g.lock.gen++
	g.lock.sl.Release()
}

func (g Guard[T]) mustBeLive() {
	if g.lock == nil || g.gen != g.lock.gen || !g.lock.sl.IsLocked() {
		panic(errStaleGuard)
	}
}
