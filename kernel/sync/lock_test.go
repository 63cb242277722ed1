package sync

import (
	"kfs/kernel"
	"runtime"
	"sync"
	"testing"
)

func TestLockMutualExclusion(t *testing.T) {
	defer func(origSpinHintFn func()) { spinHintFn = origSpinHintFn }(spinHintFn)
	spinHintFn = runtime.Gosched

	var (
		counter       = NewLock(0)
		wg            sync.WaitGroup
		numWorkers    = 8
		incsPerWorker = 1000
	)

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < incsPerWorker; j++ {
				g := counter.Lock()
				*g.Value() = *g.Value() + 1
				g.Release()
			}
		}()
	}
	wg.Wait()

	g := counter.Lock()
	defer g.Release()
	if exp, got := numWorkers*incsPerWorker, *g.Value(); got != exp {
		t.Fatalf("expected counter to be %d; got %d", exp, got)
	}
}

func TestTryLock(t *testing.T) {
	l := NewLock("console")

	g := l.Lock()
	if _, ok := l.TryLock(); ok {
		t.Fatal("expected TryLock to fail while the lock is held")
	}
	g.Release()

	g, ok := l.TryLock()
	if !ok {
		t.Fatal("expected TryLock to succeed after the lock was released")
	}
	if got := *g.Value(); got != "console" {
		t.Fatalf("expected guarded value to be %q; got %q", "console", got)
	}
	g.Release()

	g = l.Lock()
	g.Release()

	if l.IsLocked() {
		t.Fatal("expected lock to be free")
	}
}

func TestWith(t *testing.T) {
	l := NewLock([]byte(nil))

	l.With(func(buf *[]byte) {
		*buf = append(*buf, 'a')

		// Nested best-effort attempts on the same lock are dropped.
		if l.TryWith(func(buf *[]byte) { *buf = append(*buf, 'b') }) {
			t.Error("expected nested TryWith to report failure")
		}
	})

	if !l.TryWith(func(buf *[]byte) { *buf = append(*buf, 'c') }) {
		t.Fatal("expected TryWith to succeed on a free lock")
	}

	l.With(func(buf *[]byte) {
		if exp, got := "ac", string(*buf); got != exp {
			t.Fatalf("expected buffer to contain %q; got %q", exp, got)
		}
	})
}

func TestStaleGuard(t *testing.T) {
	specs := []struct {
		descr string
		fn    func(*Lock[int])
	}{
		{
			"double release",
			func(l *Lock[int]) {
				g := l.Lock()
				g.Release()
				g.Release()
			},
		},
		{
			"use after release",
			func(l *Lock[int]) {
				g := l.Lock()
				g.Release()
				*g.Value() = 42
			},
		},
		{
			"release of an older guard while a newer one is live",
			func(l *Lock[int]) {
				old := l.Lock()
				old.Release()
				cur := l.Lock()
				defer cur.Release()
				old.Release()
			},
		},
		{
			"zero guard",
			func(l *Lock[int]) {
				g, _ := l.TryLock()
				held, ok := l.TryLock()
				if ok {
					t.Fatal("expected second TryLock to fail")
				}
				defer g.Release()
				held.Release()
			},
		},
	}

	for specIndex, spec := range specs {
		func() {
			defer func() {
				err, ok := recover().(*kernel.Error)
				if !ok || err != errStaleGuard {
					t.Errorf("[spec %d] %s: expected panic with errStaleGuard; got %v", specIndex, spec.descr, err)
				}
			}()

			spec.fn(NewLock(0))
		}()
	}
}
