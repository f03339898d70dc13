// Package leaktest catches goroutines left running by concurrent tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const settleDelay = 50 * time.Millisecond

// GoroutineChecker records a goroutine baseline and reports growth past it.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle(10 * time.Millisecond)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlived the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	settle(settleDelay)
	runtime.GC()
	settle(settleDelay)

	after := runtime.NumGoroutine()
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires it to leave no goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines polls until at most target goroutines remain.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		runtime.Gosched()
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d",
		runtime.NumGoroutine(), target)
}

func settle(d time.Duration) {
	runtime.Gosched()
	time.Sleep(d)
}
