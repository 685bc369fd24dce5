package app

import (
	"sync"
	"testing"
)

func TestInflightGuard_AcquireRelease(t *testing.T) {
	g := NewInflightGuard()

	if !g.Acquire("promo", 7) {
		t.Fatal("first acquire should succeed")
	}
	if g.Acquire("promo", 7) {
		t.Error("second acquire for the same entity must fail")
	}

	// Other ids and kinds proceed independently.
	if !g.Acquire("promo", 8) {
		t.Error("different id should acquire")
	}
	if !g.Acquire("payment", 7) {
		t.Error("different kind should acquire")
	}

	g.Release("promo", 7)
	if !g.Acquire("promo", 7) {
		t.Error("acquire after release should succeed")
	}
}

func TestInflightGuard_Concurrent(t *testing.T) {
	g := NewInflightGuard()

	const attempts = 32
	var wg sync.WaitGroup
	acquired := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Acquire("promo", 9) {
				acquired <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(acquired)

	if n := len(acquired); n != 1 {
		t.Errorf("expected exactly one concurrent acquire to win, got %d", n)
	}
}
