package storex

import (
	"sync"
	"testing"
)

type counterState struct {
	n int
}

type incAction struct{}

func reduceCounter(s counterState, _ incAction) (counterState, error) {
	s.n++
	return s, nil
}

// TestConcurrentDispatchSerialization hammers one store from many goroutines
// and verifies no increment is lost: dispatches must be fully serialized, at
// most one reduce in flight at a time.
func TestConcurrentDispatchSerialization(t *testing.T) {
	const (
		goroutines = 64
		perG       = 250
	)

	store, err := New(ReducerFunc[counterState, incAction](reduceCounter), counterState{n: 7})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				if err := store.Dispatch(incAction{}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	want := 7 + goroutines*perG
	if got := store.State().n; got != want {
		t.Errorf("lost updates: expected %d, got %d", want, got)
	}
}

// TestConcurrentReadersDuringDispatch runs State readers concurrently with
// dispatches; every observed counter must be a value some commit produced
// (monotonicity per reader is not asserted, torn reads are).
func TestConcurrentReadersDuringDispatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	store, err := New(ReducerFunc[counterState, incAction](reduceCounter), counterState{})
	if err != nil {
		t.Fatal(err)
	}

	const total = 5000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			store.Dispatch(incAction{})
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if n := store.State().n; n < 0 || n > total {
					t.Errorf("torn read: %d", n)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := store.State().n; got != total {
		t.Errorf("expected %d, got %d", total, got)
	}
}

// TestConcurrentSubscribe registers listeners while dispatching; the store
// must not race and every listener must fire for commits after its
// registration completes.
func TestConcurrentSubscribe(t *testing.T) {
	store, err := New(ReducerFunc[counterState, incAction](reduceCounter), counterState{})
	if err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	fired := 0

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			store.Dispatch(incAction{})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			store.Subscribe(func() {
				mu.Lock()
				fired++
				mu.Unlock()
			})
		}
	}()
	wg.Wait()

	// One more commit: all 50 listeners are registered by now.
	before := func() int { mu.Lock(); defer mu.Unlock(); return fired }()
	store.Dispatch(incAction{})
	after := func() int { mu.Lock(); defer mu.Unlock(); return fired }()

	if after-before != 50 {
		t.Errorf("expected 50 invocations on the final commit, got %d", after-before)
	}
}
