package testscommon

import (
	"sync"
	"time"
)

// ClockStub fires every wait immediately and records the requested durations
type ClockStub struct {
	mut         sync.Mutex
	durations   []time.Duration
	AfterCalled func(d time.Duration) <-chan time.Time
}

// After -
func (stub *ClockStub) After(d time.Duration) <-chan time.Time {
	stub.mut.Lock()
	stub.durations = append(stub.durations, d)
	stub.mut.Unlock()

	if stub.AfterCalled != nil {
		return stub.AfterCalled(d)
	}

	ch := make(chan time.Time, 1)
	ch <- time.Time{}

	return ch
}

// Durations -
func (stub *ClockStub) Durations() []time.Duration {
	stub.mut.Lock()
	defer stub.mut.Unlock()

	result := make([]time.Duration, len(stub.durations))
	copy(result, stub.durations)

	return result
}

// NumWaits -
func (stub *ClockStub) NumWaits() int {
	stub.mut.Lock()
	defer stub.mut.Unlock()

	return len(stub.durations)
}
