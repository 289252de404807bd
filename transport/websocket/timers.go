package websocket

import (
	"sync"
	"time"
)

// timerSet holds at most one pending timer per key. Scheduling a key again stops the previous timer.
type timerSet struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func newTimerSet() *timerSet {
	return &timerSet{timers: make(map[string]*time.Timer)}
}

func (that *timerSet) schedule(key string, delay time.Duration, fn func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	if timer, ok := that.timers[key]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(max(delay, 0), func() {
		that.mu.Lock()
		if that.timers[key] == timer {
			delete(that.timers, key)
		}
		that.mu.Unlock()

		fn()
	})

	that.timers[key] = timer
}

func (that *timerSet) stop(key string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.timers[key]; ok {
		timer.Stop()
		delete(that.timers, key)
	}
}

// stopAll cancels every timer and refuses new ones.
func (that *timerSet) stopAll() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	for key, timer := range that.timers {
		timer.Stop()
		delete(that.timers, key)
	}
}

func (that *timerSet) pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.timers)
}
