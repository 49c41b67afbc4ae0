package playback

import (
	"sync"
	"time"
)

// Scheduler calls tick every interval until the returned cancel is called.
// Cancel must not block on an in-flight tick: the controller calls it from
// inside tick when playback reaches the end.
type Scheduler interface {
	Schedule(interval time.Duration, tick func()) (cancel func())
}

// TickerScheduler runs each schedule on its own goroutine backed by a
// time.Ticker.
type TickerScheduler struct{}

func (TickerScheduler) Schedule(interval time.Duration, tick func()) func() {
	t := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				tick()
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// SchedulerFunc adapts a plain function to Scheduler.
type SchedulerFunc func(interval time.Duration, tick func()) func()

func (f SchedulerFunc) Schedule(interval time.Duration, tick func()) func() {
	return f(interval, tick)
}
