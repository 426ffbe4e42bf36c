// ABOUTME: Rest timer: a one-second-tick countdown between sets.
// ABOUTME: At most one timer is meaningfully active; a new one replaces it.
package session

import (
	"fmt"
	"time"
)

// RestTimer counts down from a configured number of seconds, emitting the
// remaining seconds each tick. It stops on reaching zero or when Stop is
// called; nothing about it survives past dismissal.
type RestTimer struct {
	Ticks <-chan int
	Done  <-chan struct{}

	stop chan struct{}
}

// NewRestTimer starts a countdown of the given duration in seconds. A
// non-positive duration finishes immediately.
func NewRestTimer(seconds int) *RestTimer {
	ticks := make(chan int)
	done := make(chan struct{})
	t := &RestTimer{
		Ticks: ticks,
		Done:  done,
		stop:  make(chan struct{}),
	}

	go func() {
		defer close(done)
		defer close(ticks)

		remaining := seconds
		if remaining <= 0 {
			return
		}

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				remaining--
				select {
				case ticks <- remaining:
				case <-t.stop:
					return
				}
				if remaining <= 0 {
					return
				}
			case <-t.stop:
				return
			}
		}
	}()

	return t
}

// Stop dismisses the timer early. Safe to call more than once.
func (t *RestTimer) Stop() {
	select {
	case <-t.stop:
	default:
		close(t.stop)
	}
}

// FormatClock renders seconds as m:ss for countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
