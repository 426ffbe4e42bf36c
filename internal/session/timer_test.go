// ABOUTME: Tests for the rest countdown timer and clock formatting.
// ABOUTME: Real ticks are used, so durations here stay at a couple seconds.
package session

import (
	"testing"
	"time"
)

func TestRestTimerCountsDown(t *testing.T) {
	timer := NewRestTimer(2)

	var got []int
	deadline := time.After(5 * time.Second)
	for {
		select {
		case remaining, ok := <-timer.Ticks:
			if !ok {
				if len(got) != 2 || got[0] != 1 || got[1] != 0 {
					t.Errorf("ticks = %v, want [1 0]", got)
				}
				select {
				case <-timer.Done:
				case <-deadline:
					t.Fatal("Done never closed")
				}
				return
			}
			got = append(got, remaining)
		case <-deadline:
			t.Fatalf("timer stalled, ticks so far: %v", got)
		}
	}
}

func TestRestTimerZeroFinishesImmediately(t *testing.T) {
	timer := NewRestTimer(0)
	select {
	case <-timer.Done:
	case <-time.After(time.Second):
		t.Fatal("zero-duration timer did not finish")
	}
}

func TestRestTimerStop(t *testing.T) {
	timer := NewRestTimer(60)
	timer.Stop()
	timer.Stop() // idempotent

	select {
	case <-timer.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("stopped timer did not close Done")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{60, "1:00"},
		{90, "1:30"},
		{605, "10:05"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
