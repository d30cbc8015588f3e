package core

import (
	"testing"
	"time"
)

func TestFixedStepReleasesOneTickPerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not fire")
	}

	clock = clock.Add(fs.Interval())
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after one interval")
	}

	clock = clock.Add(2 * fs.Interval())
	if !fs.ShouldStep() || !fs.ShouldStep() {
		t.Fatal("surplus time should carry over into the next call")
	}
	if fs.ShouldStep() {
		t.Fatal("accumulator should be drained")
	}
}

func TestFixedStepRestartDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(time.Second)
	fs.Restart()
	if fs.ShouldStep() {
		t.Fatal("restart should discard time accumulated while paused")
	}
}

func TestFixedStepDefaultsNonPositiveTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("expected 100ms fallback interval, got %s", fs.Interval())
	}
}

func TestFixedStepCapsExtremeTPS(t *testing.T) {
	fs := NewFixedStep(2_000_000_000)
	if fs.Interval() != time.Nanosecond {
		t.Fatalf("expected a 1ns floor, got %s", fs.Interval())
	}
}
