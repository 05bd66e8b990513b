package astrobounce

import (
	"testing"
	"time"
)

func TestTimerSingleFire(t *testing.T) {
	var tm Timer
	if tm.Fire(time.Hour) {
		t.Fatal("unarmed timer fired")
	}

	tm.Arm(time.Second, time.Second)
	if !tm.Armed() {
		t.Fatal("Armed() = false after Arm")
	}
	if tm.Fire(1999 * time.Millisecond) {
		t.Error("fired before the deadline")
	}
	if !tm.Fire(2 * time.Second) {
		t.Error("did not fire at the deadline")
	}
	if tm.Fire(3 * time.Second) {
		t.Error("fired twice")
	}
}

func TestTimerCancelAndRearm(t *testing.T) {
	var tm Timer
	tm.Arm(0, time.Second)
	tm.Cancel()
	if tm.Armed() || tm.Fire(time.Hour) {
		t.Error("cancelled timer fired")
	}

	tm.Arm(0, time.Second)
	tm.Arm(0, 5*time.Second)
	if tm.Fire(2 * time.Second) {
		t.Error("re-Arm should replace the deadline")
	}
	if !tm.Fire(5 * time.Second) {
		t.Error("re-armed timer did not fire")
	}
}

func TestClockDelta(t *testing.T) {
	frame := 20 * time.Millisecond
	c := NewClock(frame)

	if dt := c.Delta(time.Second); dt != 0 {
		t.Errorf("first Delta = %v, expected 0", dt)
	}
	if dt := c.Delta(time.Second + frame); dt != 1 {
		t.Errorf("Delta over one frame = %v, expected 1", dt)
	}
	if dt := c.Delta(time.Second + 4*frame); dt != 3 {
		t.Errorf("Delta over three frames = %v, expected 3", dt)
	}
	if dt := c.Delta(time.Second); dt != 0 {
		t.Errorf("Delta going backwards = %v, expected 0", dt)
	}
}
