package clock

import (
	"testing"
	"time"
)

func TestFakeAdvanceAndSet(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := NewFake(base)

	if !f.Now().Equal(base) {
		t.Fatalf("Now = %v, want %v", f.Now(), base)
	}

	f.Advance(90 * time.Second)
	if !f.Now().Equal(base.Add(90 * time.Second)) {
		t.Fatalf("Advance failed: %v", f.Now())
	}

	pin := base.Add(24 * time.Hour)
	f.Set(pin)
	if !f.Now().Equal(pin) {
		t.Fatalf("Set failed: %v", f.Now())
	}
}

func TestFakeSleepRecordsAndAdvances(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := NewFake(base)

	f.Sleep(1 * time.Second)
	f.Sleep(2 * time.Second)

	if len(f.Slept) != 2 || f.Slept[0] != time.Second || f.Slept[1] != 2*time.Second {
		t.Fatalf("Slept = %v", f.Slept)
	}
	if !f.Now().Equal(base.Add(3 * time.Second)) {
		t.Fatalf("Sleep did not advance: %v", f.Now())
	}
}

func TestRealNowMonotonicEnough(t *testing.T) {
	c := System()
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Fatalf("real clock went backward: %v then %v", a, b)
	}
}
