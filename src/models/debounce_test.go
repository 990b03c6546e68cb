package models

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerFiresOnlyLastInput(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var got atomic.Int64
	for _, v := range []int64{1, 2, 3} {
		v := v
		d.Trigger(func() { got.Store(v) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if v := got.Load(); v != 3 {
		t.Fatalf("debounced value: got %d want 3", v)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var fired atomic.Bool
	d.Trigger(func() { fired.Store(true) })
	d.Stop()

	time.Sleep(200 * time.Millisecond)
	if fired.Load() {
		t.Fatal("stopped debouncer still fired")
	}
}

func TestDebouncerFiresAgainAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var count atomic.Int64
	d.Trigger(func() { count.Add(1) })
	time.Sleep(100 * time.Millisecond)
	d.Trigger(func() { count.Add(1) })
	time.Sleep(100 * time.Millisecond)

	if got := count.Load(); got != 2 {
		t.Fatalf("fire count: got %d want 2", got)
	}
}
