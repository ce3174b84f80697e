package graphics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerFiresAfterLastTrigger(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	d := newDebouncer(40*time.Millisecond, done)
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger("a.kage")
		time.Sleep(10 * time.Millisecond)
	}
	last := time.Now()
	d.Trigger("a.kage")
	d.Trigger("b.kage")

	got := map[string]int{}
	deadline := time.After(time.Second)
	for len(got) < 2 {
		select {
		case key := <-d.C:
			got[key]++
			if key == "a.kage" {
				assert.GreaterOrEqual(t, time.Since(last), 40*time.Millisecond)
			}
		case <-deadline:
			require.FailNow(t, "debouncer did not fire", "got %v", got)
		}
	}

	select {
	case key := <-d.C:
		t.Fatalf("unexpected extra delivery of %s", key)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, map[string]int{"a.kage": 1, "b.kage": 1}, got)
}

func TestDebouncerStop(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	d := newDebouncer(20*time.Millisecond, done)

	d.Trigger("a.kage")
	d.Stop()

	select {
	case key := <-d.C:
		t.Fatalf("stopped debouncer delivered %s", key)
	case <-time.After(80 * time.Millisecond):
	}
}
