package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestDiskWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	// A second handle stands in for another process editing the notes.
	other, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open second store: %v", err)
	}
	if err := other.Save([]byte(`{"2026-02-14":["hello"]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if evt.Key == DefaultKey && !evt.Removed {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestDiskWatchClosesOnCancel(t *testing.T) {
	p, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	var mu sync.Mutex
	var got []Event
	send := func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	}

	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()
	for i := 0; i < 10; i++ {
		th.Enqueue(Event{Key: DefaultKey}, send)
	}
	th.Enqueue(Event{Key: "other", Removed: true}, send)

	time.Sleep(200 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("expected 2 coalesced events, got %d: %+v", len(got), got)
	}
}

func TestEventThrottleStopDropsPending(t *testing.T) {
	sent := make(chan Event, 1)
	th := newEventThrottle(20 * time.Millisecond)
	th.Enqueue(Event{Key: DefaultKey}, func(ev Event) { sent <- ev })
	th.Stop()

	select {
	case ev := <-sent:
		t.Fatalf("unexpected event after stop: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
