package main

import (
	"testing"
	"time"
)

func newTestWidget(t *testing.T) *NotePick {
	t.Helper()
	np, err := NewNotePick(Config{HistoryWindow: time.Hour})
	if err != nil {
		t.Fatalf("NewNotePick: %v", err)
	}
	return np
}

func (np *NotePick) historyLen() int {
	np.history.mu.Lock()
	defer np.history.mu.Unlock()
	return len(np.history.events)
}

func TestAttachDetachLifecycle(t *testing.T) {
	np := newTestWidget(t)

	// Transitions before attach reach no bridge.
	np.Set("C")
	if np.historyLen() != 0 {
		t.Fatalf("recorded %d events before attach", np.historyLen())
	}

	np.Attach()
	np.Set("D")
	if np.historyLen() != 1 {
		t.Fatalf("recorded %d events after attach, want 1", np.historyLen())
	}

	// Re-attach without detach must not double-subscribe.
	np.Attach()
	np.Set("E")
	if np.historyLen() != 2 {
		t.Fatalf("recorded %d events after double attach, want 2", np.historyLen())
	}

	np.Detach()
	np.Set("F")
	if np.historyLen() != 2 {
		t.Fatalf("recorded %d events after detach, want 2", np.historyLen())
	}
	np.Detach() // second detach is harmless

	// A fresh attach works again.
	np.Attach()
	np.Set("G")
	if np.historyLen() != 3 {
		t.Fatalf("recorded %d events after re-attach, want 3", np.historyLen())
	}
}

func TestStaleTokenIgnored(t *testing.T) {
	np := newTestWidget(t)
	np.Attach()

	// A callback subscribed under a previous generation must be ignored
	// even if its cancellation were missed.
	np.mu.Lock()
	gen := np.gen
	np.mu.Unlock()

	np.Detach()
	np.Attach()

	if np.tokenValid(gen) {
		t.Errorf("token from before detach still valid")
	}
}

func TestAccessors(t *testing.T) {
	np, err := NewNotePick(Config{InitialNote: "E♭", HistoryWindow: time.Hour})
	if err != nil {
		t.Fatalf("NewNotePick: %v", err)
	}
	if np.Name() != "E♭" || np.Pitch() != 3 {
		t.Fatalf("initial state %q/%d, want E♭/3", np.Name(), np.Pitch())
	}

	var notifications int
	cancel := np.Subscribe(func(string, int) { notifications++ })
	defer cancel()

	np.SetRootsOnly(true)
	if notifications != 0 {
		t.Errorf("mode toggle emitted %d notifications", notifications)
	}
	if !np.RootsOnly() {
		t.Errorf("RootsOnly() = false after SetRootsOnly(true)")
	}
	if np.Name() != "E♭" {
		t.Errorf("mode toggle changed selection to %q", np.Name())
	}

	np.Clear()
	if np.Pitch() != NoPitch || notifications != 1 {
		t.Errorf("Clear left %d/%d notifications", np.Pitch(), notifications)
	}

	np.Random()
	if !np.selector.Selected() {
		t.Errorf("Random left nothing selected")
	}
}
