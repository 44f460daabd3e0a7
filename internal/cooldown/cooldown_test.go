package cooldown

import (
	"sync"
	"testing"
	"time"
)

func TestGateSuppressesWithinCooldown(t *testing.T) {
	g := New(100 * time.Millisecond)

	if !g.Allow("user", "channel") {
		t.Fatal("first firing should be allowed")
	}

	time.Sleep(50 * time.Millisecond)
	if g.Allow("user", "channel") {
		t.Error("second firing within cooldown should be suppressed")
	}
}

func TestGateAllowsAfterCooldown(t *testing.T) {
	g := New(50 * time.Millisecond)

	if !g.Allow("user", "channel") {
		t.Fatal("first firing should be allowed")
	}

	time.Sleep(110 * time.Millisecond)
	if !g.Allow("user", "channel") {
		t.Error("firing after cooldown elapsed should be allowed")
	}
}

func TestGateKeysAreIndependent(t *testing.T) {
	g := New(time.Minute)

	if !g.Allow("alice", "general") {
		t.Fatal("first firing should be allowed")
	}
	if !g.Allow("bob", "general") {
		t.Error("other user in same channel should not be gated")
	}
	if !g.Allow("alice", "random") {
		t.Error("same user in other channel should not be gated")
	}
}

func TestGateRemaining(t *testing.T) {
	g := New(time.Minute)

	if got := g.Remaining("user", "channel"); got != 0 {
		t.Errorf("expected zero remaining before firing, got %v", got)
	}

	g.Allow("user", "channel")
	got := g.Remaining("user", "channel")
	if got <= 0 || got > time.Minute {
		t.Errorf("expected remaining in (0, 1m], got %v", got)
	}
}

func TestGateSingleWinnerUnderConcurrency(t *testing.T) {
	g := New(time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	fired := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Allow("user", "channel") {
				mu.Lock()
				fired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if fired != 1 {
		t.Errorf("expected exactly one firing for the same key, got %d", fired)
	}
}
