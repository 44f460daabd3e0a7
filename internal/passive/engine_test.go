package passive

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeSender struct {
	mu        sync.Mutex
	messages  []string
	reactions []string
	reactErr  map[string]error
}

func (f *fakeSender) SendMessage(channelID, content string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, content)
	return "msg-1", nil
}

func (f *fakeSender) AddReaction(channelID, messageID, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.reactErr[emoji]; err != nil {
		return err
	}
	f.reactions = append(f.reactions, emoji)
	return nil
}

func reactConfig() Config {
	return Config{
		ReactChannels: []string{"bar"},
		ReactEmojis:   []string{"🍺", "🍻"},
		ReactCooldown: time.Minute,
	}
}

func replyConfig(chance int) Config {
	return Config{
		ReplyChannels: []string{"bar"},
		ReplyCooldown: time.Minute,
		ReplyChance:   chance,
	}
}

func TestAutoReactAddsAllEmojis(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(reactConfig(), f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "evening all")

	if len(f.reactions) != 2 {
		t.Fatalf("expected 2 reactions, got %v", f.reactions)
	}
}

func TestAutoReactIgnoresOtherChannels(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(reactConfig(), f)

	e.HandleMessage(context.Background(), "lobby", "m1", "alice", "evening all")

	if len(f.reactions) != 0 {
		t.Errorf("expected no reactions outside allowed channels, got %v", f.reactions)
	}
}

func TestAutoReactKeywordGate(t *testing.T) {
	cfg := reactConfig()
	cfg.ReactKeywords = []string{"beer"}
	f := &fakeSender{}
	e := NewEngine(cfg, f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "nothing relevant")
	if len(f.reactions) != 0 {
		t.Errorf("expected keyword mismatch to suppress reactions, got %v", f.reactions)
	}

	e.HandleMessage(context.Background(), "bar", "m2", "alice", "who wants a BEER?")
	if len(f.reactions) != 2 {
		t.Errorf("expected case-insensitive keyword match to react, got %v", f.reactions)
	}
}

func TestAutoReactCooldownPerAuthorChannel(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(reactConfig(), f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "one")
	e.HandleMessage(context.Background(), "bar", "m2", "alice", "two")

	if len(f.reactions) != 2 {
		t.Errorf("expected second message to be cooldown-suppressed, got %v", f.reactions)
	}

	e.HandleMessage(context.Background(), "bar", "m3", "bob", "three")
	if len(f.reactions) != 4 {
		t.Errorf("expected other author to react independently, got %v", f.reactions)
	}
}

func TestAutoReactPermissionFailureAbortsSequence(t *testing.T) {
	f := &fakeSender{reactErr: map[string]error{"🍺": ErrPermission}}
	e := NewEngine(reactConfig(), f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "evening")

	if len(f.reactions) != 0 {
		t.Errorf("expected permission failure to abort remaining emojis, got %v", f.reactions)
	}
}

func TestAutoReactGenericFailureSkipsEmoji(t *testing.T) {
	f := &fakeSender{reactErr: map[string]error{"🍺": errors.New("boom")}}
	e := NewEngine(reactConfig(), f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "evening")

	if len(f.reactions) != 1 || f.reactions[0] != "🍻" {
		t.Errorf("expected remaining emoji despite one failing, got %v", f.reactions)
	}
}

func TestAutoReplyChanceZeroNeverFires(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(replyConfig(0), f)

	for i := 0; i < 1000; i++ {
		e.HandleMessage(context.Background(), "bar", "m", "alice", "hello")
	}

	if len(f.messages) != 0 {
		t.Errorf("chance 0 should never fire, got %d messages", len(f.messages))
	}
}

func TestAutoReplyChanceHundredAlwaysFires(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(replyConfig(100), f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "hello")

	if len(f.messages) != 1 {
		t.Fatalf("chance 100 should fire when cooldown allows, got %d messages", len(f.messages))
	}
	if !strings.Contains(f.messages[0], "<@alice>") {
		t.Errorf("reply should address the author, got %q", f.messages[0])
	}
}

func TestAutoReplyCooldownSuppresses(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(replyConfig(100), f)

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "one")
	e.HandleMessage(context.Background(), "bar", "m2", "alice", "two")

	if len(f.messages) != 1 {
		t.Errorf("expected second reply to be cooldown-suppressed, got %d", len(f.messages))
	}
}

func TestAutoReplyFailedRollLeavesCooldownClear(t *testing.T) {
	f := &fakeSender{}
	e := NewEngine(replyConfig(50), f)

	rolls := []int{90, 10} // first misses, second hits
	e.roll = func() int {
		r := rolls[0]
		rolls = rolls[1:]
		return r
	}

	e.HandleMessage(context.Background(), "bar", "m1", "alice", "one")
	if len(f.messages) != 0 {
		t.Fatal("missed roll should not send a reply")
	}

	e.HandleMessage(context.Background(), "bar", "m2", "alice", "two")
	if len(f.messages) != 1 {
		t.Error("failed roll should not start the cooldown")
	}
}

func TestKeywordGateEmptyListAlwaysMatches(t *testing.T) {
	if !matchesKeywords("anything", nil) {
		t.Error("empty keyword list should always match")
	}
	if matchesKeywords("no match here", []string{"beer"}) {
		t.Error("expected mismatch")
	}
	if !matchesKeywords("BEER me", []string{"beer"}) {
		t.Error("expected case-insensitive match")
	}
}
