package rps

import (
	"strings"
	"testing"

	"barkeep/internal/command"
)

func runWith(t *testing.T, choice string) string {
	t.Helper()
	var got string
	inv := command.NewInvocation("rps", []string{choice}, "chan", "alice", &command.Deps{}, func(content string) error {
		got = content
		return nil
	})
	if err := (&RPSCommand{}).Run(inv); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return got
}

func TestUnknownChoiceYieldsUsage(t *testing.T) {
	for _, choice := range []string{"", "lizard", "spock"} {
		reply := runWith(t, choice)
		if !strings.HasPrefix(reply, "Usage:") {
			t.Errorf("choice %q: expected usage message, got %q", choice, reply)
		}
	}
}

func TestValidChoiceResolves(t *testing.T) {
	reply := runWith(t, "rock")
	if strings.HasPrefix(reply, "Usage:") {
		t.Fatalf("valid choice should resolve, got %q", reply)
	}
	if !strings.Contains(reply, "rock") {
		t.Errorf("reply should echo the player's throw, got %q", reply)
	}
}
