// Package games holds the pure game logic behind the gameplay commands.
package games

import (
	"fmt"
	"math/rand"
	"strings"
)

type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

func (c Choice) Emoji() string {
	switch c {
	case Rock:
		return "🪨"
	case Paper:
		return "📄"
	case Scissors:
		return "✂️"
	}
	return "❓"
}

// ParseChoice maps user input to a Choice. Input is trimmed and case-folded.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown choice %q", s)
}

// RandomChoice draws a uniform choice at call time.
func RandomChoice() Choice {
	return Choice(rand.Intn(3))
}

type Outcome int

const (
	Tie Outcome = iota
	PlayerWins
	BotWins
)

// beats maps each choice to the choice it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// ResolveRPS applies the standard beats-relation. Pure, no draws inside.
func ResolveRPS(player, bot Choice) Outcome {
	switch {
	case player == bot:
		return Tie
	case beats[player] == bot:
		return PlayerWins
	default:
		return BotWins
	}
}
