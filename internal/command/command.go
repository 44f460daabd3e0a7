// Package command defines the bot's command surface: the Command
// interface, the registry and the normalized Invocation value every
// origin (slash interaction or prefixed text) is reduced to.
package command

import (
	"github.com/bwmarrin/discordgo"

	"barkeep/internal/ai"
	"barkeep/internal/poll"
	"barkeep/internal/trivia"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	Run(inv *Invocation) error
}

// SlashProvider is implemented by commands that register a slash definition.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Deps carries the stateful components commands act on.
type Deps struct {
	AI     *ai.Client
	Trivia *trivia.Store
	Polls  *poll.Manager
	Prefix string
}

// Invocation is one normalized command call, independent of origin.
// Args are canonical per command; see the boundary normalizers in
// internal/discord.
type Invocation struct {
	Name      string
	Args      []string
	ChannelID string
	UserID    string
	Deps      *Deps

	respond func(content string) error
}

// NewInvocation builds an Invocation with the given responder.
func NewInvocation(name string, args []string, channelID, userID string, deps *Deps, respond func(string) error) *Invocation {
	return &Invocation{
		Name:      name,
		Args:      args,
		ChannelID: channelID,
		UserID:    userID,
		Deps:      deps,
		respond:   respond,
	}
}

// Reply sends content back where the command came from.
func (inv *Invocation) Reply(content string) error {
	return inv.respond(content)
}

// Arg returns the i-th argument or "" when absent.
func (inv *Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}
