package ask

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/ai"
	"barkeep/internal/command"
)

type AskCommand struct{}

func (c *AskCommand) Name() string        { return "ask" }
func (c *AskCommand) Description() string { return "Ask the bartender anything" }
func (c *AskCommand) Category() string    { return "💬 Chat" }

func (c *AskCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "question",
				Description: "What do you want to know?",
				Required:    true,
			},
		},
	}
}

func (c *AskCommand) Run(inv *command.Invocation) error {
	question := strings.TrimSpace(inv.Arg(0))
	if question == "" {
		return inv.Reply("Ask me something. An empty glass gets no refill.")
	}

	reply, err := inv.Deps.AI.Complete(context.Background(), question)
	if err != nil {
		log.Printf("[ERR] Ask failed for %s: %v", inv.UserID, err)
		switch {
		case errors.Is(err, ai.ErrNotConfigured):
			return inv.Reply("The back room's empty — no brain hooked up on this install.")
		case errors.Is(err, ai.ErrTimeout):
			return inv.Reply("That one took too long to think about. Try again.")
		default:
			return inv.Reply("Something broke behind the bar 🤯 Try again later.")
		}
	}

	return inv.Reply(reply)
}

func init() {
	command.Register(&AskCommand{})
}
