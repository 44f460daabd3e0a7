package trivia

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/command"
)

type TriviaCommand struct{}

func (c *TriviaCommand) Name() string        { return "trivia" }
func (c *TriviaCommand) Description() string { return "Start a trivia question in this channel" }
func (c *TriviaCommand) Category() string    { return "🎲 Gameplay" }

func (c *TriviaCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *TriviaCommand) Run(inv *command.Invocation) error {
	q := inv.Deps.Trivia.Start(inv.ChannelID, inv.UserID)
	return inv.Reply(fmt.Sprintf("🧠 **Trivia time!** %s\nFirst correct answer in this channel scores. Your tab: %d.",
		q.Text, inv.Deps.Trivia.Score(inv.UserID)))
}

func init() {
	command.Register(&TriviaCommand{})
}
