package rps

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/command"
	"barkeep/internal/games"
)

type RPSCommand struct{}

func (c *RPSCommand) Name() string        { return "rps" }
func (c *RPSCommand) Description() string { return "Rock, paper, scissors against the house" }
func (c *RPSCommand) Category() string    { return "🎲 Gameplay" }

func (c *RPSCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "choice",
				Description: "Your throw",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "🪨 Rock", Value: "rock"},
					{Name: "📄 Paper", Value: "paper"},
					{Name: "✂️ Scissors", Value: "scissors"},
				},
			},
		},
	}
}

func (c *RPSCommand) Run(inv *command.Invocation) error {
	player, err := games.ParseChoice(inv.Arg(0))
	if err != nil {
		return inv.Reply("Usage: rps <rock|paper|scissors>")
	}

	bot := games.RandomChoice()
	var verdict string
	switch games.ResolveRPS(player, bot) {
	case games.PlayerWins:
		verdict = "You win. Drinks on me."
	case games.BotWins:
		verdict = "House wins. As usual."
	default:
		verdict = "A tie. How dull."
	}

	return inv.Reply(fmt.Sprintf("%s %s vs %s %s — %s",
		player.Emoji(), player, bot.Emoji(), bot, verdict))
}

func init() {
	command.Register(&RPSCommand{})
}
