package poll

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/command"
	pollstate "barkeep/internal/poll"
)

type PollCommand struct{}

func (c *PollCommand) Name() string        { return "poll" }
func (c *PollCommand) Description() string { return "Run a timed reaction poll" }
func (c *PollCommand) Category() string    { return "📢 Utilities" }

func (c *PollCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minDuration := float64(5)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "question",
				Description: "What are we voting on?",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "options",
				Description: "2 to 5 options, comma separated",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "duration",
				Description: "Voting window in seconds (default 30)",
				MinValue:    &minDuration,
			},
		},
	}
}

func (c *PollCommand) Run(inv *command.Invocation) error {
	question := strings.TrimSpace(inv.Arg(0))
	options := splitOptions(inv.Arg(1))
	duration := pollstate.DefaultDuration
	if raw := inv.Arg(2); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return inv.Reply("Duration must be a positive number of seconds.")
		}
		duration = time.Duration(secs) * time.Second
	}

	if question == "" {
		return inv.Reply(usage(inv.Deps.Prefix))
	}

	err := inv.Deps.Polls.Create(context.Background(), inv.ChannelID, question, options, duration)
	if errors.Is(err, pollstate.ErrOptionCount) {
		return inv.Reply(usage(inv.Deps.Prefix))
	}
	if err != nil {
		log.Printf("[ERR] Poll creation failed in %s: %v", inv.ChannelID, err)
		return inv.Reply("Couldn't set up the poll. Try again.")
	}

	return inv.Reply(fmt.Sprintf("Poll is up — voting closes in %s.", duration.Round(time.Second)))
}

func usage(prefix string) string {
	return fmt.Sprintf("Usage: %spoll question | option1, option2[, up to 5] | seconds", prefix)
}

// splitOptions breaks a comma-separated option string, dropping empties.
func splitOptions(raw string) []string {
	var options []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

func init() {
	command.Register(&PollCommand{})
}
