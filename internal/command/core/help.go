package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/command"
	"barkeep/internal/version"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(inv *command.Invocation) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** — what's on tap:\n", version.AppName)
	for _, cmd := range command.All() {
		fmt.Fprintf(&sb, "%s `/%s` — %s\n", cmd.Category(), cmd.Name(), cmd.Description())
	}
	fmt.Fprintf(&sb, "\nText commands work too, prefixed with `%s`.", inv.Deps.Prefix)
	return inv.Reply(sb.String())
}

func init() {
	command.Register(&HelpCommand{})
}
