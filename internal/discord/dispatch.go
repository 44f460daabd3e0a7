package discord

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/command"
)

// parseTextCommand normalizes a prefixed text message into an Invocation.
// Both origins end up with the same canonical argument shape per command:
//
//	ask:  [question]
//	rps:  [choice]
//	poll: [question, comma-separated options, duration seconds]
func (b *Bot) parseTextCommand(m *discordgo.MessageCreate) (*command.Invocation, bool) {
	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, b.cfg.CommandPrefix) {
		return nil, false
	}

	name, rest, _ := strings.Cut(strings.TrimPrefix(content, b.cfg.CommandPrefix), " ")
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := command.Get(name); !ok {
		return nil, false
	}

	inv := command.NewInvocation(
		name,
		normalizeTextArgs(name, strings.TrimSpace(rest)),
		m.ChannelID,
		m.Author.ID,
		b.deps,
		func(content string) error {
			_, err := b.dg.ChannelMessageSend(m.ChannelID, content)
			return err
		},
	)
	return inv, true
}

func normalizeTextArgs(name, rest string) []string {
	switch name {
	case "ask":
		return []string{rest}
	case "rps":
		choice, _, _ := strings.Cut(rest, " ")
		return []string{choice}
	case "poll":
		// !poll question | option1, option2 | 45
		parts := strings.SplitN(rest, "|", 3)
		args := make([]string, 3)
		for i := range parts {
			args[i] = strings.TrimSpace(parts[i])
		}
		return args
	default:
		return nil
	}
}

// slashArgs reduces typed interaction options to the same canonical
// argument shape the text path produces.
func slashArgs(data discordgo.ApplicationCommandInteractionData) []string {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range data.Options {
		byName[opt.Name] = opt
	}

	str := func(name string) string {
		if opt, ok := byName[name]; ok {
			return opt.StringValue()
		}
		return ""
	}

	switch data.Name {
	case "ask":
		return []string{str("question")}
	case "rps":
		return []string{str("choice")}
	case "poll":
		duration := ""
		if opt, ok := byName["duration"]; ok {
			duration = strconv.FormatInt(opt.IntValue(), 10)
		}
		return []string{str("question"), str("options"), duration}
	default:
		return nil
	}
}
