package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/passive"
)

// sender adapts *discordgo.Session to the narrow interfaces the poll
// lifecycle and the passive engine consume, and classifies permission
// failures so callers can abort sequences that will keep failing.
type sender struct {
	dg *discordgo.Session
}

func (s *sender) SendMessage(channelID, content string) (string, error) {
	msg, err := s.dg.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", classify(err)
	}
	return msg.ID, nil
}

func (s *sender) AddReaction(channelID, messageID, emoji string) error {
	return classify(s.dg.MessageReactionAdd(channelID, messageID, emoji))
}

func (s *sender) MessageReactions(channelID, messageID string) (map[string]int, error) {
	msg, err := s.dg.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, classify(err)
	}
	counts := make(map[string]int, len(msg.Reactions))
	for _, r := range msg.Reactions {
		if r.Emoji != nil {
			counts[r.Emoji.Name] = r.Count
		}
	}
	return counts, nil
}

// Discord API error codes for access failures.
const (
	codeMissingAccess      = 50001
	codeMissingPermissions = 50013
)

// classify wraps permission-denied REST errors with passive.ErrPermission.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Message != nil {
		switch rest.Message.Code {
		case codeMissingAccess, codeMissingPermissions:
			return fmt.Errorf("%w: %v", passive.ErrPermission, err)
		}
	}
	return err
}
