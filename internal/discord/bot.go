// Package discord wires the bot to the gateway: it owns the session,
// normalizes inbound events into command invocations and fans each
// message out to the independent handling flows.
package discord

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"barkeep/internal/ai"
	"barkeep/internal/command"
	"barkeep/internal/config"
	"barkeep/internal/passive"
	"barkeep/internal/poll"
	"barkeep/internal/trivia"
	"barkeep/internal/version"
)

// Bot is the Discord bot.
type Bot struct {
	dg     *discordgo.Session
	cfg    *config.Config
	deps   *command.Deps
	engine *passive.Engine
}

// StartBot connects to the gateway and blocks until ctx is done.
func StartBot(ctx context.Context, cfg *config.Config) error {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	aiClient, err := ai.FromConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("completion client: %w", err)
	}
	defer aiClient.Close()

	if !aiClient.Configured() {
		log.Println("[WARN] No completion backend credential set — /ask is disabled")
	}

	snd := &sender{dg: dg}
	polls := poll.NewManager(snd)
	defer polls.Close()

	b := &Bot{
		dg:  dg,
		cfg: cfg,
		deps: &command.Deps{
			AI:     aiClient,
			Trivia: trivia.NewStore(),
			Polls:  polls,
			Prefix: cfg.CommandPrefix,
		},
		engine: passive.NewEngine(passive.Config{
			ReactChannels: cfg.ReactChannels,
			ReactKeywords: cfg.ReactKeywords,
			ReactEmojis:   cfg.ReactEmojis,
			ReactCooldown: cfg.ReactCooldown(),
			ReplyChannels: cfg.ReplyChannels,
			ReplyKeywords: cfg.ReplyKeywords,
			ReplyCooldown: cfg.ReplyCooldown(),
			ReplyChance:   cfg.ReplyChance,
		}, snd),
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) { b.onMessageCreate(ctx, m) })
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// onReady registers slash commands globally, pacing the creation calls.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	appID := s.State.User.ID

	ticker := time.NewTicker(time.Second / 4)
	defer ticker.Stop()

	var wg sync.WaitGroup
	for _, cmd := range command.All() {
		slash, ok := cmd.(command.SlashProvider)
		if !ok {
			continue
		}
		def := slash.SlashDefinition()

		wg.Add(1)
		go func(def *discordgo.ApplicationCommand) {
			defer wg.Done()
			<-ticker.C
			if _, err := s.ApplicationCommandCreate(appID, "", def); err != nil {
				log.Printf("[ERR] Can't create command %s: %v", def.Name, err)
			} else {
				log.Printf("[DONE] Command registered: %s", def.Name)
			}
		}(def)
	}
	wg.Wait()

	log.Printf("[INFO] ✅ %s is running as %s.", version.AppName, s.State.User.Username)
}

// onMessageCreate fans one inbound message out to its independent flows:
// prefixed text goes to the dispatcher, everything else gets a trivia
// answer check plus passive-behavior evaluation. The flows never block
// each other.
func (b *Bot) onMessageCreate(ctx context.Context, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if inv, ok := b.parseTextCommand(m); ok {
		go b.dispatch(inv)
		return
	}

	go b.checkTriviaAnswer(m)
	go b.engine.HandleMessage(ctx, m.ChannelID, m.ID, m.Author.ID, m.Content)
}

func (b *Bot) checkTriviaAnswer(m *discordgo.MessageCreate) {
	defer recoverHandler("trivia check")

	res := b.deps.Trivia.CheckAnswer(m.ChannelID, m.Author.ID, m.Content)
	if !res.Correct {
		return
	}
	msg := fmt.Sprintf("🎉 <@%s> got it! Score: **%d**.", m.Author.ID, res.NewScore)
	if _, err := b.dg.ChannelMessageSend(m.ChannelID, msg); err != nil {
		log.Printf("[ERR] Failed to announce trivia winner in %s: %v", m.ChannelID, err)
	}
}

// onInteractionCreate normalizes a slash interaction into an Invocation.
// The interaction is deferred right away so slow handlers (the completion
// backend in particular) stay inside Discord's response window.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if _, ok := command.Get(data.Name); !ok {
		log.Printf("[WARN] Unknown command: %s", data.Name)
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		log.Printf("[ERR] Failed to defer interaction %s: %v", data.Name, err)
		return
	}

	inv := command.NewInvocation(
		data.Name,
		slashArgs(data),
		i.ChannelID,
		interactionUserID(i),
		b.deps,
		func(content string) error {
			// Completes the deferred response by editing it in place.
			_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
			return err
		},
	)
	go b.dispatch(inv)
}

// dispatch runs one command. A failing handler is logged and isolated;
// it never takes the process or sibling flows with it.
func (b *Bot) dispatch(inv *command.Invocation) {
	defer recoverHandler(inv.Name)

	cmd, ok := command.Get(inv.Name)
	if !ok {
		return
	}
	if err := cmd.Run(inv); err != nil {
		log.Printf("[ERR] Error running command %s: %v", inv.Name, err)
	}
}

func recoverHandler(name string) {
	if r := recover(); r != nil {
		log.Printf("[ERR] Handler %s panicked: %v", name, r)
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
