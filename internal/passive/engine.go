// Package passive evaluates auto-react and auto-reply behaviors on every
// inbound non-bot message. Both behaviors are channel-gated, keyword-gated
// and cooldown-gated per (author, channel); auto-reply adds a chance roll.
package passive

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"barkeep/internal/cooldown"
)

// ErrPermission marks a transport failure caused by missing permissions.
// The sender adapter wraps such errors; the engine stops a reaction
// sequence when it sees one.
var ErrPermission = errors.New("missing permissions")

// Sender is the slice of the transport the engine needs.
type Sender interface {
	SendMessage(channelID, content string) (messageID string, err error)
	AddReaction(channelID, messageID, emoji string) error
}

// Config gates the two behaviors. An empty channel list disables a
// behavior entirely; an empty keyword list matches every message.
type Config struct {
	ReactChannels []string
	ReactKeywords []string
	ReactEmojis   []string
	ReactCooldown time.Duration

	ReplyChannels []string
	ReplyKeywords []string
	ReplyCooldown time.Duration
	ReplyChance   int // percent, 0-100
}

// replyPool is the fixed set auto-reply draws from. %s is the author mention.
var replyPool = []string{
	"%s, the first round's on the house.",
	"%s, I heard that. The whole bar heard that.",
	"%s, bold words for someone within reach of my towel.",
	"%s, I'll drink to that.",
	"%s, careful — last one who said that still owes me a tab.",
}

type Engine struct {
	cfg     Config
	sender  Sender
	reacts  *cooldown.Gate
	replies *cooldown.Gate
	limiter *rate.Limiter

	// injectable for tests
	roll func() int // uniform in [1,100]
	pick func(n int) int
}

func NewEngine(cfg Config, sender Sender) *Engine {
	return &Engine{
		cfg:     cfg,
		sender:  sender,
		reacts:  cooldown.New(cfg.ReactCooldown),
		replies: cooldown.New(cfg.ReplyCooldown),
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		roll:    func() int { return rand.Intn(100) + 1 },
		pick:    rand.Intn,
	}
}

// HandleMessage evaluates both behaviors for one inbound message.
// Transport failures are logged and swallowed; the engine never lets a
// single message take down sibling flows.
func (e *Engine) HandleMessage(ctx context.Context, channelID, messageID, authorID, content string) {
	e.autoReact(ctx, channelID, messageID, authorID, content)
	e.autoReply(channelID, authorID, content)
}

func (e *Engine) autoReact(ctx context.Context, channelID, messageID, authorID, content string) {
	if len(e.cfg.ReactEmojis) == 0 {
		return
	}
	if !slices.Contains(e.cfg.ReactChannels, channelID) {
		return
	}
	if !matchesKeywords(content, e.cfg.ReactKeywords) {
		return
	}
	// Allow refreshes the timestamp before any reaction goes out.
	if !e.reacts.Allow(authorID, channelID) {
		return
	}

	for _, emoji := range e.cfg.ReactEmojis {
		if err := e.limiter.Wait(ctx); err != nil {
			return
		}
		err := e.sender.AddReaction(channelID, messageID, emoji)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrPermission) {
			log.Printf("[WARN] Auto-react: no permission in %s, skipping remaining emojis", channelID)
			return
		}
		log.Printf("[WARN] Auto-react: failed to add %s in %s: %v", emoji, channelID, err)
	}
}

func (e *Engine) autoReply(channelID, authorID, content string) {
	if !slices.Contains(e.cfg.ReplyChannels, channelID) {
		return
	}
	if !matchesKeywords(content, e.cfg.ReplyKeywords) {
		return
	}
	if !e.replies.Allow(authorID, channelID) {
		return
	}
	if e.roll() > e.cfg.ReplyChance {
		// A failed roll leaves the cooldown clear for the next message.
		e.replies.Release(authorID, channelID)
		return
	}

	line := replyPool[e.pick(len(replyPool))]
	msg := strings.Replace(line, "%s", "<@"+authorID+">", 1)
	if _, err := e.sender.SendMessage(channelID, msg); err != nil {
		log.Printf("[WARN] Auto-reply: failed to send in %s: %v", channelID, err)
	}
}

// matchesKeywords reports whether content qualifies under the keyword
// gate. An empty keyword list always matches.
func matchesKeywords(content string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lowered := strings.ToLower(content)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
