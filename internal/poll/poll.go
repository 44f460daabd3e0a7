// Package poll runs timed reaction polls: publish, seed markers,
// wait out the duration, then tally the reactions.
package poll

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	MinOptions      = 2
	MaxOptions      = 5
	DefaultDuration = 30 * time.Second
)

// ErrOptionCount means the option count is outside [MinOptions, MaxOptions].
var ErrOptionCount = fmt.Errorf("polls need %d to %d options", MinOptions, MaxOptions)

// markers are the vote reactions, one per option in index order.
var markers = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣"}

// Messenger is the slice of the transport the poll lifecycle needs.
type Messenger interface {
	SendMessage(channelID, content string) (messageID string, err error)
	AddReaction(channelID, messageID, emoji string) error
	// MessageReactions returns current reaction counts keyed by emoji.
	MessageReactions(channelID, messageID string) (map[string]int, error)
}

type pending struct {
	channelID string
	messageID string
	question  string
	options   []string
	timer     *time.Timer
}

// Manager owns the active polls and their tally timers. Close cancels
// all pending tallies so shutdown never leaves timers firing into a
// closed session.
type Manager struct {
	msgr    Messenger
	limiter *rate.Limiter

	mu       sync.Mutex
	pendings map[string]*pending
	closed   bool
}

func NewManager(msgr Messenger) *Manager {
	return &Manager{
		msgr: msgr,
		// One reaction add per 250ms keeps marker seeding polite.
		limiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		pendings: make(map[string]*pending),
	}
}

// Create validates, publishes and seeds a poll, then schedules its tally.
// The duration wait runs on a timer; Create returns as soon as seeding is done.
func (m *Manager) Create(ctx context.Context, channelID, question string, options []string, duration time.Duration) error {
	if len(options) < MinOptions || len(options) > MaxOptions {
		return ErrOptionCount
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 **%s**\n", question)
	for i, opt := range options {
		fmt.Fprintf(&sb, "%s %s\n", markers[i], opt)
	}
	fmt.Fprintf(&sb, "_Vote with reactions — results in %s._", duration.Round(time.Second))

	messageID, err := m.msgr.SendMessage(channelID, sb.String())
	if err != nil {
		return fmt.Errorf("failed to publish poll: %w", err)
	}

	// Seed one marker per option. A failed marker is logged and skipped;
	// the remaining options still get theirs.
	for i := range options {
		if err := m.limiter.Wait(ctx); err != nil {
			log.Printf("[WARN] Poll %s: seeding interrupted: %v", messageID, err)
			break
		}
		if err := m.msgr.AddReaction(channelID, messageID, markers[i]); err != nil {
			log.Printf("[WARN] Poll %s: failed to seed marker %s: %v", messageID, markers[i], err)
		}
	}

	p := &pending{
		channelID: channelID,
		messageID: messageID,
		question:  question,
		options:   options,
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return errors.New("poll manager is closed")
	}
	p.timer = time.AfterFunc(duration, func() { m.tally(p) })
	m.pendings[messageID] = p
	m.mu.Unlock()

	log.Printf("[INFO] Poll %s created in %s: %q (%d options, %s)", messageID, channelID, question, len(options), duration)
	return nil
}

// tally refetches the poll message, subtracts the bot's own seed reaction
// per marker and publishes the results. A poll whose message cannot be
// refetched is dropped without results; nothing retries it.
func (m *Manager) tally(p *pending) {
	m.mu.Lock()
	delete(m.pendings, p.messageID)
	m.mu.Unlock()

	counts, err := m.msgr.MessageReactions(p.channelID, p.messageID)
	if err != nil {
		log.Printf("[ERR] Poll %s: cannot refetch message for tally: %v", p.messageID, err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 **%s** — results:\n", p.question)
	for i, opt := range p.options {
		fmt.Fprintf(&sb, "%s %s: **%d**\n", markers[i], opt, Votes(counts, i))
	}

	if _, err := m.msgr.SendMessage(p.channelID, sb.String()); err != nil {
		log.Printf("[ERR] Poll %s: failed to publish results: %v", p.messageID, err)
	}
}

// Votes converts a raw marker reaction count into a vote count,
// excluding the bot's own seed reaction and flooring at zero.
func Votes(counts map[string]int, option int) int {
	n := counts[markers[option]] - 1
	if n < 0 {
		return 0
	}
	return n
}

// Close cancels every pending tally. Polls in flight publish nothing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for id, p := range m.pendings {
		p.timer.Stop()
		delete(m.pendings, id)
	}
}
