// Package trivia keeps per-channel trivia sessions and the score ledger.
// Everything lives in memory for the lifetime of the process.
package trivia

import (
	"math/rand"
	"strings"
	"sync"
)

type Question struct {
	Text   string
	Answer string // normalized lowercase
}

type MatchResult struct {
	Correct  bool
	NewScore int
}

type session struct {
	answer  string
	askerID string
}

// Store holds at most one active session per channel plus the score ledger.
// Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]session
	scores   map[string]int
	bank     []Question
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]session),
		scores:   make(map[string]int),
		bank:     questionBank,
	}
}

// Start picks a random question and opens a session for the channel.
// An unanswered prior session for the same channel is silently replaced.
func (s *Store) Start(channelID, askerID string) Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.bank[rand.Intn(len(s.bank))]
	s.sessions[channelID] = session{answer: q.Answer, askerID: askerID}
	return q
}

// CheckAnswer compares text against the channel's active session.
// On a match the user's score is incremented and the session is cleared.
// Without an active session, or on a miss, nothing changes.
func (s *Store) CheckAnswer(channelID, userID, text string) MatchResult {
	normalized := strings.ToLower(strings.TrimSpace(text))

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[channelID]
	if !ok || normalized != sess.answer {
		return MatchResult{}
	}

	delete(s.sessions, channelID)
	s.scores[userID]++
	return MatchResult{Correct: true, NewScore: s.scores[userID]}
}

// Active reports whether the channel has an unanswered question.
func (s *Store) Active(channelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[channelID]
	return ok
}

// Score returns the user's current score.
func (s *Store) Score(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[userID]
}
